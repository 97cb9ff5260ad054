package multipack

import (
	"regexp"
	"strings"
)

// Rule names in evaluation order.
const (
	RulePatternLibrary        = "pattern-library"
	RuleQuantitySuffix        = "quantity-suffix"
	RuleParentheticalQuantity = "parenthetical-quantity"
	RuleSetOf                 = "set-of"
	RulePluralQuantity        = "plural-quantity"
)

var (
	// "8-pack", "6 pcs", "12pk"
	quantitySuffixPattern = regexp.MustCompile(`(?i)\b\d+[-\s]*(?:pk|ct|pack|count|pc|pcs|piece|pieces)\b`)

	// "(6 count)", "( 4 pack )", "(1 x12)"
	parentheticalPattern = regexp.MustCompile(`(?i)\(\s*(?:\d+\s*(?:pack|ct|count|x\d+|pcs?|pieces?))\s*\)`)

	setOfPattern = regexp.MustCompile(`(?i)\bset\s+of\s+\d+\b`)

	// "12 cookies"; the group captures the plural word
	pluralQuantityPattern = regexp.MustCompile(`(?i)\b\d+\s+(\w+s)\b`)
)

// Rule is one predicate of the ordered decision chain. Titles passed to
// Applies are already normalized.
type Rule struct {
	Name    string
	Applies func(title string) bool
}

// patternRule runs the compiled matcher.
func patternRule(m *Matcher) Rule {
	return Rule{Name: RulePatternLibrary, Applies: m.ContainsMatch}
}

func regexRule(name string, re *regexp.Regexp) Rule {
	return Rule{Name: name, Applies: re.MatchString}
}

// pluralQuantityRule inspects only the first "<n> <word>s" occurrence and
// fires unless that word is a unit of measure, time or usage.
func pluralQuantityRule(excluded map[string]bool) Rule {
	return Rule{
		Name: RulePluralQuantity,
		Applies: func(title string) bool {
			match := pluralQuantityPattern.FindStringSubmatch(title)
			if match == nil {
				return false
			}
			return !excluded[strings.ToLower(match[1])]
		},
	}
}

func buildRules(m *Matcher, excluded map[string]bool) []Rule {
	return []Rule{
		patternRule(m),
		regexRule(RuleQuantitySuffix, quantitySuffixPattern),
		regexRule(RuleParentheticalQuantity, parentheticalPattern),
		regexRule(RuleSetOf, setOfPattern),
		pluralQuantityRule(excluded),
	}
}
