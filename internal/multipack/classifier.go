// Package multipack decides whether a product title describes a multi-pack
// (several discrete units sold as one SKU) or a single item.
//
// The decision runs a single compiled matcher built from declarative
// vocabulary tables, then a short ordered list of fallback heuristics. The
// first rule that fires wins.
package multipack

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Decision is the outcome of classifying one title.
type Decision struct {
	Title     string `json:"title"`
	Multipack bool   `json:"multipack"`
	Rule      string `json:"rule,omitempty"`
	Fragment  string `json:"fragment,omitempty"`
}

// Classifier applies the ordered rule chain. It holds no mutable state.
type Classifier struct {
	matcher *Matcher
	rules   []Rule
}

// New compiles the vocabulary and builds the rule chain.
func New(v Vocabulary) (*Classifier, error) {
	m, err := Compile(v)
	if err != nil {
		return nil, err
	}
	return newClassifier(m, v.Exclusions), nil
}

func newClassifier(m *Matcher, exclusionTerms []string) *Classifier {
	excluded := make(map[string]bool, len(exclusionTerms))
	for _, w := range exclusionTerms {
		excluded[strings.ToLower(w)] = true
	}
	return &Classifier{
		matcher: m,
		rules:   buildRules(m, excluded),
	}
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	return newClassifier(DefaultMatcher(), exclusions)
})

// Default returns the classifier over the built-in vocabulary.
func Default() *Classifier {
	return defaultClassifier()
}

// IsMultipack classifies title with the default classifier.
func IsMultipack(title string) bool {
	return Default().IsMultipack(title)
}

// Normalize folds compatibility forms (full-width digits, ligatures) and
// trims surrounding whitespace.
func Normalize(title string) string {
	return strings.TrimSpace(norm.NFKC.String(title))
}

// IsMultipack reports whether title describes a multi-pack.
func (c *Classifier) IsMultipack(title string) bool {
	clean := Normalize(title)
	for _, r := range c.rules {
		if r.Applies(clean) {
			return true
		}
	}
	return false
}

// Classify is IsMultipack with the name of the rule that fired and, for the
// pattern library, the fragment that matched.
func (c *Classifier) Classify(title string) Decision {
	clean := Normalize(title)
	d := Decision{Title: clean}
	for _, r := range c.rules {
		if !r.Applies(clean) {
			continue
		}
		d.Multipack = true
		d.Rule = r.Name
		if r.Name == RulePatternLibrary {
			if f, ok := c.matcher.Match(clean); ok {
				d.Fragment = f.Source
			}
		}
		return d
	}
	return d
}

// Rules returns the rule chain in evaluation order.
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Matcher returns the compiled pattern library.
func (c *Classifier) Matcher() *Matcher {
	return c.matcher
}
