package multipack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleByName(t *testing.T, name string) Rule {
	t.Helper()
	for _, r := range Default().Rules() {
		if r.Name == name {
			return r
		}
	}
	require.Failf(t, "rule not found", "no rule named %q", name)
	return Rule{}
}

func TestRules_Independently(t *testing.T) {
	tests := []struct {
		rule  string
		title string
		want  bool
	}{
		{RuleQuantitySuffix, "Snack Bars 8-pack", true},
		{RuleQuantitySuffix, "Hex Keys 6 pcs", true},
		{RuleQuantitySuffix, "Trail Mix 6pc", true},
		{RuleQuantitySuffix, "Cookies 12 PIECES", true},
		{RuleQuantitySuffix, "Pack of Lies Novel", false},
		{RuleQuantitySuffix, "Model 6pcx", false},

		{RuleParentheticalQuantity, "Candy Bars (6 count)", true},
		{RuleParentheticalQuantity, "Sparkling Water ( 12 Pack )", true},
		{RuleParentheticalQuantity, "Juice (1 x12)", true},
		{RuleParentheticalQuantity, "Wipes (3pcs)", true},
		{RuleParentheticalQuantity, "Candy Bars 6 count", false},
		{RuleParentheticalQuantity, "Guide (2nd Edition)", false},

		{RuleSetOf, "Soap Bars Set of 4", true},
		{RuleSetOf, "SET  OF 12 mugs", true},
		{RuleSetOf, "Set of Lies", false},

		{RulePluralQuantity, "Cookies 12 cookies", true},
		{RulePluralQuantity, "Muffins 6 Muffins", true},
		{RulePluralQuantity, "24 Hours Service", false},
		{RulePluralQuantity, "20 SERVINGS Container", false},
		{RulePluralQuantity, "12 Ounces Bottle", false},
		{RulePluralQuantity, "Bars and Restaurants Guide", false},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.title, func(t *testing.T) {
			r := ruleByName(t, tt.rule)
			assert.Equal(t, tt.want, r.Applies(tt.title))
		})
	}
}

func TestPluralQuantityRule_FirstOccurrenceOnly(t *testing.T) {
	r := pluralQuantityRule(map[string]bool{"pounds": true})

	assert.False(t, r.Applies("5 Pounds of 12 Cookies"))
	assert.True(t, r.Applies("12 Cookies and 5 Pounds"))
}

func TestPatternRule_UsesMatcher(t *testing.T) {
	m := MustCompile(Vocabulary{
		PackUnits:  []string{`crates?`},
		Quantities: []string{`\d+`},
	})
	r := patternRule(m)

	assert.Equal(t, RulePatternLibrary, r.Name)
	assert.True(t, r.Applies("Apples 3 Crates"))
	assert.False(t, r.Applies("Granola Bars 12 Pack"))
}
