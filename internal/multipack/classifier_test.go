package multipack

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMultipack(t *testing.T) {
	testCases := []struct {
		title string
		want  bool
	}{
		{"Granola Bars 12 Pack", true},
		{"Energy Bars 6ct", true},
		{"Toilet Paper 2x Mega Rolls", true},
		{"Soap Bars Set of 4", true},
		{"Snack Bars 8-pack", true},
		{"Candy Bars (6 count)", true},
		{"Trail Mix 6pc", true},
		{"Glazed Donuts 6 Donuts", true},
		{"Protein Bar Single", false},
		{"24 Hours Service", false},
		{"12 Ounces Bottle", false},
		{"3 Years Warranty", false},
		{"20 Servings Container", false},
		{"100 Calories Bar", false},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			if got := IsMultipack(tc.title); got != tc.want {
				t.Errorf("IsMultipack(%q) = %v, want %v", tc.title, got, tc.want)
			}
		})
	}
}

func TestIsMultipack_EdgeInput(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		want  bool
	}{
		{"empty", "", false},
		{"whitespace only", " \t\n ", false},
		{"surrounding whitespace", "   Soda 24 Cans  ", true},
		{"non-ASCII single item", "Café Crème Brûlée", false},
		{"full-width digits", "Granola Bars １２ Pack", true},
		{"multiplication sign", "Chocolate Bars 3×2", true},
		{"first plural phrase excluded", "5 Pounds of 12 Cookies", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsMultipack(tc.title))
		})
	}
}

func TestIsMultipack_Deterministic(t *testing.T) {
	titles := []string{"Granola Bars 12 Pack", "Protein Bar Single", "3 Years Warranty"}
	for _, title := range titles {
		first := IsMultipack(title)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, IsMultipack(title), title)
		}
	}
}

func TestIsMultipack_CaseInsensitive(t *testing.T) {
	titles := []string{
		"Granola Bars 12 Pack",
		"Energy Bars 6ct",
		"Toilet Paper 2x Mega Rolls",
		"Soap Bars Set of 4",
		"Cereal Bars Family Pack",
		"Protein Bar Single",
		"24 Hours Service",
		"Count Dracula Story",
	}

	for _, title := range titles {
		want := IsMultipack(title)
		assert.Equal(t, want, IsMultipack(strings.ToUpper(title)), "upper %q", title)
		assert.Equal(t, want, IsMultipack(strings.ToLower(title)), "lower %q", title)
	}
}

func TestIsMultipack_ExclusionsDoNotFire(t *testing.T) {
	for _, word := range DefaultVocabulary().Exclusions {
		for _, n := range []int{1, 2, 12, 100, 2024} {
			title := fmt.Sprintf("%d %s", n, word)
			assert.False(t, IsMultipack(title), title)
			assert.False(t, IsMultipack(strings.ToUpper(title)), strings.ToUpper(title))
		}
	}
}

func TestIsMultipack_ServingsIsNotAUnit(t *testing.T) {
	for _, title := range []string{"20 Servings Container", "Servings 24", "servings x12"} {
		assert.False(t, IsMultipack(title), title)
	}
}

func TestIsMultipack_DescriptorsAlwaysFire(t *testing.T) {
	phrases := []string{
		"multi pack", "multipack", "variety pack", "family pack", "bulk pack",
		"value pack", "assorted pack", "mixed pack",
		"family size", "bulk size", "party size", "share size", "economy size",
	}
	surroundings := []string{"%s", "Chips %s", "%s of Lies", "Single Edition (%s) 3 Years Warranty"}

	for _, phrase := range phrases {
		for _, s := range surroundings {
			title := fmt.Sprintf(s, phrase)
			assert.True(t, IsMultipack(title), title)
		}
	}
}

func TestClassify(t *testing.T) {
	c := Default()

	testCases := []struct {
		title    string
		wantRule string
	}{
		{"Granola Bars 12 Pack", RulePatternLibrary},
		{"Trail Mix 6pc", RuleQuantitySuffix},
		{"Soap Bars Set of 4", RuleSetOf},
		{"Glazed Donuts 6 Donuts", RulePluralQuantity},
		{"Protein Bar Single", ""},
		{"24 Hours Service", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			d := c.Classify(tc.title)
			assert.Equal(t, tc.title, d.Title)
			assert.Equal(t, tc.wantRule, d.Rule)
			assert.Equal(t, tc.wantRule != "", d.Multipack)
			assert.Equal(t, c.IsMultipack(tc.title), d.Multipack)
		})
	}
}

func TestClassify_ReportsFragment(t *testing.T) {
	d := Default().Classify("  Donuts 12ct ")

	assert.Equal(t, "Donuts 12ct", d.Title)
	assert.Equal(t, RulePatternLibrary, d.Rule)
	assert.Equal(t, `\b\d{2,}\s*ct\b`, d.Fragment)

	d = Default().Classify("Soap Bars Set of 4")
	assert.Empty(t, d.Fragment)
}

func TestNew(t *testing.T) {
	t.Run("extra terms extend the classifier", func(t *testing.T) {
		base := Default()
		require.False(t, base.IsMultipack("Jam 6 Jar"))

		c, err := New(DefaultVocabulary().Merge(Vocabulary{PluralItems: []string{`jars?`}}))
		require.NoError(t, err)
		assert.True(t, c.IsMultipack("Jam 6 Jar"))
	})

	t.Run("extra exclusions suppress the plural fallback", func(t *testing.T) {
		require.True(t, Default().IsMultipack("Rated 12 Stars"))

		c, err := New(DefaultVocabulary().Merge(Vocabulary{Exclusions: []string{"Stars"}}))
		require.NoError(t, err)
		assert.False(t, c.IsMultipack("Rated 12 Stars"))
	})

	t.Run("malformed vocabulary fails", func(t *testing.T) {
		_, err := New(DefaultVocabulary().Merge(Vocabulary{PackUnits: []string{`(`}}))
		assert.Error(t, err)
	})
}

func TestRules_Order(t *testing.T) {
	var names []string
	for _, r := range Default().Rules() {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{
		RulePatternLibrary,
		RuleQuantitySuffix,
		RuleParentheticalQuantity,
		RuleSetOf,
		RulePluralQuantity,
	}, names)
}

func TestDefault_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = IsMultipack("Paper Towels 12 Rolls")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.True(t, got, "goroutine %d", i)
	}
}
