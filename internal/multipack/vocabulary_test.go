package multipack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()

	assert.Len(t, v.Quantities, 6)
	assert.Len(t, v.Standalone, 5)
	assert.Len(t, v.Descriptors, 7)
	assert.Len(t, v.SizeDescriptors, 5)
	assert.Contains(t, v.PackUnits, `packs?`)
	assert.Contains(t, v.PluralItems, `king\s*size\s*bars?`)
	assert.Contains(t, v.Exclusions, "servings")
	assert.NotContains(t, v.PluralItems, `servings?`)
}

func TestDefaultVocabulary_ReturnsCopies(t *testing.T) {
	v := DefaultVocabulary()
	v.PackUnits[0] = "mutated"
	v.Exclusions = append(v.Exclusions[:0], "nothing")

	fresh := DefaultVocabulary()
	assert.Equal(t, `packs?`, fresh.PackUnits[0])
	assert.Equal(t, "ounces", fresh.Exclusions[0])
}

func TestVocabulary_Keywords(t *testing.T) {
	v := Vocabulary{
		PackUnits:   []string{`packs?`, `cases?`},
		PluralItems: []string{`bars?`},
	}

	assert.Equal(t, []string{`packs?`, `cases?`, `bars?`}, v.Keywords())
}

func TestVocabulary_Merge(t *testing.T) {
	base := Vocabulary{
		PackUnits:  []string{`packs?`},
		Exclusions: []string{"hours"},
	}
	extra := Vocabulary{
		PackUnits:   []string{`packs?`, `crates?`, ""},
		PluralItems: []string{`jars?`},
		Exclusions:  []string{"hours", "ounces"},
	}

	merged := base.Merge(extra)

	assert.Equal(t, []string{`packs?`, `crates?`}, merged.PackUnits)
	assert.Equal(t, []string{`jars?`}, merged.PluralItems)
	assert.Equal(t, []string{"hours", "ounces"}, merged.Exclusions)
	assert.Equal(t, []string{`packs?`}, base.PackUnits, "merge must not modify the receiver")
}
