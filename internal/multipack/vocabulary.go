package multipack

// Vocabulary holds the regex fragments the matcher is built from.
// Every term is a fragment, not a literal: "packs?" matches both forms.
type Vocabulary struct {
	PackUnits       []string
	PluralItems     []string
	Quantities      []string
	Standalone      []string
	Descriptors     []string
	SizeDescriptors []string
	SizeModifiers   []string
	Exclusions      []string
}

// packUnits are containers or groupings that imply more than one unit
var packUnits = []string{
	`packs?`, `cases?`, `bundles?`, `boxes?`, `cartons?`,
	`trays?`, `reels?`, `pkgs?`, `units?`,
}

// pluralItems are countable product nouns that indicate a multi-pack when quantified.
// "servings" is an exclusion word and must not appear here.
var pluralItems = []string{
	// Food items
	`bars?`, `rolls?`, `cans?`, `bottles?`, `packets?`, `sachets?`,
	`bags?`, `pouches?`, `tubes?`, `cups?`, `bowls?`, `containers?`,
	`wraps?`, `sticks?`, `pieces?`, `slices?`, `strips?`,

	// Paper/hygiene products
	`sheets?`, `tissues?`, `wipes?`, `towels?`, `napkins?`,

	// General items
	`items?`, `products?`, `portions?`, `doses?`,
	`tablets?`, `capsules?`, `pills?`, `drops?`,

	// Batteries/tech
	`batteries?`, `cells?`, `cartridges?`, `refills?`,

	// Size-modified compounds
	`mega\s*rolls?`, `super\s*rolls?`, `big\s*rolls?`, `jumbo\s*rolls?`,
	`family\s*rolls?`, `giant\s*rolls?`, `double\s*rolls?`,
	`mega\s*bars?`, `king\s*size\s*bars?`, `fun\s*size\s*bars?`,
}

// quantities describe how a count is written
var quantities = []string{
	`\d+`,               // "12"
	`\d+\s*[xX×]\s*\d+`, // "2x6", "3 X 4"
	`\d+\s*[xX×]`,       // "2x"
	`[xX×]\s*\d+`,       // "x12"
	`\d+\s*ct`,          // "12ct"
	`\d+\s*count`,       // "12 count"
}

// standalone quantity forms that are strong multi-pack signals on their own
var standalone = []string{
	`\d{2,}\s*ct`,       // "24ct"
	`\d+\s*[xX×]\s*\d+`, // "2x6"
	`[2-9]\s*[xX×]`,     // "2x" but not "1x"
	`\d+\s*count`,       // "6 count"
	`\d+[-\s]*pk`,       // "6-pk", "6 pk"
}

var descriptors = []string{
	`multi\s*pack`,
	`variety\s*pack`,
	`family\s*pack`,
	`bulk\s*pack`,
	`value\s*pack`,
	`assorted\s*pack`,
	`mixed\s*pack`,
}

var sizeDescriptors = []string{
	`family\s*size`,
	`bulk\s*size`,
	`party\s*size`,
	`share\s*size`,
	`economy\s*size`,
}

var sizeModifiers = []string{
	`mega`, `super`, `big`, `jumbo`, `giant`, `double`, `king\s*size`, `fun\s*size`,
}

// exclusions look like item counts but measure weight, volume, time or usage
var exclusions = []string{
	"ounces", "pounds", "grams", "kilos", "lbs", "oz", "ml", "liters",
	"inches", "feet", "meters", "cms", "years", "months", "days",
	"hours", "minutes", "seconds", "watts", "volts", "degrees",
	"calories", "servings", "uses", "washes", "loads",
}

// DefaultVocabulary returns a copy of the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		PackUnits:       clone(packUnits),
		PluralItems:     clone(pluralItems),
		Quantities:      clone(quantities),
		Standalone:      clone(standalone),
		Descriptors:     clone(descriptors),
		SizeDescriptors: clone(sizeDescriptors),
		SizeModifiers:   clone(sizeModifiers),
		Exclusions:      clone(exclusions),
	}
}

// Keywords returns pack units followed by plural items.
func (v Vocabulary) Keywords() []string {
	keywords := make([]string, 0, len(v.PackUnits)+len(v.PluralItems))
	keywords = append(keywords, v.PackUnits...)
	keywords = append(keywords, v.PluralItems...)
	return keywords
}

// Merge appends the terms of extra to v, skipping terms v already has.
func (v Vocabulary) Merge(extra Vocabulary) Vocabulary {
	return Vocabulary{
		PackUnits:       appendUnique(v.PackUnits, extra.PackUnits),
		PluralItems:     appendUnique(v.PluralItems, extra.PluralItems),
		Quantities:      appendUnique(v.Quantities, extra.Quantities),
		Standalone:      appendUnique(v.Standalone, extra.Standalone),
		Descriptors:     appendUnique(v.Descriptors, extra.Descriptors),
		SizeDescriptors: appendUnique(v.SizeDescriptors, extra.SizeDescriptors),
		SizeModifiers:   appendUnique(v.SizeModifiers, extra.SizeModifiers),
		Exclusions:      appendUnique(v.Exclusions, extra.Exclusions),
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

func appendUnique(base, extra []string) []string {
	out := clone(base)
	seen := make(map[string]bool, len(base)+len(extra))
	for _, term := range base {
		seen[term] = true
	}
	for _, term := range extra {
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}
	return out
}
