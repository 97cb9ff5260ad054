package multipack

import (
	"fmt"
	"strings"
)

// FragmentKind identifies which table a fragment was generated from.
type FragmentKind string

const (
	KindQuantityKeyword FragmentKind = "quantity-keyword" // "12 bars"
	KindKeywordQuantity FragmentKind = "keyword-quantity" // "bars 12"
	KindStandalone      FragmentKind = "standalone"
	KindDescriptor      FragmentKind = "descriptor"
	KindSizeDescriptor  FragmentKind = "size-descriptor"
	KindSizeModifier    FragmentKind = "size-modifier"
)

// Fragment is one alternative of the compiled matcher.
type Fragment struct {
	Kind   FragmentKind `json:"kind"`
	Source string       `json:"source"`
}

// BuildFragments expands the vocabulary into the ordered list of matcher
// alternatives: the quantity x keyword cross product in both orders, then the
// standalone, descriptor, size-descriptor and size-modifier forms.
func BuildFragments(v Vocabulary) []Fragment {
	keywords := v.Keywords()
	fragments := make([]Fragment, 0, len(v.Quantities)*len(keywords)*2+
		len(v.Standalone)+len(v.Descriptors)+len(v.SizeDescriptors)+1)

	for _, qty := range v.Quantities {
		qty = group(qty)
		for _, item := range keywords {
			item = group(item)
			fragments = append(fragments,
				Fragment{Kind: KindQuantityKeyword, Source: bounded(qty + `\s*` + item)},
				Fragment{Kind: KindKeywordQuantity, Source: bounded(item + `\s*` + qty)},
			)
		}
	}

	for _, p := range v.Standalone {
		fragments = append(fragments, Fragment{Kind: KindStandalone, Source: bounded(group(p))})
	}
	for _, p := range v.Descriptors {
		fragments = append(fragments, Fragment{Kind: KindDescriptor, Source: bounded(group(p))})
	}
	for _, p := range v.SizeDescriptors {
		fragments = append(fragments, Fragment{Kind: KindSizeDescriptor, Source: bounded(group(p))})
	}

	if len(v.SizeModifiers) > 0 {
		modifier := fmt.Sprintf(`(?:%s)\s+\w+s`, strings.Join(v.SizeModifiers, "|"))
		fragments = append(fragments, Fragment{Kind: KindSizeModifier, Source: bounded(modifier)})
	}

	return fragments
}

func bounded(p string) string {
	return `\b` + p + `\b`
}

// group keeps an alternation inside a term from splitting the fragment it
// is concatenated into.
func group(term string) string {
	if strings.Contains(term, "|") {
		return "(?:" + term + ")"
	}
	return term
}

// joinFragments wraps every fragment in its own group so a match can be
// traced back to the alternative that produced it.
func joinFragments(fragments []Fragment) string {
	var b strings.Builder
	b.WriteString("(?i)")
	for i, f := range fragments {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteByte('(')
		b.WriteString(f.Source)
		b.WriteByte(')')
	}
	return b.String()
}
