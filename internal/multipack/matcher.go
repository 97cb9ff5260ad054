package multipack

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/packlens/backend/internal/domain"
)

// Matcher is the compiled alternation of every multi-pack surface form.
// It is immutable after Compile and safe for concurrent use.
type Matcher struct {
	re        *regexp.Regexp
	fragments []Fragment
	groups    []int // capture group index of each fragment
}

// Compile builds a Matcher from the vocabulary. Each fragment is compiled on
// its own first so a malformed term is reported by its source.
func Compile(v Vocabulary) (*Matcher, error) {
	fragments := BuildFragments(v)
	if len(fragments) == 0 {
		return nil, fmt.Errorf("%w: no fragments", domain.ErrInvalidVocabulary)
	}

	groups := make([]int, len(fragments))
	next := 1
	for i, f := range fragments {
		re, err := regexp.Compile("(?i)" + f.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: %s fragment %q: %v", domain.ErrInvalidVocabulary, f.Kind, f.Source, err)
		}
		groups[i] = next
		next += 1 + re.NumSubexp()
	}

	re, err := regexp.Compile(joinFragments(fragments))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidVocabulary, err)
	}

	return &Matcher{
		re:        re,
		fragments: fragments,
		groups:    groups,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(v Vocabulary) *Matcher {
	m, err := Compile(v)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMatcher = sync.OnceValue(func() *Matcher {
	return MustCompile(DefaultVocabulary())
})

// DefaultMatcher returns the matcher over the built-in vocabulary, compiling
// it on first use.
func DefaultMatcher() *Matcher {
	return defaultMatcher()
}

// ContainsMatch reports whether any alternative matches anywhere in text.
func (m *Matcher) ContainsMatch(text string) bool {
	return m.re.MatchString(text)
}

// Match returns the fragment responsible for the leftmost match in text.
func (m *Matcher) Match(text string) (Fragment, bool) {
	loc := m.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Fragment{}, false
	}
	for i, g := range m.groups {
		if loc[2*g] >= 0 {
			return m.fragments[i], true
		}
	}
	return Fragment{}, false
}

// Fragments returns a copy of the alternatives in table order.
func (m *Matcher) Fragments() []Fragment {
	return append([]Fragment(nil), m.fragments...)
}

// Len returns the number of alternatives.
func (m *Matcher) Len() int {
	return len(m.fragments)
}
