// Package corpus holds the labeled title corpus used as the acceptance oracle
// for the multi-pack classifier, and evaluates a classifier against it.
package corpus

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/packlens/backend/internal/multipack"
)

//go:embed corpus.yaml
var defaultCorpus []byte

// Case is one labeled title.
type Case struct {
	Title string `json:"title"`
	Want  bool   `json:"want"`
}

// document is the on-disk layout: titles grouped by label.
type document struct {
	Multipack []string `yaml:"multipack"`
	Single    []string `yaml:"single"`
}

// Classifier is anything that can explain its decision for a title.
type Classifier interface {
	Classify(title string) multipack.Decision
}

// Result pairs a case with the decision the classifier made.
type Result struct {
	Case
	Got multipack.Decision `json:"got"`
}

// Correct reports whether the decision matches the label.
func (r Result) Correct() bool {
	return r.Got.Multipack == r.Want
}

// Report summarizes an evaluation run.
type Report struct {
	Results []Result `json:"results"`
}

// Total returns the number of evaluated cases.
func (r Report) Total() int {
	return len(r.Results)
}

// CorrectCount returns the number of cases classified as labeled.
func (r Report) CorrectCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Correct() {
			n++
		}
	}
	return n
}

// Accuracy returns the fraction of correct cases, 0 for an empty report.
func (r Report) Accuracy() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.CorrectCount()) / float64(len(r.Results))
}

// Mismatches returns the results that disagree with their label.
func (r Report) Mismatches() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Correct() {
			out = append(out, res)
		}
	}
	return out
}

// Default returns the embedded corpus.
func Default() ([]Case, error) {
	return Load(bytes.NewReader(defaultCorpus))
}

// Load parses a YAML corpus. Titles must be non-empty and may not appear
// under both labels.
func Load(r io.Reader) ([]Case, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("corpus is empty")
		}
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	labels := make(map[string]bool, len(doc.Multipack)+len(doc.Single))
	cases := make([]Case, 0, len(doc.Multipack)+len(doc.Single))

	add := func(titles []string, want bool) error {
		for i, title := range titles {
			title = strings.TrimSpace(title)
			if title == "" {
				return fmt.Errorf("empty title at position %d", i)
			}
			if prev, ok := labels[title]; ok && prev != want {
				return fmt.Errorf("title %q is labeled both multipack and single", title)
			}
			labels[title] = want
			cases = append(cases, Case{Title: title, Want: want})
		}
		return nil
	}

	if err := add(doc.Multipack, true); err != nil {
		return nil, fmt.Errorf("multipack: %w", err)
	}
	if err := add(doc.Single, false); err != nil {
		return nil, fmt.Errorf("single: %w", err)
	}

	return cases, nil
}

// Evaluate classifies every case in order.
func Evaluate(c Classifier, cases []Case) Report {
	results := make([]Result, 0, len(cases))
	for _, tc := range cases {
		results = append(results, Result{Case: tc, Got: c.Classify(tc.Title)})
	}
	return Report{Results: results}
}
