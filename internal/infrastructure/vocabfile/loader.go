// Package vocabfile reads extra classifier vocabulary from YAML files.
package vocabfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/packlens/backend/internal/multipack"
)

// File is the on-disk layout. Every list is optional; terms are regex
// fragments in the same form as the built-in tables ("jars?").
type File struct {
	PackUnits       []string `yaml:"pack_units"`
	PluralItems     []string `yaml:"plural_items"`
	Descriptors     []string `yaml:"descriptors"`
	SizeDescriptors []string `yaml:"size_descriptors"`
	Exclusions      []string `yaml:"exclusions"`
}

// Load reads a vocabulary file and returns only the extra terms.
func Load(path string) (multipack.Vocabulary, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return multipack.Vocabulary{}, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a vocabulary document. An empty document yields no extras.
func Decode(r io.Reader) (multipack.Vocabulary, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return multipack.Vocabulary{}, fmt.Errorf("decode vocabulary: %w", err)
	}

	return multipack.Vocabulary{
		PackUnits:       cleanTerms(file.PackUnits),
		PluralItems:     cleanTerms(file.PluralItems),
		Descriptors:     cleanTerms(file.Descriptors),
		SizeDescriptors: cleanTerms(file.SizeDescriptors),
		Exclusions:      lowerTerms(file.Exclusions),
	}, nil
}

// LoadMerged returns the default vocabulary extended with the file at path.
// An empty path yields the default vocabulary.
func LoadMerged(path string) (multipack.Vocabulary, error) {
	base := multipack.DefaultVocabulary()
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	extra, err := Load(path)
	if err != nil {
		return multipack.Vocabulary{}, err
	}
	return base.Merge(extra), nil
}

func cleanTerms(terms []string) []string {
	var out []string
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" {
			out = append(out, term)
		}
	}
	return out
}

func lowerTerms(terms []string) []string {
	out := cleanTerms(terms)
	for i, term := range out {
		out[i] = strings.ToLower(term)
	}
	return out
}
