// Package yamltable loads transliteration table overlays from YAML.
//
// Example:
//
//	name: forms
//	defaults: true
//	backend: dat
//	word_scoped_exceptions: false
//	vowels:
//	  - {roman: a, letter: अ, sign: ""}
//	consonants:
//	  k: क
//	sequences:
//	  - {roman: shri, devanagari: श्री, kind: cluster}
//	  - {roman: aa, devanagari: ा, kind: vowel-sign}
//	exceptions:
//	  nepal: नेपाल
//
// With defaults set, entries are applied on top of the built-in Nepali tables.
package yamltable

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/lipi"
)

// File is the top-level structure of a table overlay.
type File struct {
	Name                 string            `yaml:"name"`
	Defaults             bool              `yaml:"defaults"`
	Backend              string            `yaml:"backend"`
	WordScopedExceptions bool              `yaml:"word_scoped_exceptions"`
	Vowels               []Vowel           `yaml:"vowels"`
	Consonants           map[string]string `yaml:"consonants"`
	Sequences            []Sequence        `yaml:"sequences"`
	Exceptions           map[string]string `yaml:"exceptions"`
}

// Vowel is a single-letter vowel with its independent letter and sign.
type Vowel struct {
	Roman  string `yaml:"roman"`
	Letter string `yaml:"letter"`
	Sign   string `yaml:"sign"`
}

// Sequence is a multi-character entry; Kind is "cluster" or "vowel-sign".
type Sequence struct {
	Roman      string `yaml:"roman"`
	Devanagari string `yaml:"devanagari"`
	Kind       string `yaml:"kind"`
	// Independent is the standalone vowel for a vowel sign, if not yet known.
	Independent string `yaml:"independent"`
}

// LoadTableFile reads an overlay from disk and builds its table.
func LoadTableFile(path string) (*lipi.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("yamltable: open %q: %w", path, err)
	}
	defer f.Close()
	t, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("yamltable: %q: %w", path, err)
	}
	return t, nil
}

// LoadTable parses an overlay from r and builds its table.
func LoadTable(r io.Reader, opts ...lipi.Option) (*lipi.Table, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	b, err := f.Builder(opts...)
	if err != nil {
		return nil, err
	}
	t, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("yamltable: build %q: %w", f.Name, err)
	}
	return t, nil
}

// Decode parses overlay YAML. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("yamltable: decode: %w", err)
	}
	if f.Name == "" {
		f.Name = "yaml"
	}
	return &f, nil
}

// Builder turns the overlay into a table builder. Options given here are
// applied after the ones declared in the file.
func (f *File) Builder(opts ...lipi.Option) (*lipi.Builder, error) {
	var fileOpts []lipi.Option
	if f.Backend != "" {
		fileOpts = append(fileOpts, lipi.WithBackend(lipi.Backend(f.Backend)))
	}
	if f.WordScopedExceptions {
		fileOpts = append(fileOpts, lipi.WithWordScopedExceptions())
	}
	b := lipi.NewBuilder(f.Name, fileOpts...).Apply(opts...)
	if f.Defaults {
		b.LoadDefaults()
	}
	for _, v := range f.Vowels {
		r, err := singleLetter(v.Roman)
		if err != nil {
			return nil, fmt.Errorf("yamltable: vowel: %w", err)
		}
		b.AddVowel(r, v.Letter, v.Sign)
	}
	for roman, letter := range f.Consonants {
		r, err := singleLetter(roman)
		if err != nil {
			return nil, fmt.Errorf("yamltable: consonant: %w", err)
		}
		b.AddConsonant(r, letter)
	}
	for _, s := range f.Sequences {
		kind, err := parseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("yamltable: sequence %q: %w", s.Roman, err)
		}
		if err = b.AddSequence(s.Roman, kind, s.Devanagari); err != nil {
			return nil, fmt.Errorf("yamltable: %w", err)
		}
		if s.Independent != "" {
			b.AddIndependent(s.Devanagari, s.Independent)
		}
	}
	b.LoadExceptionList(f.Exceptions)
	return b, nil
}

func parseKind(kind string) (lipi.UnitKind, error) {
	switch kind {
	case "", "cluster":
		return lipi.Cluster, nil
	case "vowel-sign":
		return lipi.VowelSign, nil
	}
	return 0, fmt.Errorf("unknown kind %q", kind)
}

func singleLetter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || !unicode.IsLetter(r) {
		return 0, fmt.Errorf("%q is not a single letter", s)
	}
	return r, nil
}
