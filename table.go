package lipi

import (
	"io"
	"maps"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ExceptionReader yields word exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, devanagari string, err error)
}

// Table is a compiled, read-only set of transliteration tables.
//
// A table contains:
//   - multi-character Roman sequences (2..5 letters), compiled into a prefix index
//   - standalone vowels and their combining signs, keyed by single letters
//   - single consonants
//   - whole-word exceptions.
//
// Tables are safe for concurrent use by multiple goroutines.
type Table struct {
	Identifier  string // Identifies the table
	units       []Unit // unit ID => multi-character unit, slot 0 unused
	index       symbolIndex
	vowels      map[rune]string
	matras      map[rune]string
	independent map[string]string // vowel sign => independent vowel letter
	consonants  map[rune]string
	exceptions  map[string]string
	wordScoped  bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithBackend selects the prefix index for multi-character sequences.
func WithBackend(b Backend) Option {
	return func(bld *Builder) {
		bld.backend = b
	}
}

// WithWordScopedExceptions lets word exceptions match every run of letters
// in an input, in addition to the input as a whole.
func WithWordScopedExceptions() Option {
	return func(bld *Builder) {
		bld.wordScoped = true
	}
}

// Builder collects table entries. Later entries override earlier ones, so
// defaults may be loaded first and then selectively replaced.
// A Builder is not safe for concurrent use.
type Builder struct {
	name        string
	backend     Backend
	wordScoped  bool
	sequences   map[string]Unit
	order       []string
	vowels      map[rune]string
	matras      map[rune]string
	independent map[string]string
	consonants  map[rune]string
	exceptions  map[string]string
}

// NewBuilder creates an empty builder for a table called name.
func NewBuilder(name string, opts ...Option) *Builder {
	b := &Builder{
		name:        name,
		backend:     BackendDAT,
		sequences:   make(map[string]Unit),
		vowels:      make(map[rune]string),
		matras:      make(map[rune]string),
		independent: make(map[string]string),
		consonants:  make(map[rune]string),
		exceptions:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply applies options to an existing builder.
func (b *Builder) Apply(opts ...Option) *Builder {
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LoadDefaults adds the built-in Nepali tables.
func (b *Builder) LoadDefaults() *Builder {
	for _, v := range defaultVowels {
		b.AddVowel(v.roman, v.letter, v.sign)
	}
	for sign, letter := range defaultIndependent {
		b.independent[sign] = letter
	}
	for r, letter := range defaultConsonants {
		b.AddConsonant(r, letter)
	}
	for _, s := range defaultSequences {
		err := b.AddSequence(s.roman, s.kind, s.text)
		assert(err == nil, "invalid built-in sequence "+s.roman)
	}
	b.LoadExceptionList(defaultExceptions)
	return b
}

// AddSequence registers a multi-character Roman sequence. kind must be
// Cluster or VowelSign; roman must be 2 to 5 letters long.
func (b *Builder) AddSequence(roman string, kind UnitKind, text string) error {
	key := strings.ToLower(roman)
	if n := utf8.RuneCountInString(key); n < minSequenceLen || n > maxSequenceLen {
		return errLipi("sequence %q must have %d to %d letters", roman, minSequenceLen, maxSequenceLen)
	}
	for _, r := range key {
		if !unicode.IsLetter(r) {
			return errLipi("sequence %q contains non-letter %q", roman, r)
		}
	}
	if kind != Cluster && kind != VowelSign {
		return errLipi("sequence %q has unsupported kind %s", roman, kind)
	}
	if text == "" {
		return errLipi("sequence %q has empty rendering", roman)
	}
	if _, exists := b.sequences[key]; !exists {
		b.order = append(b.order, key)
	}
	b.sequences[key] = Unit{Kind: kind, Roman: key, Text: text}
	return nil
}

// AddVowel registers a single-letter vowel with its independent letter and
// its combining sign. sign may be empty for an inherent vowel.
func (b *Builder) AddVowel(roman rune, letter, sign string) {
	r := unicode.ToLower(roman)
	b.vowels[r] = letter
	b.matras[r] = sign
	if sign != "" {
		b.independent[sign] = letter
	}
}

// AddIndependent links a vowel sign to its independent vowel letter.
func (b *Builder) AddIndependent(sign, letter string) {
	b.independent[sign] = letter
}

// AddConsonant registers a single-letter consonant.
func (b *Builder) AddConsonant(roman rune, letter string) {
	b.consonants[unicode.ToLower(roman)] = letter
}

// AddException registers a whole-word exception. Words are matched
// case-insensitively.
func (b *Builder) AddException(word, devanagari string) {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return
	}
	b.exceptions[key] = devanagari
}

// LoadExceptionList adds exceptions from an in-memory map.
func (b *Builder) LoadExceptionList(exceptions map[string]string) {
	for word, devanagari := range exceptions {
		b.AddException(word, devanagari)
	}
}

// LoadExceptions adds exceptions from a streaming source.
func (b *Builder) LoadExceptions(reader ExceptionReader) error {
	for {
		word, devanagari, err := reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		b.AddException(word, devanagari)
	}
}

// Build compiles the collected entries into an immutable Table.
func (b *Builder) Build() (*Table, error) {
	index, err := newSymbolIndex(b.backend)
	if err != nil {
		return nil, err
	}
	t := &Table{
		Identifier:  b.name,
		units:       make([]Unit, 1, len(b.order)+1),
		index:       index,
		vowels:      maps.Clone(b.vowels),
		matras:      maps.Clone(b.matras),
		independent: maps.Clone(b.independent),
		consonants:  maps.Clone(b.consonants),
		exceptions:  make(map[string]string, len(b.exceptions)),
		wordScoped:  b.wordScoped,
	}
	for _, key := range b.order {
		u := b.sequences[key]
		if u.Kind == VowelSign {
			if _, ok := t.independent[u.Text]; !ok {
				return nil, errLipi("vowel sign %q for %q has no independent vowel letter", u.Text, key)
			}
		}
		t.units = append(t.units, u)
		if err = index.Insert(key, len(t.units)-1); err != nil {
			return nil, errLipi("indexing %q: %w", key, err)
		}
	}
	index.Freeze()
	for word, devanagari := range b.exceptions {
		t.exceptions[word] = norm.NFC.String(devanagari)
	}
	stats := t.IndexStats()
	tracer().Infof("table %q: %d sequences, %d exceptions, index backend=%s used=%d total=%d fill=%.2f",
		t.Identifier, stats.Keys, len(t.exceptions), stats.Backend, stats.UsedSlots, stats.TotalSlots,
		stats.FillRatio())
	return t, nil
}

// IndexStats reports density metrics for the multi-character index.
func (t *Table) IndexStats() IndexStats {
	if t == nil || t.index == nil {
		return IndexStats{}
	}
	return t.index.Stats()
}

// Exception returns the literal rendering registered for word, if any.
func (t *Table) Exception(word string) (string, bool) {
	s, ok := t.exceptions[strings.ToLower(strings.TrimSpace(word))]
	return s, ok
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewBuilder("nepali").LoadDefaults().Build()
	assert(err == nil, "built-in tables do not compile")
	return t
})

// Default returns the built-in Nepali table. It is built on first use and
// shared by all callers.
func Default() *Table {
	return defaultTable()
}
