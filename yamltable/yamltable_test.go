package yamltable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/lipi"
)

const overlay = `
name: forms
defaults: true
backend: trie
consonants:
  w: व
sequences:
  - {roman: ri, devanagari: ृ, kind: vowel-sign, independent: ऋ}
  - {roman: jny, devanagari: ज्ञ, kind: cluster}
exceptions:
  janakpur: जनकपुर
`

func TestLoadTableOverlay(t *testing.T) {
	tbl, err := LoadTable(strings.NewReader(overlay))
	require.NoError(t, err)

	assert.Equal(t, "forms", tbl.Identifier)
	assert.Equal(t, "trie", tbl.IndexStats().Backend)
	assert.Equal(t, "जनकपुर", tbl.Transliterate("Janakpur"))
	assert.Equal(t, "कृशि", tbl.Transliterate("krishi"))
	assert.Equal(t, "ऋ", tbl.Transliterate("ri"))
	assert.Equal(t, "ज्ञान", tbl.Transliterate("jnyaan"))
	// defaults are still there
	assert.Equal(t, "नेपाल", tbl.Transliterate("nepal"))
	assert.Equal(t, "श्री", tbl.Transliterate("shri"))
}

func TestLoadTableWithoutDefaults(t *testing.T) {
	tbl, err := LoadTable(strings.NewReader(`
name: tiny
vowels:
  - {roman: a, letter: अ, sign: ""}
consonants:
  k: क
`))
	require.NoError(t, err)
	assert.Equal(t, "क", tbl.Transliterate("ka"))
	assert.Equal(t, "अ", tbl.Transliterate("a"))
	assert.Equal(t, "क्क", tbl.Transliterate("kk"))
	assert.Equal(t, "xyz", tbl.Transliterate("xyz"), "letters without mapping pass through")
}

func TestLoadTableOptions(t *testing.T) {
	tbl, err := LoadTable(strings.NewReader("defaults: true\n"), lipi.WithWordScopedExceptions())
	require.NoError(t, err)
	assert.Equal(t, "yaml", tbl.Identifier)
	assert.Equal(t, "नेपाल सरकार", tbl.Transliterate("Nepal Sarkar"))
}

func TestLoadTableEmptyDocument(t *testing.T) {
	tbl, err := LoadTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "abc", tbl.Transliterate("abc"))
}

func TestLoadTableErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":      "colour: blue\n",
		"bad kind":         "sequences:\n  - {roman: kh, devanagari: ख, kind: nasal}\n",
		"short sequence":   "sequences:\n  - {roman: k, devanagari: क}\n",
		"long consonant":   "consonants:\n  kh: ख\n",
		"vowel non-letter": "vowels:\n  - {roman: '1', letter: अ}\n",
		"orphan sign":      "sequences:\n  - {roman: ri, devanagari: ृ, kind: vowel-sign}\n",
		"bad backend":      "backend: btree\n",
		"not yaml":         "sequences: [\n",
	}
	for name, src := range tests {
		_, err := LoadTable(strings.NewReader(src))
		assert.Error(t, err, name)
		if err != nil {
			assert.Contains(t, err.Error(), "yamltable", name)
		}
	}
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	tbl, err := LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, "जनकपुर", tbl.Transliterate("janakpur"))

	_, err = LoadTableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
