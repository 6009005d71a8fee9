package lipi

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Method names how a result was produced.
type Method string

const (
	MethodException Method = "word-exception" // whole input found in the exception table
	MethodPhonetic  Method = "phonetic"       // character-level scanning
)

// Result is the outcome of transliterating one input.
type Result struct {
	Original       string `json:"original_text"`
	Transliterated string `json:"transliterated_text"`
	Method         Method `json:"method"`
}

// Transliterate converts Roman-script text to Devanagari using the
// built-in Nepali table.
//
// Example:
//
//	"namaste" => "नमस्ते"
func Transliterate(text string) string {
	return Default().Transliterate(text)
}

// Transliterate converts Roman-script text to NFC-normalized Devanagari.
// It never fails; characters without a mapping are passed through.
func (t *Table) Transliterate(text string) string {
	return t.Explain(text).Transliterated
}

// Explain transliterates text and reports which method produced the output.
//
// An input which, trimmed and lowercased, is a word exception is replaced by
// the exception's literal rendering and not scanned at all.
func (t *Table) Explain(text string) Result {
	if literal, ok := t.Exception(text); ok {
		tracer().Debugf("input %q is a word exception", text)
		return Result{Original: text, Transliterated: literal, Method: MethodException}
	}
	return Result{
		Original:       text,
		Transliterated: Normalize(t.Scan(text)),
		Method:         MethodPhonetic,
	}
}

// Normalize concatenates units and applies canonical composition (NFC).
func Normalize(units []Unit) string {
	n := 0
	for _, u := range units {
		n += len(u.Text)
	}
	var b strings.Builder
	b.Grow(n)
	for _, u := range units {
		b.WriteString(u.Text)
	}
	return norm.NFC.String(b.String())
}
