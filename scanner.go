package lipi

import (
	"strings"
	"unicode"
)

// scanState is the transient state of one scan. It is rebuilt for every call.
type scanState struct {
	input   []rune
	pos     int
	out     []Unit
	pending bool // last unit is a bare consonant still waiting for a vowel
}

func (st *scanState) emit(kind UnitKind, roman, text string) {
	st.out = append(st.out, Unit{Kind: kind, Roman: roman, Text: text})
}

// Scan splits text into output units, left to right. Every step consumes
// at least one rune, so the scan is linear in the length of text.
//
// Scan does not consult the whole-input exception rule; see Explain.
func (t *Table) Scan(text string) []Unit {
	st := &scanState{
		input: []rune(text),
		out:   make([]Unit, 0, len(text)),
	}
	for st.pos < len(st.input) {
		r := st.input[st.pos]
		switch {
		case unicode.IsSpace(r):
			st.emit(Verbatim, string(r), string(r))
			st.pending = false
			st.pos++
		case r >= '0' && r <= '9':
			st.emit(Digit, string(r), string(digitZero+(r-'0')))
			st.pending = false
			st.pos++
		case !unicode.IsLetter(r):
			st.emit(Verbatim, string(r), string(r))
			st.pending = false
			st.pos++
		default:
			if t.wordScoped && t.scanWordException(st) {
				continue
			}
			if t.scanSequence(st) {
				continue
			}
			t.scanLetter(st)
		}
	}
	return st.out
}

// scanWordException matches a run of letters starting at a word boundary
// against the exception table.
func (t *Table) scanWordException(st *scanState) bool {
	if st.pos > 0 && unicode.IsLetter(st.input[st.pos-1]) {
		return false
	}
	end := st.pos
	for end < len(st.input) && unicode.IsLetter(st.input[end]) {
		end++
	}
	word := string(st.input[st.pos:end])
	literal, ok := t.exceptions[strings.ToLower(word)]
	if !ok {
		return false
	}
	tracer().Debugf("word exception %q => %q", word, literal)
	st.emit(Exception, word, literal)
	st.pending = false
	st.pos = end
	return true
}

// scanSequence tries the longest multi-character match at the cursor.
// The index is walked rune by rune; the deepest terminal state within
// maxSequenceLen runes wins, which equals probing lengths 5 down to 2.
func (t *Table) scanSequence(st *scanState) bool {
	it := t.index.Iterator()
	best, bestLen := 0, 0
	for l := 1; l <= maxSequenceLen && st.pos+l <= len(st.input); l++ {
		unit, alive := it.Next(unicode.ToLower(st.input[st.pos+l-1]))
		if unit != 0 && l >= minSequenceLen {
			best, bestLen = unit, l
		}
		if !alive {
			break
		}
	}
	if best == 0 {
		return false
	}
	u := t.units[best]
	roman := string(st.input[st.pos : st.pos+bestLen])
	switch u.Kind {
	case VowelSign:
		if st.pending {
			st.emit(VowelSign, roman, u.Text)
		} else {
			st.emit(VowelLetter, roman, t.independent[u.Text])
		}
		st.pending = false
	case Cluster:
		st.emit(Cluster, roman, u.Text)
		st.pending = !endsInVowel(u.Roman)
	default:
		assert(false, "multi-character unit of kind "+u.Kind.String())
	}
	st.pos += bestLen
	return true
}

// scanLetter handles a single letter: consonant, vowel or pass-through.
func (t *Table) scanLetter(st *scanState) {
	r := st.input[st.pos]
	lower := unicode.ToLower(r)
	roman := string(r)
	if letter, ok := t.consonants[lower]; ok {
		if st.pending {
			st.emit(Joiner, "", virama)
		}
		st.emit(Consonant, roman, letter)
		st.pending = true
	} else if letter, ok := t.vowels[lower]; ok {
		if st.pending {
			st.emit(VowelSign, roman, t.matras[lower])
		} else {
			st.emit(VowelLetter, roman, letter)
		}
		st.pending = false
	} else {
		st.emit(Verbatim, roman, roman)
		st.pending = false
	}
	st.pos++
}
