/*
Package lipi transliterates Roman-script (phonetically typed) Nepali into
Devanagari script.

The engine is a character-stream transducer. Input is scanned left to right;
at every position the longest known Roman sequence (up to five letters) is
looked up in a prefix index before falling back to single letters. A single
piece of state travels along with the cursor: whether the last emitted unit
is a bare consonant still waiting for a vowel. It decides whether a vowel is
written as an independent letter (अ, इ, …) or as a combining sign (ि, ु, …),
and whether two consonants in a row get joined by a virama (्).

Common proper nouns and form vocabulary are kept in a word-exception table,
which is consulted before any scanning happens.

Output is NFC-normalized. Transliteration never fails: characters without a
mapping are passed through unchanged.

	lipi.Transliterate("shri")   // "श्री"
	lipi.Transliterate("Nepal")  // "नेपाल"
	lipi.Transliterate("12 34!") // "१२ ३४!"

Custom tables are assembled with a [Builder]; packages wordlist and yamltable
load exception lists and table overlays from external files.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package lipi

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lipi'
func tracer() tracing.Trace {
	return tracing.Select("lipi")
}

// errLipi formats an error for table construction.
func errLipi(format string, args ...any) error {
	return fmt.Errorf("lipi: "+format, args...)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
