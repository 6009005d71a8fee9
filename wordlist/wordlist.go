/*
Package wordlist reads word-exception lists for package lipi.

A word list is a UTF-8 text file with one exception per line:

	% place names
	nepal      नेपाल
	kathmandu = काठमाडौं

The Roman word and its Devanagari rendering are separated by '=' or by
white space. Lines starting with '%' or '#' are comments; blank lines are
ignored.
*/
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/lipi"
)

// Reader streams word exceptions from a word list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// LoadExceptions parses a word list from reader and adds all entries to
// builder b.
func LoadExceptions(b *lipi.Builder, reader io.Reader) error {
	return b.LoadExceptions(NewReader(reader))
}

// LoadFile adds all entries of the word list at path to builder b.
func LoadFile(b *lipi.Builder, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("wordlist: open %q: %w", path, err)
	}
	defer f.Close()
	if err = LoadExceptions(b, f); err != nil {
		return fmt.Errorf("wordlist: %q: %w", path, err)
	}
	return nil
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next exception as (word, devanagari).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		word, devanagari, ok := splitEntry(line)
		if !ok {
			return "", "", fmt.Errorf("wordlist: line %d: malformed entry %q", r.line, line)
		}
		return word, devanagari, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}

func splitEntry(line string) (word, devanagari string, ok bool) {
	if w, d, found := strings.Cut(line, "="); found {
		word, devanagari = strings.TrimSpace(w), strings.TrimSpace(d)
	} else {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return "", "", false
		}
		word, devanagari = fields[0], fields[1]
	}
	if word == "" || devanagari == "" || strings.ContainsFunc(word, isSpace) {
		return "", "", false
	}
	return word, devanagari, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
