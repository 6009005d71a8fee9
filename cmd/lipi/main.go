// Command lipi transliterates Roman-script Nepali into Devanagari.
//
// Positional arguments are joined and transliterated as one text. Without
// arguments, standard input is transliterated line by line.
//
//	lipi shri ganesh
//	echo "nepal" | lipi --json
//	lipi --table forms.yaml --exceptions places.txt < fields.txt
//
// Every flag may also be set through the environment, e.g. LIPI_JSON=true.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/rs/zerolog"

	"github.com/npillmayer/lipi"
	"github.com/npillmayer/lipi/wordlist"
	"github.com/npillmayer/lipi/yamltable"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ff.ErrHelp) {
			fmt.Fprintf(os.Stderr, "lipi: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	table          string
	exceptions     string
	backend        string
	wordExceptions bool
	json           bool
	logLevel       string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := ff.NewFlagSet("lipi")
	var (
		table          = fs.StringLong("table", "", "YAML table overlay")
		exceptions     = fs.StringLong("exceptions", "", "word-exception list")
		backend        = fs.StringLong("backend", "", "symbol index backend (dat, trie)")
		wordExceptions = fs.BoolLong("word-exceptions", "match word exceptions inside longer texts")
		asJSON         = fs.BoolLong("json", "print one JSON result per input")
		logLevel       = fs.StringLong("log-level", "warn", "log level (debug, info, warn, error)")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("LIPI")); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	opts := options{
		table:          *table,
		exceptions:     *exceptions,
		backend:        *backend,
		wordExceptions: *wordExceptions,
		json:           *asJSON,
		logLevel:       *logLevel,
	}

	log := newLogger(stderr, opts.logLevel)
	tbl, err := loadTable(opts)
	if err != nil {
		return err
	}
	stats := tbl.IndexStats()
	log.Debug().
		Str("table", tbl.Identifier).
		Str("backend", stats.Backend).
		Int("sequences", stats.Keys).
		Msg("table loaded")

	out := bufio.NewWriter(stdout)
	defer out.Flush()
	if rest := fs.GetArgs(); len(rest) > 0 {
		return emit(out, tbl, strings.Join(rest, " "), opts.json)
	}
	scanner := bufio.NewScanner(stdin)
	lines := 0
	for scanner.Scan() {
		if err := emit(out, tbl, scanner.Text(), opts.json); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.Debug().Int("lines", lines).Msg("input done")
	return nil
}

func loadTable(opts options) (*lipi.Table, error) {
	var b *lipi.Builder
	var buildOpts []lipi.Option
	if opts.backend != "" {
		buildOpts = append(buildOpts, lipi.WithBackend(lipi.Backend(opts.backend)))
	}
	if opts.wordExceptions {
		buildOpts = append(buildOpts, lipi.WithWordScopedExceptions())
	}
	if opts.table != "" {
		f, err := os.Open(opts.table)
		if err != nil {
			return nil, fmt.Errorf("opening table: %w", err)
		}
		defer f.Close()
		overlay, err := yamltable.Decode(f)
		if err != nil {
			return nil, err
		}
		if b, err = overlay.Builder(buildOpts...); err != nil {
			return nil, err
		}
	} else {
		b = lipi.NewBuilder("nepali", buildOpts...).LoadDefaults()
	}
	if opts.exceptions != "" {
		if err := wordlist.LoadFile(b, opts.exceptions); err != nil {
			return nil, err
		}
	}
	tbl, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building table: %w", err)
	}
	return tbl, nil
}

func emit(w io.Writer, tbl *lipi.Table, text string, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, tbl.Transliterate(text))
		return err
	}
	return json.NewEncoder(w).Encode(tbl.Explain(text))
}

// newLogger writes to w, colored if w is a terminal.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.DateTime}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
