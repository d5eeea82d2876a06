// Package wordlist reads word lists, one word per line.
//
// Every line must be a valid word. A bad line is never skipped: loading
// stops at the first one with a LoadError naming the file and line.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/bent101/wordle-entropy/word"
)

// Lang selects a pair of bundled lists: allowed guesses and solutions.
type Lang int

const (
	EN Lang = iota
	DE
)

// ParseLang accepts "en" or "de" in any case.
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(s) {
	case "en":
		return EN, nil
	case "de":
		return DE, nil
	}
	return 0, fmt.Errorf("wordlist: unknown language %q", s)
}

func (l Lang) String() string {
	if l == DE {
		return "de"
	}
	return "en"
}

// WordFile is the file name of the allowed-guess list.
func (l Lang) WordFile() string {
	return l.String() + "_words.txt"
}

// SolutionFile is the file name of the solution list.
func (l Lang) SolutionFile() string {
	return l.String() + "_sols.txt"
}

// LoadError is a failure to read a word list, either I/O or a line that does
// not parse as a word. Line is 1-based and 0 for I/O errors not tied to a
// line.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsParse reports whether the failure was a malformed word.
func (e *LoadError) IsParse() bool {
	var pe *word.ParseError
	return errors.As(e.Err, &pe)
}

// Load reads the word list at path.
func Load(path string) ([]word.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	words, err := read(f, path)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Int("words", len(words)).
		Int("repeats", lo.CountBy(words, word.Word.HasRepeats)).
		Msg("loaded word list")
	return words, nil
}

// Read parses a word list from r.
func Read(r io.Reader) ([]word.Word, error) {
	return read(r, "<reader>")
}

func read(r io.Reader, name string) ([]word.Word, error) {
	var out []word.Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w, err := word.Parse(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, &LoadError{Path: name, Line: line, Err: err}
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Path: name, Line: line + 1, Err: err}
	}
	return out, nil
}

// LoadLang loads both lists for lang from dir.
func LoadLang(dir string, lang Lang) (guesses, answers []word.Word, err error) {
	guesses, err = Load(filepath.Join(dir, lang.WordFile()))
	if err != nil {
		return nil, nil, err
	}
	answers, err = Load(filepath.Join(dir, lang.SolutionFile()))
	if err != nil {
		return nil, nil, err
	}
	return guesses, answers, nil
}
