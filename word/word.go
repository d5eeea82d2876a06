package word

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Length is the number of letters in every word.
const Length = 5

// AlphabetSize is the number of distinct letters.
const AlphabetSize = 26

// Letter is one of the 26 symbols a-z, stored as 0..25.
type Letter uint8

// ParseError reports text that could not be decoded into a Letter or Word.
type ParseError struct {
	Text   string
	Pos    int // -1 when the length is wrong
	Reason string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("parse %q: %s", e.Text, e.Reason)
	}
	return fmt.Sprintf("parse %q: %s at position %d", e.Text, e.Reason, e.Pos+1)
}

// ParseLetter decodes an ASCII letter, ignoring case.
func ParseLetter(b byte) (Letter, error) {
	switch {
	case b >= 'a' && b <= 'z':
		return Letter(b - 'a'), nil
	case b >= 'A' && b <= 'Z':
		return Letter(b - 'A'), nil
	}
	return 0, &ParseError{Text: string(b), Pos: 0, Reason: "not an ASCII letter"}
}

// Byte returns the canonical (upper case) ASCII form of l.
func (l Letter) Byte() byte {
	return 'A' + byte(l)
}

func (l Letter) String() string {
	return string(l.Byte())
}

// Word is a fixed sequence of Length letters. It is a value type: copies are
// cheap and comparison with == is element-wise.
type Word [Length]Letter

// Parse decodes text into a Word. Case is ignored; the text must be exactly
// Length ASCII letters.
func Parse(text string) (Word, error) {
	var w Word
	if len(text) != Length {
		return w, &ParseError{Text: text, Pos: -1, Reason: fmt.Sprintf("want %d letters, got %d bytes", Length, len(text))}
	}
	for i := range Length {
		l, err := ParseLetter(text[i])
		if err != nil {
			return Word{}, &ParseError{Text: text, Pos: i, Reason: "not an ASCII letter"}
		}
		w[i] = l
	}
	return w, nil
}

// MustParse is like Parse but panics on failure. Intended for literals.
func MustParse(text string) Word {
	w, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns the upper case form of w.
func (w Word) String() string {
	var b [Length]byte
	for i, l := range w {
		b[i] = l.Byte()
	}
	return string(b[:])
}

// Lower returns the lower case form of w.
func (w Word) Lower() string {
	return strings.ToLower(w.String())
}

// LetterSet returns the set of letters occurring in w.
func (w Word) LetterSet() *bitset.BitSet {
	set := bitset.New(AlphabetSize)
	for _, l := range w {
		set.Set(uint(l))
	}
	return set
}

// HasRepeats reports whether some letter occurs more than once in w.
func (w Word) HasRepeats() bool {
	return w.LetterSet().Count() != Length
}
