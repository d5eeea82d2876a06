package hint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bent101/wordle-entropy/word"
)

// ErrBadPattern is returned by ParsePattern for malformed feedback.
var ErrBadPattern = errors.New("hint: bad feedback pattern")

func (o Outcome) String() string {
	switch o {
	case Match:
		return "🟩"
	case Partial:
		return "🟨"
	default:
		return "⬜"
	}
}

// String renders the outcomes as a row of coloured squares.
func (m Mask) String() string {
	var b strings.Builder
	for _, o := range m.Outcomes {
		b.WriteString(o.String())
	}
	return b.String()
}

// ColoredWord displays the guess with ANSI backgrounds for each outcome.
func (m Mask) ColoredWord() string {
	const (
		reset    = "\033[0m"
		grayBg   = "\033[48;5;236m\033[38;5;255m" // gray background, white text
		yellowBg = "\033[43m\033[30m"             // yellow background, black text
		greenBg  = "\033[42m\033[30m"             // green background, black text
	)

	var b strings.Builder
	for i, l := range m.Guess {
		switch m.Outcomes[i] {
		case Miss:
			b.WriteString(grayBg)
		case Partial:
			b.WriteString(yellowBg)
		case Match:
			b.WriteString(greenBg)
		}
		b.WriteByte(' ')
		b.WriteByte(l.Byte())
		b.WriteByte(' ')
		b.WriteString(reset)
	}
	return b.String()
}

// ParsePattern builds the mask a player reports for guess. The pattern has
// one symbol per letter: 0, b, x, '.' or '-' for Miss, 1 or y for Partial,
// 2 or g for Match. Letters are case-insensitive.
func ParsePattern(guess word.Word, pattern string) (Mask, error) {
	m := Mask{Guess: guess}
	if len(pattern) != word.Length {
		return m, fmt.Errorf("%w: %q has %d symbols, want %d", ErrBadPattern, pattern, len(pattern), word.Length)
	}
	for i := range word.Length {
		switch pattern[i] {
		case '0', 'b', 'B', 'x', 'X', '.', '-':
			m.Outcomes[i] = Miss
		case '1', 'y', 'Y':
			m.Outcomes[i] = Partial
		case '2', 'g', 'G':
			m.Outcomes[i] = Match
		default:
			return m, fmt.Errorf("%w: %q has unknown symbol %q", ErrBadPattern, pattern, pattern[i])
		}
	}
	return m, nil
}
