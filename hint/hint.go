package hint

import (
	"github.com/bent101/wordle-entropy/word"
)

// Outcome is the feedback for a single letter of a guess.
type Outcome uint8

const (
	Miss    Outcome = iota // letter not (or no longer) available in the answer
	Partial                // letter in the answer, elsewhere
	Match                  // letter in this exact position
)

// Mask is a guess together with the outcome of each of its letters against
// one particular answer.
type Mask struct {
	Guess    word.Word
	Outcomes [word.Length]Outcome
}

// Compare computes the feedback for guess against answer.
//
// Exact matches are marked first and consume their answer letter. Every
// remaining guess letter then consumes the first unconsumed occurrence of
// the same letter in the answer, if any, and is marked Partial; otherwise it
// is a Miss. An answer letter is never consumed twice, so a guess with more
// copies of a letter than the answer gets Miss for the surplus.
func Compare(guess, answer word.Word) Mask {
	var consumed [word.Length]bool
	m := Mask{Guess: guess}

	for i := range word.Length {
		if guess[i] == answer[i] {
			m.Outcomes[i] = Match
			consumed[i] = true
		}
	}

	for i := range word.Length {
		if m.Outcomes[i] == Match {
			continue
		}
		for j := range word.Length {
			if !consumed[j] && answer[j] == guess[i] {
				consumed[j] = true
				m.Outcomes[i] = Partial
				break
			}
		}
	}

	return m
}

// Matches reports whether candidate could be the answer that produced m. It
// runs the consumption rules of Compare in reverse without building a mask.
//
// Every answer is accepted by its own mask, so Compare(m.Guess, c) == m
// implies m.Matches(c). The converse does not hold: only Match positions pin
// a letter, so a candidate may repeat the guessed letter at a Partial or Miss
// position as long as the letter counts work out.
//
// The passes must run in the order Match, Partial, Miss: each one depends on
// the letters consumed by the passes before it.
func (m Mask) Matches(candidate word.Word) bool {
	var consumed [word.Length]bool
	g := m.Guess

	for i := range word.Length {
		if m.Outcomes[i] != Match {
			continue
		}
		if candidate[i] != g[i] {
			return false
		}
		consumed[i] = true
	}

	for i := range word.Length {
		if m.Outcomes[i] != Partial {
			continue
		}
		found := false
		for j := range word.Length {
			if j != i && !consumed[j] && candidate[j] == g[i] {
				consumed[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for i := range word.Length {
		if m.Outcomes[i] != Miss {
			continue
		}
		for j := range word.Length {
			if !consumed[j] && candidate[j] == g[i] {
				return false
			}
		}
	}

	return true
}

// Solved reports whether every letter of the guess is a Match.
func (m Mask) Solved() bool {
	for _, o := range m.Outcomes {
		if o != Match {
			return false
		}
	}
	return true
}

// Rank is a mask's outcomes read as a base 3 number, first letter most
// significant (Miss=0, Partial=1, Match=2). It identifies the outcome
// pattern independently of the guess and fits in 0..242.
type Rank uint8

// NumRanks is the number of distinct outcome patterns.
const NumRanks = 243

// Rank returns the outcome pattern of m.
func (m Mask) Rank() Rank {
	var r uint8
	for _, o := range m.Outcomes {
		r = r*3 + uint8(o)
	}
	return Rank(r)
}

// Outcomes decodes r back into per-letter outcomes.
func (r Rank) Outcomes() [word.Length]Outcome {
	var out [word.Length]Outcome
	v := uint8(r)
	for i := word.Length - 1; i >= 0; i-- {
		out[i] = Outcome(v % 3)
		v /= 3
	}
	return out
}

// Mask pairs the pattern r with guess.
func (r Rank) Mask(guess word.Word) Mask {
	return Mask{Guess: guess, Outcomes: r.Outcomes()}
}
