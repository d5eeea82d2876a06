// Package solver tracks one game: the answers still possible after every
// observed mask, and the next guess to play.
package solver

import (
	"errors"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/scoring"
	"github.com/bent101/wordle-entropy/search"
	"github.com/bent101/wordle-entropy/word"
)

// ErrNoAnswers means New was given no answers.
var ErrNoAnswers = errors.New("solver: empty answer pool")

// Solver narrows an answer pool one mask at a time. Narrowing is monotonic:
// an answer ruled out once never comes back.
type Solver struct {
	ID string

	guesses  []word.Word
	answers  []word.Word
	alive    *bitset.BitSet // indices into answers
	history  []hint.Mask
	bits     float64
	searcher *search.Searcher
	logger   zerolog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithSearcher sets the searcher Suggest ranks guesses with.
func WithSearcher(s *search.Searcher) Option {
	return func(sv *Solver) { sv.searcher = s }
}

// WithLogger logs the game to l, tagged with the session ID.
func WithLogger(l zerolog.Logger) Option {
	return func(sv *Solver) { sv.logger = l }
}

// New starts a game. Answers are always guessable, so any answer missing
// from guesses is appended to the guess pool.
func New(guesses, answers []word.Word, opts ...Option) (*Solver, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	s := &Solver{
		ID:       uuid.NewString(),
		answers:  lo.Uniq(answers),
		searcher: search.New(),
		logger:   zerolog.Nop(),
	}
	s.guesses = lo.Uniq(append(slices.Clone(guesses), s.answers...))
	n := uint(len(s.answers))
	s.alive = bitset.New(n).FlipRange(0, n)
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session", s.ID).Logger()

	s.logger.Info().
		Int("guesses", len(s.guesses)).
		Int("answers", len(s.answers)).
		Msg("new game")
	return s, nil
}

// Observe narrows the remaining answers to those consistent with m and
// returns the bits gained. A guess that was not solved is ruled out as well.
// If no answer is left the state is unchanged and scoring.ErrNoCandidates is
// returned.
func (s *Solver) Observe(m hint.Mask) (float64, error) {
	consistent := s.alive.Clone()
	solved := m.Solved()
	for i, ok := s.alive.NextSet(0); ok; i, ok = s.alive.NextSet(i + 1) {
		a := s.answers[i]
		if !m.Matches(a) || (!solved && a == m.Guess) {
			consistent.Clear(i)
		}
	}
	if consistent.None() {
		s.logger.Warn().Str("guess", m.Guess.String()).Str("mask", m.String()).Msg("mask rules out every answer")
		return 0, scoring.ErrNoCandidates
	}

	bits := scoring.InfoBits(int(s.alive.Count()), int(consistent.Count()))
	s.alive = consistent
	s.history = append(s.history, m)
	s.bits += bits

	s.logger.Info().
		Str("guess", m.Guess.String()).
		Str("mask", m.String()).
		Uint("remaining", s.alive.Count()).
		Float64("bits", bits).
		Msg("observed")
	return bits, nil
}

// Remaining returns the answers still possible, in pool order.
func (s *Solver) Remaining() []word.Word {
	out := make([]word.Word, 0, s.alive.Count())
	for i, ok := s.alive.NextSet(0); ok; i, ok = s.alive.NextSet(i + 1) {
		out = append(out, s.answers[i])
	}
	return out
}

// Suggest returns the guess to play next. With a single answer left it is
// that answer. A best guess outside the remaining answers that could leave
// all of them standing is swapped for the first remaining answer, so every
// suggestion either wins or narrows the pool.
func (s *Solver) Suggest() (search.Scored, error) {
	remaining := s.Remaining()
	if len(remaining) == 1 {
		return search.Scored{Word: remaining[0]}, nil
	}

	best, err := s.searcher.BestGuess(s.guesses, remaining)
	if err != nil {
		return search.Scored{}, err
	}
	if !slices.Contains(remaining, best.Word) && mayStall(best.Word, remaining) {
		s.logger.Debug().Str("guess", best.Word.String()).Msg("best guess may not narrow remaining answers")
		first := remaining[0]
		bits, err := search.Score(first, s.guesses, remaining)
		if err != nil {
			return search.Scored{}, err
		}
		return search.Scored{Word: first, Bits: bits}, nil
	}
	return best, nil
}

// mayStall reports whether some answer would give guess a mask that every
// answer fits.
func mayStall(guess word.Word, answers []word.Word) bool {
	return lo.SomeBy(answers, func(a word.Word) bool {
		return scoring.CountHits(answers, hint.Compare(guess, a)) == len(answers)
	})
}

// Solved reports whether the last observed mask was all Match.
func (s *Solver) Solved() bool {
	return len(s.history) > 0 && s.history[len(s.history)-1].Solved()
}

// History returns the observed masks, oldest first.
func (s *Solver) History() []hint.Mask {
	return slices.Clone(s.history)
}

// Bits is the total information gained so far.
func (s *Solver) Bits() float64 {
	return s.bits
}

// Guesses returns the guess pool.
func (s *Solver) Guesses() []word.Word {
	return slices.Clone(s.guesses)
}
