// Package search ranks guesses by the total information they are expected to
// reveal over a pool of possible answers.
//
// Every (guess, answer) pair is scored independently from read-only inputs,
// so the guess pool is split into ranges that are scored on a bounded pool of
// goroutines. Each range writes only its own slots of the result slice; the
// final arg-max or top-N runs after all workers are done.
//
// Scores are sums of float64s. Within one guess the answers are summed in
// pool order, so results are reproducible, but callers should still compare
// scores with a tolerance.
package search

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/scoring"
	"github.com/bent101/wordle-entropy/word"
)

// DefaultLimit is the size of the ranking returned by BestGuessSet.
const DefaultLimit = 100

// chunksPerWorker keeps workers busy when some ranges finish early.
const chunksPerWorker = 4

var (
	ErrEmptyPool          = errors.New("search: empty guess or answer pool")
	ErrAnswerNotGuessable = errors.New("search: no guess fits the mask of an answer")
)

// Scored is a guess and its total expected information in bits.
type Scored struct {
	Word word.Word
	Bits float64
}

// Searcher scores guess pools. The zero value is not usable; call New.
type Searcher struct {
	workers  int
	limit    int
	logger   zerolog.Logger
	progress io.Writer
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers bounds the number of goroutines scoring at once.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLimit sets how many guesses BestGuessSet returns.
func WithLimit(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger logs search results and timings to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) { s.logger = l }
}

// WithProgress draws a progress bar on w while scoring.
func WithProgress(w io.Writer) Option {
	return func(s *Searcher) { s.progress = w }
}

// New returns a Searcher using every CPU, returning DefaultLimit guesses and
// logging nowhere.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		workers: runtime.NumCPU(),
		limit:   DefaultLimit,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BestGuess returns the guess with the highest total information. Ties go to
// the guess that comes first in guesses.
func (s *Searcher) BestGuess(guesses, answers []word.Word) (Scored, error) {
	scores, err := s.scoreAll(guesses, answers)
	if err != nil {
		return Scored{}, err
	}
	best := MaxBy(scores, func(sc Scored) float64 { return sc.Bits })
	s.logger.Info().Str("guess", best.Word.String()).Float64("bits", best.Bits).Msg("best guess")
	return best, nil
}

// BestGuessSet returns the top guesses by total information, highest first.
// Equal scores keep their order from guesses.
func (s *Searcher) BestGuessSet(guesses, answers []word.Word) ([]Scored, error) {
	scores, err := s.scoreAll(guesses, answers)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(scores, func(a, b Scored) int {
		switch {
		case a.Bits > b.Bits:
			return -1
		case a.Bits < b.Bits:
			return 1
		}
		return 0
	})
	if len(scores) > s.limit {
		scores = scores[:s.limit]
	}
	return scores, nil
}

// Score returns the total information of a single guess. If the mask guess
// gets against some answer fits no word of guesses, the information is
// undefined and ErrAnswerNotGuessable is returned.
func Score(guess word.Word, guesses, answers []word.Word) (float64, error) {
	var sum float64
	for _, answer := range answers {
		mask := hint.Compare(guess, answer)
		hits := scoring.CountHits(guesses, mask)
		if hits == 0 {
			return 0, fmt.Errorf("%w: %s against %s", ErrAnswerNotGuessable, guess, answer)
		}
		sum += scoring.InfoBits(len(guesses), hits)
	}
	return sum, nil
}

// scoreAll scores every guess against every answer. The reference population
// for each mask is the whole guess pool, not the answer pool.
func (s *Searcher) scoreAll(guesses, answers []word.Word) ([]Scored, error) {
	if len(guesses) == 0 || len(answers) == 0 {
		return nil, ErrEmptyPool
	}

	start := time.Now()
	bar := s.newBar(len(guesses))
	scores := make([]Scored, len(guesses))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, r := range chunks(len(guesses), s.workers*chunksPerWorker) {
		g.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				bits, err := Score(guesses[i], guesses, answers)
				if err != nil {
					return err
				}
				scores[i] = Scored{Word: guesses[i], Bits: bits}
			}
			if err := bar.Add(r[1] - r[0]); err != nil {
				s.logger.Warn().Err(err).Msg("progress bar")
			}
			return nil
		})
	}
	err := g.Wait()
	_ = bar.Finish()
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("guesses", len(guesses)).
		Int("answers", len(answers)).
		Int("workers", s.workers).
		Dur("took", time.Since(start)).
		Msg("scored guess pool")
	return scores, nil
}

func (s *Searcher) newBar(n int) *progressbar.ProgressBar {
	if s.progress == nil {
		return progressbar.DefaultSilent(int64(n))
	}
	return progressbar.NewOptions64(int64(n),
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("scoring guesses"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(s.progress, "\n") }),
	)
}

// FindBestGuess is BestGuess with default options.
func FindBestGuess(guesses, answers []word.Word) (Scored, error) {
	return New().BestGuess(guesses, answers)
}

// FindBestGuessSet is BestGuessSet with default options.
func FindBestGuessSet(guesses, answers []word.Word) ([]Scored, error) {
	return New().BestGuessSet(guesses, answers)
}
