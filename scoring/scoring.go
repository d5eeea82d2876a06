// Package scoring measures how much a mask observation narrows a pool of
// candidate words, in bits.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/word"
)

// ErrNoCandidates means a mask left no word in the pool. Masks produced by
// hint.Compare against a word of the pool can never do this.
var ErrNoCandidates = errors.New("scoring: no candidates survive mask")

// InfoBits returns log2(oldCount) - log2(newCount), the information gained
// when oldCount possibilities narrow to newCount.
//
// Both counts must be at least 1; InfoBits panics otherwise.
func InfoBits(oldCount, newCount int) float64 {
	if oldCount < 1 || newCount < 1 {
		panic(fmt.Errorf("%w: InfoBits(%d, %d)", ErrNoCandidates, oldCount, newCount))
	}
	return math.Log2(float64(oldCount)) - math.Log2(float64(newCount))
}

// CountHits counts the words of pool consistent with m.
func CountHits(pool []word.Word, m hint.Mask) int {
	return lo.CountBy(pool, m.Matches)
}

// Narrow returns the words of pool consistent with m, in their original
// order, and the bits gained. pool is not modified. If nothing survives it
// returns ErrNoCandidates.
func Narrow(pool []word.Word, m hint.Mask) ([]word.Word, float64, error) {
	survivors := lo.Filter(pool, func(w word.Word, _ int) bool {
		return m.Matches(w)
	})
	if len(survivors) == 0 {
		return nil, 0, ErrNoCandidates
	}
	return survivors, InfoBits(len(pool), len(survivors)), nil
}

// GuessInfo is the bits m would gain on pool, without narrowing it.
func GuessInfo(pool []word.Word, m hint.Mask) (float64, error) {
	hits := CountHits(pool, m)
	if hits == 0 {
		return 0, ErrNoCandidates
	}
	return InfoBits(len(pool), hits), nil
}

// Partition groups answers by the mask guess would receive against each of
// them and returns the size of every non-empty group.
func Partition(guess word.Word, answers []word.Word) map[hint.Rank]int {
	return lo.CountValuesBy(answers, func(a word.Word) hint.Rank {
		return hint.Compare(guess, a).Rank()
	})
}
