package hint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-entropy/word"
)

func outcomes(pattern string) [word.Length]Outcome {
	var out [word.Length]Outcome
	for i := range word.Length {
		out[i] = Outcome(pattern[i] - '0')
	}
	return out
}

func randomWord(r *rand.Rand, alphabet string) word.Word {
	var b [word.Length]byte
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return word.MustParse(string(b[:]))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          string
		comment       string
	}{
		{"speed", "erase", "10100", "second E has nothing left to consume"},
		{"apple", "apple", "22222", "exact match"},
		{"alley", "apple", "21010", "one L present, surplus L miss"},
		{"zzzzz", "apple", "00000", "all absent"},
		{"crane", "react", "11201", "no repeats"},
		{"eerie", "there", "10102", "match takes priority over partial"},
		{"lolly", "hello", "01220", "match consumes before partials scan"},
		{"aabbb", "bbaaa", "11110", "swapped pairs"},
	}

	for _, tt := range tests {
		got := Compare(word.MustParse(tt.guess), word.MustParse(tt.answer))
		assert.Equal(t, outcomes(tt.want), got.Outcomes, "%s vs %s: %s", tt.guess, tt.answer, tt.comment)
		assert.Equal(t, word.MustParse(tt.guess), got.Guess)
	}
}

func TestCompareSpeedErase(t *testing.T) {
	m := Compare(word.MustParse("SPEED"), word.MustParse("ERASE"))
	assert.Equal(t, [word.Length]Outcome{Partial, Miss, Partial, Miss, Miss}, m.Outcomes)
	assert.Equal(t, "🟨⬜🟨⬜⬜", m.String())
}

func TestCompareSelfIsSolved(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 200 {
		w := randomWord(r, "abcdefghijklmnopqrstuvwxyz")
		assert.True(t, Compare(w, w).Solved(), w.String())
	}
}

func TestCompareDistinctLetters(t *testing.T) {
	guess := word.MustParse("crane")
	answer := word.MustParse("trace")
	m := Compare(guess, answer)
	for i := range word.Length {
		var want Outcome
		switch {
		case guess[i] == answer[i]:
			want = Match
		case answer.LetterSet().Test(uint(guess[i])):
			want = Partial
		default:
			want = Miss
		}
		assert.Equal(t, want, m.Outcomes[i], "position %d", i)
	}
}

func TestMatchesSelfConsistency(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	// A small alphabet forces plenty of repeated letters.
	for range 5000 {
		g := randomWord(r, "abcde")
		a := randomWord(r, "abcde")
		require.True(t, Compare(g, a).Matches(a), "guess %s answer %s", g, a)
	}
}

func TestMatchesAcceptsEveryCompareTwin(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for range 5000 {
		g := randomWord(r, "abcd")
		a := randomWord(r, "abcd")
		c := randomWord(r, "abcd")
		m := Compare(g, a)
		if Compare(g, c) == m {
			require.True(t, m.Matches(c), "guess %s answer %s candidate %s", g, a, c)
		}
	}
}

func TestMatchesOnlyPinsMatchPositions(t *testing.T) {
	m := Compare(word.MustParse("abbbb"), word.MustParse("bacdd"))
	require.Equal(t, outcomes("11000"), m.Outcomes)

	// AABCC has the guessed A in place, so Compare would report a Match
	// there, but the mask only asks for one A and one B elsewhere.
	c := word.MustParse("aabcc")
	assert.NotEqual(t, m, Compare(m.Guess, c))
	assert.True(t, m.Matches(c))

	assert.False(t, m.Matches(word.MustParse("aabbc")), "second B must be absent")
	assert.False(t, m.Matches(word.MustParse("acccc")), "A needs a second copy")
}

func TestMatches(t *testing.T) {
	m := Compare(word.MustParse("speed"), word.MustParse("erase"))
	tests := []struct {
		candidate string
		want      bool
	}{
		{"erase", true},
		{"esxxx", true},
		{"uesxx", true},
		{"ausex", true},  // E at the missed position is the one E left over
		{"seems", false}, // a second E stays unconsumed
		{"abets", false}, // the only E is at the Partial position
		{"ester", false}, // a second E stays unconsumed
		{"paste", false}, // P must be absent
		{"sxexx", false}, // the only S is at the Partial position
		{"xsxxx", false}, // no E at all
		{"xseex", false}, // a second E stays unconsumed
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Matches(word.MustParse(tt.candidate)), tt.candidate)
	}
}

func TestRank(t *testing.T) {
	m := Mask{Outcomes: outcomes("00000")}
	assert.Equal(t, Rank(0), m.Rank())

	m = Mask{Outcomes: outcomes("22222")}
	assert.Equal(t, Rank(NumRanks-1), m.Rank())

	m = Mask{Outcomes: outcomes("10210")}
	assert.Equal(t, Rank(81+18+3), m.Rank())
	assert.Equal(t, m.Outcomes, m.Rank().Outcomes())

	g := word.MustParse("crane")
	assert.Equal(t, Mask{Guess: g, Outcomes: m.Outcomes}, m.Rank().Mask(g))
}

func TestParsePattern(t *testing.T) {
	g := word.MustParse("speed")
	m, err := ParsePattern(g, "y.Y-x")
	require.NoError(t, err)
	assert.Equal(t, Compare(g, word.MustParse("erase")), m)

	m, err = ParsePattern(g, "2g1b0")
	require.NoError(t, err)
	assert.Equal(t, outcomes("22100"), m.Outcomes)

	_, err = ParsePattern(g, "22")
	assert.ErrorIs(t, err, ErrBadPattern)
	_, err = ParsePattern(g, "2213z")
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestColoredWord(t *testing.T) {
	m := Compare(word.MustParse("speed"), word.MustParse("erase"))
	s := m.ColoredWord()
	assert.Contains(t, s, " S ")
	assert.Contains(t, s, "\033[43m")
	assert.Contains(t, s, "\033[0m")
}
