package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-entropy/word"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader("crane\nTRACE\r\n  slate \n"))
	require.NoError(t, err)
	assert.Equal(t, []word.Word{word.MustParse("crane"), word.MustParse("trace"), word.MustParse("slate")}, got)

	got, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadRejectsBadLine(t *testing.T) {
	tests := []struct {
		input string
		line  int
	}{
		{"crane\ncranes\nslate\n", 2},
		{"crane\n\nslate\n", 2},
		{"cr4ne\n", 1},
		{"crane\ntrace\nsl@te", 3},
	}
	for _, tt := range tests {
		_, err := Read(strings.NewReader(tt.input))
		var le *LoadError
		require.ErrorAs(t, err, &le, tt.input)
		assert.Equal(t, tt.line, le.Line, tt.input)
		assert.True(t, le.IsParse(), tt.input)

		var pe *word.ParseError
		assert.True(t, errors.As(err, &pe), tt.input)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "crane\nspeed\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	bad := writeFile(t, dir, "bad.txt", "crane\nnope\n")
	_, err = Load(bad)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, bad, le.Path)
	assert.Equal(t, 2, le.Line)
	assert.Contains(t, err.Error(), "bad.txt:2")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.False(t, le.IsParse())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, le.Line)
}

func TestLang(t *testing.T) {
	assert.Equal(t, "en_words.txt", EN.WordFile())
	assert.Equal(t, "en_sols.txt", EN.SolutionFile())
	assert.Equal(t, "de_words.txt", DE.WordFile())
	assert.Equal(t, "de_sols.txt", DE.SolutionFile())

	l, err := ParseLang("DE")
	require.NoError(t, err)
	assert.Equal(t, DE, l)
	_, err = ParseLang("fr")
	assert.Error(t, err)
}

func TestLoadLang(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de_words.txt", "gerne\nhallo\nwelle\n")
	writeFile(t, dir, "de_sols.txt", "gerne\n")

	guesses, answers, err := LoadLang(dir, DE)
	require.NoError(t, err)
	assert.Len(t, guesses, 3)
	assert.Equal(t, []word.Word{word.MustParse("gerne")}, answers)

	_, _, err = LoadLang(dir, EN)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
