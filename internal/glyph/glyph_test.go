package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":          Graphemes,
		"grapheme":  Graphemes,
		"Graphemes": Graphemes,
		" rune ":    Runes,
		"runes":     Runes,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("bytes")
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestSplit(t *testing.T) {
	assert.Nil(t, Split("", Graphemes))
	assert.Nil(t, Split("", Runes))

	assert.Equal(t, []string{"a", "b", "c"}, Split("abc", Graphemes))
	assert.Equal(t, []string{"漢", "字"}, Split("漢字", Runes))

	// e + combining acute accent is one grapheme but two runes.
	decomposed := "e\u0301x"
	assert.Equal(t, []string{"e\u0301", "x"}, Split(decomposed, Graphemes))
	assert.Equal(t, []string{"e", "\u0301", "x"}, Split(decomposed, Runes))

	// Skin-tone modified emoji.
	thumbs := "\U0001F44D\U0001F3FD"
	assert.Equal(t, []string{thumbs}, Split(thumbs, Graphemes))
	assert.Len(t, Split(thumbs, Runes), 2)
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(""))
	assert.Equal(t, 1, Width("a"))
	assert.Equal(t, 2, Width("漢"))
	assert.Equal(t, 1, Width("\u0301"))
}

func TestCellWidth(t *testing.T) {
	assert.Equal(t, 1, CellWidth())
	assert.Equal(t, 1, CellWidth([]string{"a", "b"}, nil))
	assert.Equal(t, 2, CellWidth([]string{"a"}, []string{"漢"}))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "a ", Pad("a", 2))
	assert.Equal(t, "漢", Pad("漢", 2))
	assert.Equal(t, "漢", Pad("漢", 1))
	assert.Equal(t, "  ", Pad("", 2))
}
