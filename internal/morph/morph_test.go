package morph

import (
	"testing"

	"github.com/f3rmion/morph/internal/align"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_Sprites(t *testing.T) {
	tr := New("abc", "bcx", glyph.Graphemes)

	require.Equal(t, 3, tr.Slots())
	require.Equal(t, 1, tr.CellWidth)
	assert.Equal(t, []Sprite{
		{Text: "a", From: 0, To: 0, Effect: FadeOut},
		{Text: "b", From: 1, To: 0, Effect: Move},
		{Text: "c", From: 2, To: 1, Effect: Move},
		{Text: "x", From: 2, To: 2, Effect: FadeIn},
	}, tr.Sprites)
	assert.True(t, tr.Changed())
	assert.Equal(t, align.Summary{Moved: 2, Discarded: 1, Added: 1}, tr.Summary())
}

func TestPlan_NoneProducesNoSprite(t *testing.T) {
	tr := New("abc", "a", glyph.Graphemes)
	assert.Equal(t, []Sprite{
		{Text: "a", From: 0, To: 0, Effect: Keep},
		{Text: "b", From: 1, To: 1, Effect: FadeOut},
		{Text: "c", From: 2, To: 2, Effect: FadeOut},
	}, tr.Sprites)
}

func TestPlan_Unchanged(t *testing.T) {
	tr := New("same", "same", glyph.Graphemes)
	assert.False(t, tr.Changed())
	for _, s := range tr.Sprites {
		assert.Equal(t, Keep, s.Effect)
	}
}

func TestFrame_Endpoints(t *testing.T) {
	pairs := [][2]string{
		{"abc", "bca"},
		{"hello", "yellow"},
		{"morph", "orb"},
		{"", "fresh"},
		{"gone", ""},
		{"mississippi", "pimisissis"},
	}
	for _, pair := range pairs {
		tr := New(pair[0], pair[1], glyph.Graphemes)
		for _, ease := range []Easing{Linear, EaseOutQuint, EaseInOutCubic, nil} {
			assert.Equal(t, pair[0], tr.Frame(0, ease).Plain(), "%q -> %q at 0", pair[0], pair[1])
			assert.Equal(t, pair[1], tr.Frame(1, ease).Plain(), "%q -> %q at 1", pair[0], pair[1])
		}
	}
}

func TestFrame_ClampsProgress(t *testing.T) {
	tr := New("ab", "ba", glyph.Graphemes)
	assert.Equal(t, 0.0, tr.Frame(-3, Linear).Progress)
	assert.Equal(t, 1.0, tr.Frame(7, Linear).Progress)
	assert.Equal(t, "ab", tr.Frame(-3, Linear).Plain())
	assert.Equal(t, "ba", tr.Frame(7, Linear).Plain())
}

func TestFrame_Midway(t *testing.T) {
	tr := New("ax", "xb", glyph.Graphemes)
	f := tr.Frame(0.25, Linear)

	byText := map[string]Placed{}
	for _, pl := range f.Placed {
		byText[pl.Text] = pl
	}
	assert.InDelta(t, 0.75, byText["a"].Opacity, 1e-9)
	assert.InDelta(t, 0.75, byText["x"].Pos, 1e-9) // 1 -> 0
	assert.InDelta(t, 0.25, byText["b"].Opacity, 1e-9)

	cells := f.Cells()
	require.Len(t, cells, 2)
	// 'x' rounds into slot 1 while 'b' is still invisible.
	assert.Equal(t, "a", cells[0].Text)
	assert.Equal(t, "x", cells[1].Text)
}

func TestFrame_WideCells(t *testing.T) {
	tr := New("a漢", "漢a", glyph.Graphemes)
	require.Equal(t, 2, tr.CellWidth)
	assert.Equal(t, "a 漢", tr.Frame(0, nil).Plain())
	assert.Equal(t, "漢a", tr.Frame(1, nil).Plain())
}

func TestEasings(t *testing.T) {
	for _, name := range EasingNames() {
		e, err := ParseEasing(name)
		require.NoError(t, err)
		assert.InDelta(t, 0, e(0), 1e-9, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
		assert.GreaterOrEqual(t, e(0.5), 0.0, name)
		assert.LessOrEqual(t, e(0.5), 1.0, name)
	}

	e, err := ParseEasing("")
	require.NoError(t, err)
	assert.InDelta(t, EaseOutQuint(0.3), e(0.3), 1e-12)

	_, err = ParseEasing("bounce")
	require.ErrorIs(t, err, ErrUnknownEasing)

	assert.Equal(t, []string{"ease-in-out-cubic", "ease-out-quint", "linear"}, EasingNames())
}

func TestEffectString(t *testing.T) {
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "fade-out", FadeOut.String())
	assert.Equal(t, "fade-in", FadeIn.String())
	assert.Equal(t, "unknown", Effect(42).String())
}
