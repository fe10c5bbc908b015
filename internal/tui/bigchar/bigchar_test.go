package bigchar

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer_FallsBackToGoFont(t *testing.T) {
	r := NewRenderer(filepath.Join(t.TempDir(), "missing.ttf"))
	require.True(t, r.IsAvailable())
}

func TestRenderBlock_Shape(t *testing.T) {
	r := NewRenderer()
	out := r.RenderBlock("M", 8, 4)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 8, utf8.RuneCountInString(l))
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"), "expected ink in %q", out)
}

func TestRenderBlock_BlankAndCache(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "   \n   ", r.RenderBlock(" ", 3, 2))
	assert.Equal(t, "   \n   ", r.RenderBlock("", 3, 2))
	assert.Equal(t, "", r.RenderBlock("a", 0, 2))

	first := r.RenderBlock("g", 6, 3)
	assert.Equal(t, first, r.RenderBlock("g", 6, 3))
	assert.Len(t, r.cache, 1)
}

func TestRenderLine(t *testing.T) {
	r := NewRenderer()
	lines := r.RenderLine([]string{"a", "", "b"}, 4, 3)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 12, utf8.RuneCountInString(l))
	}
}

func TestBlank(t *testing.T) {
	assert.Equal(t, "  \n  \n  ", Blank(2, 3))
}
