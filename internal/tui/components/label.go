// Package components provides shared UI components for the TUI.
package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/f3rmion/morph/internal/tui/bigchar"
)

// Effect colors
const (
	ColorKeep    = "#ffe66d" // Yellow - unchanged glyphs
	ColorMove    = "#4ecdc4" // Teal - travelling glyphs
	ColorFadeIn  = "#a8e6cf" // Green - appearing glyphs
	ColorFadeOut = "#ff6b6b" // Red - disappearing glyphs
	ColorBg      = "#1a1a2e" // Dark background faded glyphs blend into
)

// minDrawnOpacity is the faintest opacity still drawn; fainter glyphs are indistinguishable from the background.
const minDrawnOpacity = 0.05

// EffectColor returns the color for a glyph with the given effect and opacity.
func EffectColor(effect morph.Effect, opacity float64) lipgloss.Color {
	var fg string
	switch effect {
	case morph.Move:
		fg = ColorMove
	case morph.FadeIn:
		fg = ColorFadeIn
	case morph.FadeOut:
		fg = ColorFadeOut
	default:
		fg = ColorKeep
	}
	return lipgloss.Color(Blend(ColorBg, fg, opacity))
}

// Blend mixes two "#rrggbb" colors: t=0 gives from, t=1 gives to. Malformed input returns to unchanged.
func Blend(from, to string, t float64) string {
	a, okA := parseHex(from)
	b, okB := parseHex(to)
	if !okA || !okB {
		return to
	}
	t = max(0, min(1, t))

	var out [3]uint8
	for i := range out {
		out[i] = uint8(float64(a[i]) + (float64(b[i])-float64(a[i]))*t + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", out[0], out[1], out[2])
}

func parseHex(s string) ([3]uint8, bool) {
	var rgb [3]uint8
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rgb, false
	}
	for i := range rgb {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgb, false
		}
		rgb[i] = uint8(v)
	}
	return rgb, true
}

// RenderFrame renders f on one line, one colored cell per slot.
func RenderFrame(f morph.Frame) string {
	var b strings.Builder
	for _, c := range f.Layer(minDrawnOpacity) {
		text := glyph.Pad(c.Text, f.CellWidth)
		if c.Text == "" {
			b.WriteString(text)
			continue
		}
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(EffectColor(c.Effect, c.Opacity)).
			Render(text))
	}
	return b.String()
}

// RenderBigFrame renders f as block art rows terminal rows tall. Glyphs fainter than half opacity are left out, since block
// art has no partial ink.
func RenderBigFrame(f morph.Frame, r *bigchar.Renderer, rows int) string {
	cols := f.CellWidth * rows
	blocks := make([]string, 0, f.Slots)
	for _, c := range f.Cells() {
		if c.Text == "" {
			blocks = append(blocks, bigchar.Blank(cols, rows))
			continue
		}
		blocks = append(blocks, lipgloss.NewStyle().
			Foreground(EffectColor(c.Effect, c.Opacity)).
			Render(r.RenderBlock(c.Text, cols, rows)))
	}
	if len(blocks) == 0 {
		return bigchar.Blank(1, rows)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
