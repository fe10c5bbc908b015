package morph

import (
	"math"
	"strings"

	"github.com/f3rmion/morph/internal/glyph"
)

// visibleOpacity is the opacity at or above which a sprite is drawn by renderers without alpha.
const visibleOpacity = 0.5

// Placed is a sprite at one instant of a transition.
type Placed struct {
	Sprite
	Pos     float64 // Slot position; fractional while moving.
	Opacity float64 // 0 (invisible) to 1 (opaque).
}

// Frame is a snapshot of a transition.
type Frame struct {
	Progress  float64 // Linear progress in [0,1].
	Placed    []Placed
	Slots     int
	CellWidth int
}

// Frame returns the transition at linear progress p, clamped to [0,1]. A nil ease means Linear.
func (t Transition) Frame(p float64, ease Easing) Frame {
	p = math.Max(0, math.Min(1, p))
	if ease == nil {
		ease = Linear
	}
	e := ease(p)

	f := Frame{
		Progress:  p,
		Placed:    make([]Placed, len(t.Sprites)),
		Slots:     t.Slots(),
		CellWidth: t.CellWidth,
	}
	for i, s := range t.Sprites {
		pl := Placed{Sprite: s, Pos: float64(s.From), Opacity: 1}
		switch s.Effect {
		case Move:
			pl.Pos = float64(s.From) + float64(s.To-s.From)*e
		case FadeOut:
			pl.Opacity = 1 - e
		case FadeIn:
			pl.Opacity = e
		}
		f.Placed[i] = pl
	}
	return f
}

// Cell is one slot of a rasterized frame.
type Cell struct {
	Text    string // Empty if nothing visible occupies the slot.
	Opacity float64
	Effect  Effect
}

// Cells rasterizes the sprites that renderers without alpha should draw. See Layer.
func (f Frame) Cells() []Cell {
	return f.Layer(visibleOpacity)
}

// Layer rasterizes the frame into Slots cells, keeping sprites with opacity of at least minOpacity. Each sprite lands in the
// slot nearest its position; when sprites collide, the more opaque one wins, and later sprites win ties.
func (f Frame) Layer(minOpacity float64) []Cell {
	cells := make([]Cell, f.Slots)
	for _, pl := range f.Placed {
		if pl.Opacity < minOpacity || pl.Opacity == 0 {
			continue
		}
		slot := int(math.Round(pl.Pos))
		if slot < 0 || slot >= len(cells) {
			continue
		}
		if cells[slot].Text != "" && cells[slot].Opacity > pl.Opacity {
			continue
		}
		cells[slot] = Cell{Text: pl.Text, Opacity: pl.Opacity, Effect: pl.Effect}
	}
	return cells
}

// Plain renders the frame as one line of text, padding each slot to CellWidth and trimming trailing blanks.
//
// At progress 0 this is the old label and at progress 1 the new label (with narrow units padded when the transition
// contains wide ones).
func (f Frame) Plain() string {
	var b strings.Builder
	for _, c := range f.Cells() {
		b.WriteString(glyph.Pad(c.Text, f.CellWidth))
	}
	return strings.TrimRight(b.String(), " ")
}
