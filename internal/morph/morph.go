// Package morph turns an alignment between two labels into an animation: sprites that keep, move, fade out or fade in, and
// the frames in between.
package morph

import (
	"github.com/f3rmion/morph/internal/align"
	"github.com/f3rmion/morph/internal/glyph"
)

// Effect is what a sprite does over the course of a transition.
type Effect int

const (
	Keep    Effect = iota // Reused at the same slot; no visual change.
	Move                  // Reused at a different slot; travels From -> To.
	FadeOut               // Discarded old unit.
	FadeIn                // Fresh new unit.
)

func (e Effect) String() string {
	switch e {
	case Keep:
		return "keep"
	case Move:
		return "move"
	case FadeOut:
		return "fade-out"
	case FadeIn:
		return "fade-in"
	}
	return "unknown"
}

// Sprite is one glyph on screen during a transition. From and To are slot indices.
type Sprite struct {
	Text   string
	From   int
	To     int
	Effect Effect
}

// Transition is everything needed to animate Old into New.
type Transition struct {
	Old       []string
	New       []string
	Result    align.Result
	Sprites   []Sprite // Old-side sprites first (by old index), then fade-ins (by new index).
	CellWidth int      // Width in terminal cells of one slot.
}

// New splits old and new into units, aligns them and plans the transition.
func New(old, new string, mode glyph.Mode) Transition {
	oldUnits := glyph.Split(old, mode)
	newUnits := glyph.Split(new, mode)
	return Plan(oldUnits, newUnits, align.Align(oldUnits, newUnits))
}

// Plan derives sprites from res, which must be an alignment of old to new.
func Plan(old, new []string, res align.Result) Transition {
	t := Transition{
		Old:       old,
		New:       new,
		Result:    res,
		CellWidth: glyph.CellWidth(old, new),
	}

	for i, u := range old {
		origin := res[i].Origin
		switch {
		case !origin.IsReuse():
			t.Sprites = append(t.Sprites, Sprite{Text: u, From: i, To: i, Effect: FadeOut})
		case origin.Offset == 0:
			t.Sprites = append(t.Sprites, Sprite{Text: u, From: i, To: i, Effect: Keep})
		default:
			t.Sprites = append(t.Sprites, Sprite{Text: u, From: i, To: i + origin.Offset, Effect: Move})
		}
	}
	for j, u := range new {
		if res[j].Current == align.CurrentNew {
			t.Sprites = append(t.Sprites, Sprite{Text: u, From: j, To: j, Effect: FadeIn})
		}
	}

	return t
}

// Slots is the number of slots the transition spans.
func (t Transition) Slots() int {
	return len(t.Result)
}

// Summary counts the changes in the transition.
func (t Transition) Summary() align.Summary {
	return t.Result.Summarize(len(t.Old), len(t.New))
}

// Changed reports whether the transition has any visible effect.
func (t Transition) Changed() bool {
	for _, s := range t.Sprites {
		if s.Effect != Keep {
			return true
		}
	}
	return false
}
