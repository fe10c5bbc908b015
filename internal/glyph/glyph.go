// Package glyph splits label text into the units that are aligned and animated, and measures them in terminal cells.
package glyph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Mode selects what counts as one unit of text.
type Mode string

const (
	Graphemes Mode = "grapheme" // Extended grapheme clusters (user-perceived characters).
	Runes     Mode = "rune"     // Unicode code points.
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown unit mode")

// ParseMode parses a unit mode name. The empty string means Graphemes.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grapheme", "graphemes":
		return Graphemes, nil
	case "rune", "runes":
		return Runes, nil
	}
	return "", fmt.Errorf("%w: %q (want grapheme or rune)", ErrUnknownMode, s)
}

// Split splits text into units according to mode. An empty text yields no units.
func Split(text string, mode Mode) []string {
	if text == "" {
		return nil
	}

	if mode == Runes {
		units := make([]string, 0, len(text))
		for _, r := range text {
			units = append(units, string(r))
		}
		return units
	}

	var units []string
	iter := graphemes.FromString(text)
	for iter.Next() {
		units = append(units, iter.Value())
	}
	return units
}

// Width returns the width of unit in terminal cells. Non-empty units are at least one cell wide so that zero-width marks
// still occupy a slot.
func Width(unit string) int {
	if unit == "" {
		return 0
	}
	return max(runewidth.StringWidth(unit), 1)
}

// CellWidth returns the widest unit across all sequences, and at least 1.
func CellWidth(seqs ...[]string) int {
	w := 1
	for _, seq := range seqs {
		for _, u := range seq {
			w = max(w, Width(u))
		}
	}
	return w
}

// Pad right-pads unit with spaces to width cells. Units already at least width wide are returned unchanged.
func Pad(unit string, width int) string {
	w := Width(unit)
	if w >= width {
		return unit
	}
	return unit + strings.Repeat(" ", width-w)
}
