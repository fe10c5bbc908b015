package morph

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// unitRuneBase is the first code point used to stand in for a unit. Supplementary Private Use Area-A never appears as a
// surrogate and is rarely present in labels.
const unitRuneBase = 0xF0000

// EditDistance returns the Levenshtein distance between old and new, counted in units. It is a reference figure for how far
// the greedy alignment is from a minimal edit; the alignment itself never uses it.
func EditDistance(old, new []string) int {
	if len(old) == 0 {
		return len(new)
	}
	if len(new) == 0 {
		return len(old)
	}

	column := make([]int, len(old)+1)
	for row := 1; row <= len(old); row++ {
		column[row] = row
	}

	for col, u := range new {
		column[0] = col + 1
		lastdiag := col

		for row := range old {
			olddiag := column[row+1]

			cost := 0
			if old[row] != u {
				cost = 1
			}

			column[row+1] = min(
				column[row+1]+1,
				column[row]+1,
				lastdiag+cost,
			)
			lastdiag = olddiag
		}
	}

	return column[len(old)]
}

// InlineDiff renders a unit-level diff of old and new on one line: deleted runs as [-x-], inserted runs as {+y+}, shared
// runs as they are. Unlike the alignment it never moves a unit.
func InlineDiff(old, new []string) string {
	ids := make(map[string]rune)
	var units []string
	encode := func(seq []string) []rune {
		out := make([]rune, len(seq))
		for i, u := range seq {
			r, ok := ids[u]
			if !ok {
				r = unitRuneBase + rune(len(units))
				ids[u] = r
				units = append(units, u)
			}
			out[i] = r
		}
		return out
	}
	decode := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			b.WriteString(units[r-unitRuneBase])
		}
		return b.String()
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(encode(old), encode(new), false)

	var b strings.Builder
	for _, d := range diffs {
		text := decode(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + text + "+}")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}
