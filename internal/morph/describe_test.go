package morph

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/f3rmion/morph/internal/align"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	old := glyph.Split("abc", glyph.Graphemes)
	new := glyph.Split("cxa", glyph.Graphemes)
	rows := Describe(old, new, align.Align(old, new))

	require.Len(t, rows, 3)
	assert.Equal(t, Row{Slot: 0, Old: "a", New: "c", Origin: align.Reuse(2), Current: align.CurrentOld, Note: `"a" moves +2 to slot 2`}, rows[0])
	assert.Equal(t, Row{Slot: 1, Old: "b", New: "x", Origin: align.Discard(), Current: align.CurrentNew, Note: `"b" is discarded; "x" is new`}, rows[1])
	assert.Equal(t, Row{Slot: 2, Old: "c", New: "a", Origin: align.Reuse(-2), Current: align.CurrentOld, Note: `"c" moves -2 to slot 0`}, rows[2])
}

func TestDescribe_Lengths(t *testing.T) {
	rows := Describe([]string{"a"}, []string{"a", "b"}, align.Align([]string{"a"}, []string{"a", "b"}))
	require.Len(t, rows, 2)
	assert.Equal(t, `"a" stays`, rows[0].Note)
	assert.Equal(t, "", rows[1].Old)
	assert.Equal(t, `"b" is new`, rows[1].Note)

	rows = Describe([]string{"a", "b"}, nil, align.Align([]string{"a", "b"}, nil))
	require.Len(t, rows, 2)
	assert.Equal(t, align.CurrentNone, rows[1].Current)
	assert.Equal(t, `"b" is discarded`, rows[1].Note)
}

func TestFormatTable(t *testing.T) {
	old := glyph.Split("ab", glyph.Graphemes)
	new := glyph.Split("ba", glyph.Graphemes)
	out := FormatTable(Describe(old, new, align.Align(old, new)))

	for _, want := range []string{"SLOT", "ORIGIN", "CURRENT", "Reuse(1)", "Reuse(-1)", "Old", `"a" moves +1 to slot 1`} {
		assert.Contains(t, out, want)
	}
}

func TestEditDistance(t *testing.T) {
	split := func(s string) []string { return glyph.Split(s, glyph.Graphemes) }

	assert.Equal(t, 0, EditDistance(split("abc"), split("abc")))
	assert.Equal(t, 2, EditDistance(nil, split("ab")))
	assert.Equal(t, 3, EditDistance(split("kitten"), split("sitting")))
	assert.Equal(t, 1, EditDistance(split("漢字"), split("漢")))
}

// levenshtein is the textbook full-matrix distance.
func levenshtein(a, b []string) int {
	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}
	return d[len(a)][len(b)]
}

func TestEditDistance_MatchesFullMatrix(t *testing.T) {
	// A diff-based count gives 7 here.
	old := []string{"c", "c", "日", "a", "👍🏽", "👍🏽"}
	new := []string{"a", "b", "👍🏽", "a", "c", "b"}
	assert.Equal(t, 5, EditDistance(old, new))

	rng := rand.New(rand.NewSource(7))
	alphabet := []string{"a", "b", "c", "日", "👍🏽"}
	randomSeq := func() []string {
		seq := make([]string, rng.Intn(9))
		for i := range seq {
			seq[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return seq
	}

	for iter := 0; iter < 2000; iter++ {
		a, b := randomSeq(), randomSeq()
		require.Equal(t, levenshtein(a, b), EditDistance(a, b), "old=%q new=%q", a, b)
		require.Equal(t, EditDistance(a, b), EditDistance(b, a), "old=%q new=%q", a, b)
	}
}

func TestInlineDiff(t *testing.T) {
	split := func(s string) []string { return glyph.Split(s, glyph.Graphemes) }
	deleted := regexp.MustCompile(`\[-(.*?)-\]`)
	inserted := regexp.MustCompile(`\{\+(.*?)\+\}`)

	for _, tc := range [][2]string{{"kitten", "sitting"}, {"abc", "bca"}, {"", "日本"}, {"👍🏽x", ""}, {"same", "same"}} {
		out := InlineDiff(split(tc[0]), split(tc[1]))
		// Dropping the insertions leaves old, dropping the deletions leaves new.
		assert.Equal(t, tc[0], deleted.ReplaceAllString(inserted.ReplaceAllString(out, ""), "$1"), out)
		assert.Equal(t, tc[1], inserted.ReplaceAllString(deleted.ReplaceAllString(out, ""), "$1"), out)
	}
	assert.Equal(t, "same", InlineDiff(split("same"), split("same")))
}
