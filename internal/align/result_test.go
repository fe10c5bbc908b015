package align

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSources(t *testing.T) {
	res := Align(runes("abc"), runes("bca"))
	assert.Equal(t, []int{1, 2, 0}, res.Sources())

	res = Align(runes("ab"), runes("xbz"))
	assert.Equal(t, []int{-1, 1, -1}, res.Sources())

	assert.Empty(t, Result{}.Sources())
}

func TestSummarize(t *testing.T) {
	old, new := runes("hello"), runes("yellow")
	res := Align(old, new)
	// h discarded; e, l, l, o stationary; y and w added.
	sum := res.Summarize(len(old), len(new))
	assert.Equal(t, Summary{Stationary: 4, Moved: 0, Discarded: 1, Added: 2}, sum)
	assert.Equal(t, 4, sum.Reused())

	old, new = runes("abc"), runes("bca")
	sum = Align(old, new).Summarize(len(old), len(new))
	assert.Equal(t, Summary{Moved: 3}, sum)
	assert.Equal(t, "0 stationary, 3 moved, 0 discarded, 0 added", sum.String())

	old, new = runes("abc"), runes("")
	sum = Align(old, new).Summarize(len(old), len(new))
	assert.Equal(t, Summary{Discarded: 3}, sum)
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		res    Result
		oldLen int
		newLen int
	}{
		{"wrong length", Result{{Reuse(0), CurrentOld}}, 2, 2},
		{"None within new", Result{{Discard(), CurrentNone}}, 1, 1},
		{"New beyond new", Result{{Reuse(0), CurrentOld}, {Discard(), CurrentNew}}, 2, 1},
		{"reuse out of range", Result{{Reuse(3), CurrentNew}}, 1, 1},
		{"reuse target not Old", Result{{Reuse(1), CurrentNew}, {Discard(), CurrentNew}}, 2, 2},
		{"double claim", Result{{Reuse(1), CurrentNew}, {Reuse(0), CurrentOld}}, 2, 2},
		{"orphan Old", Result{{Discard(), CurrentOld}}, 1, 1},
		{"reuse beyond old", Result{{Reuse(0), CurrentOld}, {Reuse(-1), CurrentNew}}, 1, 2},
		{"negative length", Result{}, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.res.Validate(tt.oldLen, tt.newLen))
		})
	}
}

func TestActionText(t *testing.T) {
	assert.Equal(t, "Reuse(-3)", Reuse(-3).String())
	assert.Equal(t, "Discard", Discard().String())
	assert.Equal(t, "None", CurrentNone.String())
	assert.Equal(t, "CurrentAction(9)", CurrentAction(9).String())

	var a OriginAction
	require.NoError(t, a.UnmarshalText([]byte("Reuse(7)")))
	assert.Equal(t, Reuse(7), a)
	require.NoError(t, a.UnmarshalText([]byte("Discard")))
	assert.Equal(t, Discard(), a)
	require.Error(t, a.UnmarshalText([]byte("Reuse(x)")))
	require.Error(t, a.UnmarshalText([]byte("Keep")))

	var c CurrentAction
	require.NoError(t, c.UnmarshalText([]byte("Old")))
	assert.Equal(t, CurrentOld, c)
	require.Error(t, c.UnmarshalText([]byte("old")))
}

func TestResultJSON(t *testing.T) {
	res := Align(runes("abc"), runes("a"))

	b, err := json.Marshal(res)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"origin":"Reuse(0)","current":"Old"},
		{"origin":"Discard","current":"None"},
		{"origin":"Discard","current":"None"}
	]`, string(b))

	var back Result
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, res, back)
}
