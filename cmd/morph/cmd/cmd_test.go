package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/morph/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of c and its subcommands back to its default, since the command tree is package state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs morph with args against the config directory dir and returns what it printed.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MORPH_LOG_FILE", "")
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestAlign_Table(t *testing.T) {
	out, err := execute(t, t.TempDir(), "align", "abc", "bca")
	require.NoError(t, err)
	assert.Contains(t, out, "ORIGIN")
	assert.Contains(t, out, "Reuse(2)")
	assert.NotContains(t, out, "edit distance")
}

func TestAlign_HelpDescribesAxes(t *testing.T) {
	out, err := execute(t, t.TempDir(), "align", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "ORIGIN describes the old glyph")
	assert.Contains(t, out, "CURRENT describes the new label")
}

func TestAlign_StatsEditDistance(t *testing.T) {
	out, err := execute(t, t.TempDir(), "align", "--stats", "cc日axx", "abxacb")
	require.NoError(t, err)
	assert.Contains(t, out, "edit distance: 5")
}

func TestAlign_CheckAndStats(t *testing.T) {
	out, err := execute(t, t.TempDir(), "align", "--check", "--stats", "kitten", "sitting")
	require.NoError(t, err)
	assert.Contains(t, out, "invariants hold")
	assert.Contains(t, out, "edit distance: 3")
	assert.Contains(t, out, "diff: ")
	assert.Contains(t, out, "stationary")
}

func TestAlign_JSON(t *testing.T) {
	type slot struct {
		Origin  string `json:"origin"`
		Current string `json:"current"`
	}
	type summary struct {
		Added        int `json:"added"`
		EditDistance int    `json:"edit_distance"`
		Diff         string `json:"diff"`
	}
	var doc struct {
		Old     []string `json:"old"`
		New     []string `json:"new"`
		Units   string   `json:"units"`
		Slots   []slot   `json:"slots"`
		Summary *summary `json:"summary"`
	}

	out, err := execute(t, t.TempDir(), "align", "--json", "--stats", "ab", "abc")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, []string{"a", "b"}, doc.Old)
	assert.Equal(t, []string{"a", "b", "c"}, doc.New)
	assert.Equal(t, "grapheme", doc.Units)
	require.Len(t, doc.Slots, 3)
	assert.Equal(t, "Reuse(0)", doc.Slots[0].Origin)
	assert.Equal(t, "Old", doc.Slots[0].Current)
	assert.Equal(t, "Discard", doc.Slots[2].Origin)
	require.NotNil(t, doc.Summary)
	assert.Equal(t, 1, doc.Summary.Added)
	assert.Equal(t, 1, doc.Summary.EditDistance)
	assert.Equal(t, "ab{+c+}", doc.Summary.Diff)
}

func TestAlign_JSONEmpty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "align", "--json", "", "")
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.JSONEq(t, "[]", string(doc["slots"]))
	assert.JSONEq(t, "[]", string(doc["old"]))
	assert.NotContains(t, doc, "summary")
}

func TestAlign_RunesFlag(t *testing.T) {
	// "e" + combining acute is one grapheme but two runes.
	out, err := execute(t, t.TempDir(), "align", "--json", "--units", "rune", "e\u0301", "e")
	require.NoError(t, err)
	assert.Contains(t, out, `"units": "rune"`)
	assert.Contains(t, out, `"Discard"`)
}

func TestAlign_BadUnits(t *testing.T) {
	_, err := execute(t, t.TempDir(), "align", "--units", "word", "a", "b")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestHistory_RecordListShowClear(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No morphs recorded yet.")

	_, err = execute(t, dir, "align", "--record", "abc", "bca")
	require.NoError(t, err)
	_, err = execute(t, dir, "align", "--record", "hello", "yellow")
	require.NoError(t, err)

	out, err = execute(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, `"abc"`)
	assert.Contains(t, out, `"yellow"`)
	assert.Contains(t, out, "SUMMARY")

	out, err = execute(t, dir, "history", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"hello"`)
	assert.NotContains(t, out, `"abc"`)

	out, err = execute(t, dir, "history", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `#1  "abc" → "bca"`)
	assert.Contains(t, out, "Reuse(2)")
	assert.Contains(t, out, "0 stationary, 3 moved")

	_, err = execute(t, dir, "history", "abc")
	assert.Error(t, err)

	out, err = execute(t, dir, "history", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared.")

	out, err = execute(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No morphs recorded yet.")
}

func TestHistory_Disabled(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.History.Enabled = false
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	_, err := execute(t, dir, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history is disabled")

	// Recording is skipped rather than failing.
	_, err = execute(t, dir, "align", "--record", "a", "b")
	assert.NoError(t, err)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "morph")

	out, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized!")

	cfg, err := config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	script, err := config.LoadScript(filepath.Join(dir, exampleScriptName))
	require.NoError(t, err)
	assert.Equal(t, "Example", script.Title)
	assert.Len(t, script.Labels, 8)

	_, err = execute(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestPlayScript(t *testing.T) {
	s, err := playScript("", []string{"one", "two"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, s.Labels)

	_, err = playScript("", nil)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "count.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n2\n1\n"), 0644))
	_, err = playScript(path, []string{"x"})
	assert.Error(t, err)

	s, err = playScript(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "count", s.Title)
	assert.Equal(t, []string{"3", "2", "1"}, s.Labels)
}

func TestApplyOverrides(t *testing.T) {
	v := viper.New()
	v.Set("duration", "250ms")
	v.Set("fps", 24)
	v.Set("easing", "linear")
	v.Set("units", "rune")

	cfg := config.Default()
	require.NoError(t, applyOverrides(cfg, v))
	assert.Equal(t, 250*time.Millisecond, cfg.Animation.Duration)
	assert.Equal(t, 24, cfg.Animation.FPS)
	assert.Equal(t, "linear", cfg.Animation.Easing)
	assert.Equal(t, "rune", cfg.Animation.Units)

	unset := config.Default()
	require.NoError(t, applyOverrides(unset, viper.New()))
	assert.Equal(t, config.Default(), unset)

	v = viper.New()
	v.Set("easing", "wobble")
	assert.ErrorIs(t, applyOverrides(config.Default(), v), config.ErrInvalid)
}
