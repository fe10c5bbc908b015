package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScript_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.txt")
	require.NoError(t, os.WriteFile(path, []byte("# labels\nDesign\n\n  Design is not just  \nwhat it looks like\n"), 0644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", script.Title)
	assert.Equal(t, []string{"Design", "Design is not just", "what it looks like"}, script.Labels)
}

func TestLoadScript_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: Quotes\nlabels:\n  - Swift\n  - Go\n"), 0644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, &Script{Title: "Quotes", Labels: []string{"Swift", "Go"}}, script)
}

func TestLoadScript_Markdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.md")
	src := "# Launch Day\n\nSome prose that is not a label.\n\n- Ready\n- *Set*\n- Go\n  - again\n\n## Notes\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "Launch Day", script.Title)
	assert.Equal(t, []string{"Ready", "Set", "Go", "again"}, script.Labels)
}

func TestLoadScript_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadScript(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n\n"), 0644))
	_, err = LoadScript(empty)
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("labels: {\n"), 0644))
	_, err = LoadScript(bad)
	require.Error(t, err)
}
