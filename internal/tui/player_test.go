package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(t *testing.T, m PlayerModel, msg tea.Msg) (PlayerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	p, ok := next.(PlayerModel)
	require.True(t, ok)
	return p, cmd
}

func TestPlayer_PlaysThroughAndQuits(t *testing.T) {
	m := NewPlayer(config.Default(), []string{"ab", "ba"}, false).WithHold(0)

	m, cmd := step(t, m, m.Init()())
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, "ab", m.Shown())
	assert.Contains(t, m.View(), "1/2")

	m, cmd = step(t, m, components.DoneMsg{ID: m.animator.ID()})
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, "ba", m.Shown())

	m, cmd = step(t, m, components.DoneMsg{ID: m.animator.ID()})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.NotContains(t, m.View(), "2/2")
}

func TestPlayer_Loops(t *testing.T) {
	m := NewPlayer(config.Default(), []string{"a", "b"}, true).WithHold(0)
	m, _ = step(t, m, m.Init()())
	m, _ = step(t, m, runes("n"))
	assert.Equal(t, 0, m.Index(), "skipping finishes the current morph first")

	var cmd tea.Cmd
	for want := 1; want <= 3; want++ {
		m, _ = step(t, m, holdDoneMsg{id: m.animator.ID()})
		assert.Equal(t, want%2, m.Index())
		m, cmd = step(t, m, components.DoneMsg{ID: m.animator.ID()})
		require.NotNil(t, cmd)
		assert.IsType(t, holdDoneMsg{}, cmd())
	}
}

func TestPlayer_IgnoresStaleMessages(t *testing.T) {
	m := NewPlayer(config.Default(), []string{"a", "b", "c"}, false)
	m, _ = step(t, m, m.Init()())
	id := m.animator.ID()

	m, cmd := step(t, m, holdDoneMsg{id: id + 1000})
	assert.Nil(t, cmd)
	m, cmd = step(t, m, holdDoneMsg{id: -1})
	assert.Nil(t, cmd)
	m, cmd = step(t, m, components.DoneMsg{ID: id + 1000})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index())
}

func TestPlayer_EmptyQuits(t *testing.T) {
	m := NewPlayer(nil, nil, false)
	assert.Equal(t, tea.QuitMsg{}, m.Init()())
}
