package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/f3rmion/morph/internal/tui/bigchar"
	"github.com/f3rmion/morph/internal/tui/components"
)

// Play view styles
var (
	playProgressStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))

	playAutoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	playEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Italic(true)

	playBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(2, 4).
			Align(lipgloss.Center)
)

// PlayHold is how long autoplay rests on a finished label.
const PlayHold = 1200 * time.Millisecond

type playHoldMsg struct {
	gen int
}

// PlayModel steps through the labels of a script.
type PlayModel struct {
	stage  stage
	script *config.Script

	index   int
	shown   string
	summary string

	auto bool
	gen  int

	width  int
	height int
}

// NewPlayModel creates a new play view model.
func NewPlayModel(cfg *config.Config, big *bigchar.Renderer) PlayModel {
	return PlayModel{stage: newStage(cfg, big), index: -1}
}

// SetScript replaces the script and shows its first label.
func (m *PlayModel) SetScript(s *config.Script) tea.Cmd {
	m.script = s
	m.auto = false
	m.gen++
	m.index = -1
	if s == nil || len(s.Labels) == 0 {
		return nil
	}
	return m.goTo(0)
}

// Script is the loaded script, or nil.
func (m PlayModel) Script() *config.Script {
	return m.script
}

// SetSize updates the view dimensions.
func (m *PlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.stage.setWidth(width)
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (PlayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case components.FrameMsg:
		return m, m.stage.update(msg)

	case components.DoneMsg:
		if msg.ID != m.stage.animator.ID() || !m.auto {
			return m, nil
		}
		gen := m.gen
		return m, tea.Tick(PlayHold, func(time.Time) tea.Msg {
			return playHoldMsg{gen: gen}
		})

	case playHoldMsg:
		if msg.gen != m.gen || !m.auto || m.script == nil {
			return m, nil
		}
		return m, m.step(1)
	}

	if m.script == nil || len(m.script.Labels) == 0 {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "right", "l", "n":
			m.gen++
			return m, m.step(1)
		case "left", "h", "p":
			m.gen++
			return m, m.step(-1)
		case " ", "enter":
			m.auto = !m.auto
			m.gen++
			if m.auto && !m.stage.animator.Running() {
				return m, m.step(1)
			}
			return m, nil
		case "r":
			m.auto = false
			m.gen++
			return m, m.goTo(0)
		}
	}

	return m, nil
}

// step moves by delta labels, wrapping at both ends.
func (m *PlayModel) step(delta int) tea.Cmd {
	n := len(m.script.Labels)
	return m.goTo(((m.index+delta)%n + n) % n)
}

func (m *PlayModel) goTo(i int) tea.Cmd {
	next := m.script.Labels[i]
	t := morph.New(m.shown, next, m.stage.cfg.Units())
	m.index = i
	m.shown = next
	m.summary = t.Summary().String()
	return m.stage.play(t)
}

// View renders the play view.
func (m PlayModel) View() string {
	if m.script == nil {
		return m.renderNoScript()
	}
	if len(m.script.Labels) == 0 {
		return playEmptyStyle.Render("Script has no labels")
	}

	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.script.Title))
	b.WriteString("  ")
	b.WriteString(playProgressStyle.Render(
		fmt.Sprintf("Label %d of %d", m.index+1, len(m.script.Labels)),
	))
	if m.auto {
		b.WriteString("  ")
		b.WriteString(playAutoStyle.Render("▶ autoplay"))
	}
	b.WriteString("\n")

	b.WriteString(m.stage.view())
	b.WriteString("\n\n")

	if m.summary != "" {
		b.WriteString(labelStyle.Render("Summary:") + " " + valueStyle.Render(m.summary))
		b.WriteString("\n\n")
	}

	if m.auto {
		b.WriteString(helpStyle.Render("space: stop • ←/→: prev/next • r: reset"))
	} else {
		b.WriteString(helpStyle.Render("space: autoplay • ←/→: prev/next • r: reset"))
	}

	return b.String()
}

func (m PlayModel) renderNoScript() string {
	content := playEmptyStyle.Render("No Script Loaded") + "\n\n" +
		helpStyle.Render("Open a script from Open Script first")

	return "\n\n" + playBoxStyle.Render(content)
}
