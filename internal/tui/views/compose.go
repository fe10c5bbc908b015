package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/morph/internal/clipboard"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/f3rmion/morph/internal/tui/bigchar"
	"github.com/f3rmion/morph/internal/tui/components"
)

// ComposeModel morphs the shown label into whatever is typed.
type ComposeModel struct {
	input textinput.Model
	stage stage

	current string
	rows    []morph.Row
	summary string

	showTable bool
	copied    bool
	err       error

	width  int
	height int
}

// NewComposeModel creates a new compose view model.
func NewComposeModel(cfg *config.Config, big *bigchar.Renderer) ComposeModel {
	ti := textinput.New()
	ti.Placeholder = "Type a label and press Enter..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return ComposeModel{
		input:     ti,
		stage:     newStage(cfg, big),
		showTable: true,
	}
}

// SetSize updates the view dimensions.
func (m *ComposeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.stage.setWidth(width)
}

// CapturesInput reports whether single-key shortcuts should go to the text input.
func (m ComposeModel) CapturesInput() bool {
	return m.input.Focused()
}

// Current is the label currently shown.
func (m ComposeModel) Current() string {
	return m.current
}

// Update handles messages.
func (m ComposeModel) Update(msg tea.Msg) (ComposeModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case components.FrameMsg, components.DoneMsg:
		return m, m.stage.update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.morphTo(m.input.Value())
		case "ctrl+r":
			// Replay the last transition from its start.
			t := m.stage.animator.Transition()
			if t.Slots() == 0 {
				return m, nil
			}
			return m, m.stage.replay(t)
		case "ctrl+t":
			m.showTable = !m.showTable
			return m, nil
		case "ctrl+y":
			if len(m.rows) == 0 {
				return m, nil
			}
			if err := clipboard.Write(morph.FormatTable(m.rows)); err != nil {
				m.err = fmt.Errorf("copying table: %w", err)
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ComposeModel) morphTo(next string) tea.Cmd {
	t := morph.New(m.current, next, m.stage.cfg.Units())
	m.rows = morph.Describe(t.Old, t.New, t.Result)
	m.summary = t.Summary().String()
	m.current = next
	m.err = nil
	return m.stage.play(t)
}

// View renders the compose view.
func (m ComposeModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.stage.view())
	b.WriteString("\n")

	if m.summary != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Summary:") + " " + valueStyle.Render(m.summary))
		b.WriteString("\n")
	}

	if m.showTable && len(m.rows) > 0 {
		b.WriteString("\n")
		b.WriteString(morph.FormatTable(m.rows))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.rows) > 0 {
		helpParts := []string{"enter: morph", "ctrl+r: replay", "ctrl+t: table"}
		if m.copied {
			helpParts = append(helpParts, copiedStyle.Render("copied!"))
		} else {
			helpParts = append(helpParts, "ctrl+y: copy table")
		}
		b.WriteString(helpStyle.Render(strings.Join(helpParts, " • ")))
	} else {
		b.WriteString(helpStyle.Render("Type a label and press Enter to morph"))
	}

	return b.String()
}
