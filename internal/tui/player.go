package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/f3rmion/morph/internal/tui/components"
)

// DefaultHold is how long the player rests on each label before morphing to the next.
const DefaultHold = time.Second

type holdDoneMsg struct {
	id int64
}

// PlayerModel morphs through a list of labels on a single terminal line. It is meant to run without the alt screen.
type PlayerModel struct {
	cfg      *config.Config
	labels   []string
	loop     bool
	hold     time.Duration
	animator components.Animator

	index   int
	shown   string
	started bool
	done    bool
}

// NewPlayer creates a player for labels. With loop set it wraps around to the first label instead of exiting.
func NewPlayer(cfg *config.Config, labels []string, loop bool) PlayerModel {
	if cfg == nil {
		cfg = config.Default()
	}
	return PlayerModel{
		cfg:      cfg,
		labels:   labels,
		loop:     loop,
		hold:     DefaultHold,
		animator: components.NewAnimator(cfg.Animation.Duration, cfg.FrameInterval(), cfg.Easing()),
	}
}

// WithHold sets the pause between labels.
func (m PlayerModel) WithHold(d time.Duration) PlayerModel {
	m.hold = d
	return m
}

// Init starts the first transition.
func (m PlayerModel) Init() tea.Cmd {
	if len(m.labels) == 0 {
		return tea.Quit
	}
	return func() tea.Msg { return holdDoneMsg{id: -1} }
}

// Update handles messages.
func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			return m, tea.Quit
		case "right", "n", " ":
			if m.animator.Running() {
				// Jump to the end of the current morph.
				m.animator.Show(m.animator.Transition())
				return m, m.afterMorph()
			}
			return m, m.advance()
		}

	case holdDoneMsg:
		// -1 starts playback; anything else must match the animation it was scheduled after.
		if msg.id != -1 && msg.id != m.animator.ID() {
			return m, nil
		}
		if msg.id == -1 && m.started {
			return m, nil
		}
		return m, m.advance()

	case components.DoneMsg:
		if msg.ID != m.animator.ID() {
			return m, nil
		}
		return m, m.afterMorph()

	case components.FrameMsg:
		var cmd tea.Cmd
		m.animator, cmd = m.animator.Update(msg)
		return m, cmd
	}

	return m, nil
}

// afterMorph decides what follows a finished transition.
func (m *PlayerModel) afterMorph() tea.Cmd {
	if m.index == len(m.labels)-1 && !m.loop {
		m.done = true
		return tea.Quit
	}
	id := m.animator.ID()
	return tea.Tick(m.hold, func(time.Time) tea.Msg {
		return holdDoneMsg{id: id}
	})
}

// advance morphs to the next label.
func (m *PlayerModel) advance() tea.Cmd {
	next := 0
	if m.started {
		next = (m.index + 1) % len(m.labels)
	}
	m.started = true
	m.index = next

	t := morph.New(m.shown, m.labels[next], m.cfg.Units())
	m.shown = m.labels[next]
	return m.animator.Start(t, time.Now())
}

// Index is the position of the label being shown.
func (m PlayerModel) Index() int {
	return m.index
}

// Shown is the label the player is morphing to, or showing.
func (m PlayerModel) Shown() string {
	return m.shown
}

// View renders the current frame and a status line.
func (m PlayerModel) View() string {
	var b strings.Builder
	b.WriteString(PlayerLabelStyle.Render(components.RenderFrame(m.animator.Frame())))
	if !m.done {
		b.WriteString("\n")
		b.WriteString(PlayerStatusStyle.Render(fmt.Sprintf("%d/%d • n: next • q: quit", m.index+1, len(m.labels))))
	}
	b.WriteString("\n")
	return b.String()
}
