package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/f3rmion/morph/internal/morph"
	"github.com/f3rmion/morph/internal/tui/bigchar"
	"github.com/f3rmion/morph/internal/tui/components"
)

// MorphedMsg is sent whenever a view starts a transition, so the app can record it.
type MorphedMsg struct {
	Transition morph.Transition
	Units      glyph.Mode
}

// Old is the old label text.
func (m MorphedMsg) Old() string {
	return strings.Join(m.Transition.Old, "")
}

// New is the new label text.
func (m MorphedMsg) New() string {
	return strings.Join(m.Transition.New, "")
}

// stage is the area where a label morphs. Views embed one.
type stage struct {
	cfg      *config.Config
	big      *bigchar.Renderer
	animator components.Animator
	bar      progress.Model
}

func newStage(cfg *config.Config, big *bigchar.Renderer) stage {
	bar := progress.New(progress.WithGradient("#4ecdc4", "#ffe66d"), progress.WithoutPercentage())
	bar.Width = 40
	return stage{
		cfg:      cfg,
		big:      big,
		animator: components.NewAnimator(cfg.Animation.Duration, cfg.FrameInterval(), cfg.Easing()),
		bar:      bar,
	}
}

// play starts t with the current config timing and announces it.
func (s *stage) play(t morph.Transition) tea.Cmd {
	s.animator.SetTiming(s.cfg.Animation.Duration, s.cfg.FrameInterval(), s.cfg.Easing())
	units := s.cfg.Units()
	announce := func() tea.Msg {
		return MorphedMsg{Transition: t, Units: units}
	}
	return tea.Batch(s.animator.Start(t, time.Now()), announce)
}

// replay starts t without announcing it.
func (s *stage) replay(t morph.Transition) tea.Cmd {
	s.animator.SetTiming(s.cfg.Animation.Duration, s.cfg.FrameInterval(), s.cfg.Easing())
	return s.animator.Start(t, time.Now())
}

func (s *stage) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.animator, cmd = s.animator.Update(msg)
	return cmd
}

func (s *stage) setWidth(width int) {
	s.bar.Width = max(10, min(width-8, 60))
}

func (s stage) view() string {
	frame := s.animator.Frame()

	var label string
	if s.cfg.Display.BigGlyphs && s.big.IsAvailable() {
		label = components.RenderBigFrame(frame, s.big, s.cfg.Display.GlyphRows)
	} else {
		label = components.RenderFrame(frame)
	}
	if strings.TrimSpace(label) == "" {
		label = mutedStyle.Render("(empty)")
	}

	return stageStyle.Render(label) + "\n" + s.bar.ViewAs(s.animator.Progress())
}
