package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/morph/internal/morph"
)

// FrameMsg asks the animator with the matching ID to advance.
type FrameMsg struct {
	ID int64
	At time.Time
}

// DoneMsg is sent once when an animation reaches its final frame.
type DoneMsg struct {
	ID int64
}

var lastAnimationID atomic.Int64

// Animator drives one transition at a time from tea.Tick messages.
type Animator struct {
	id         int64
	transition morph.Transition
	ease       morph.Easing
	duration   time.Duration
	interval   time.Duration
	start      time.Time
	progress   float64
	running    bool
}

// NewAnimator returns an idle animator with the given timing.
func NewAnimator(duration, interval time.Duration, ease morph.Easing) Animator {
	return Animator{duration: duration, interval: interval, ease: ease, progress: 1}
}

// SetTiming changes the timing for subsequent animations.
func (a *Animator) SetTiming(duration, interval time.Duration, ease morph.Easing) {
	a.duration = duration
	a.interval = interval
	a.ease = ease
}

// Start begins animating t from now. Any animation in flight is abandoned.
func (a *Animator) Start(t morph.Transition, now time.Time) tea.Cmd {
	a.id = lastAnimationID.Add(1)
	a.transition = t
	a.start = now
	a.progress = 0
	a.running = true
	if a.duration <= 0 {
		a.progress = 1
		a.running = false
		id := a.id
		return func() tea.Msg { return DoneMsg{ID: id} }
	}
	return a.tick()
}

// Show displays t at its final frame without animating.
func (a *Animator) Show(t morph.Transition) {
	a.id = lastAnimationID.Add(1)
	a.transition = t
	a.progress = 1
	a.running = false
}

// Update advances the animation for a FrameMsg it owns. Other messages are ignored.
func (a Animator) Update(msg tea.Msg) (Animator, tea.Cmd) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.ID != a.id || !a.running {
		return a, nil
	}

	a.progress = float64(fm.At.Sub(a.start)) / float64(a.duration)
	if a.progress >= 1 {
		a.progress = 1
		a.running = false
		id := a.id
		return a, func() tea.Msg { return DoneMsg{ID: id} }
	}
	return a, a.tick()
}

func (a Animator) tick() tea.Cmd {
	id := a.id
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, At: t}
	})
}

// ID identifies the current animation; DoneMsg carries it.
func (a Animator) ID() int64 {
	return a.id
}

// Running reports whether an animation is in flight.
func (a Animator) Running() bool {
	return a.running
}

// Progress is the linear progress of the current animation.
func (a Animator) Progress() float64 {
	return a.progress
}

// Transition is the transition being shown.
func (a Animator) Transition() morph.Transition {
	return a.transition
}

// Frame is the current frame.
func (a Animator) Frame() morph.Frame {
	return a.transition.Frame(a.progress, a.ease)
}
