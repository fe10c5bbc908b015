package views

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/f3rmion/morph/internal/morph"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	settingsTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	settingsHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				MarginTop(1)
)

// SettingsSavedMsg reports the outcome of writing the config file.
type SettingsSavedMsg struct {
	Path string
	Err  error
}

// Frame rates the fps setting cycles through.
var fpsSteps = []int{15, 24, 30, 60}

const durationStep = 100 * time.Millisecond

type setting struct {
	name   string
	value  func(*config.Config) string
	change func(c *config.Config, dir int) // dir is +1 or -1
}

var settingsTabs = []struct {
	name     string
	settings []setting
}{
	{"Animation", []setting{
		{
			name:  "Duration",
			value: func(c *config.Config) string { return c.Animation.Duration.String() },
			change: func(c *config.Config, dir int) {
				d := c.Animation.Duration + time.Duration(dir)*durationStep
				c.Animation.Duration = max(d, durationStep)
			},
		},
		{
			name:  "FPS",
			value: func(c *config.Config) string { return strconv.Itoa(c.Animation.FPS) },
			change: func(c *config.Config, dir int) {
				c.Animation.FPS = cycle(fpsSteps, c.Animation.FPS, dir)
			},
		},
		{
			name:  "Easing",
			value: func(c *config.Config) string { return c.Animation.Easing },
			change: func(c *config.Config, dir int) {
				c.Animation.Easing = cycle(morph.EasingNames(), c.Animation.Easing, dir)
			},
		},
		{
			name:  "Units",
			value: func(c *config.Config) string { return c.Animation.Units },
			change: func(c *config.Config, dir int) {
				modes := []string{string(glyph.Graphemes), string(glyph.Runes)}
				c.Animation.Units = cycle(modes, c.Animation.Units, dir)
			},
		},
	}},
	{"Display", []setting{
		{
			name:   "Big glyphs",
			value:  func(c *config.Config) string { return onOff(c.Display.BigGlyphs) },
			change: func(c *config.Config, _ int) { c.Display.BigGlyphs = !c.Display.BigGlyphs },
		},
		{
			name:  "Glyph rows",
			value: func(c *config.Config) string { return strconv.Itoa(c.Display.GlyphRows) },
			change: func(c *config.Config, dir int) {
				c.Display.GlyphRows = max(1, min(c.Display.GlyphRows+dir, 12))
			},
		},
	}},
	{"History", []setting{
		{
			name:   "Recording",
			value:  func(c *config.Config) string { return onOff(c.History.Enabled) + " (applies on restart)" },
			change: func(c *config.Config, _ int) { c.History.Enabled = !c.History.Enabled },
		},
	}},
}

// cycle returns the element after (or before) cur in steps, wrapping around. Values not in steps start from the first.
func cycle[T comparable](steps []T, cur T, dir int) T {
	i := slices.Index(steps, cur)
	if i < 0 {
		return steps[0]
	}
	n := len(steps)
	return steps[((i+dir)%n+n)%n]
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// SettingsModel shows and edits the configuration. Changes apply to the shared config immediately.
type SettingsModel struct {
	config    *config.Config
	configDir string

	tab    int
	cursor int
	dirty  bool
	status string
	err    error

	width  int
	height int
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(cfg *config.Config, configDir string) SettingsModel {
	return SettingsModel{
		config:    cfg,
		configDir: configDir,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Dirty reports whether there are unsaved changes.
func (m SettingsModel) Dirty() bool {
	return m.dirty
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case SettingsSavedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.dirty = false
			m.status = "Saved to " + msg.Path
		}
		return m, nil

	case tea.KeyMsg:
		settings := settingsTabs[m.tab].settings
		switch msg.String() {
		case "right", "l":
			m.tab = (m.tab + 1) % len(settingsTabs)
			m.cursor = 0
		case "left", "h":
			m.tab = (m.tab + len(settingsTabs) - 1) % len(settingsTabs)
			m.cursor = 0
		case "j", "down":
			if m.cursor < len(settings)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", " ", "+", "=":
			m.change(settings[m.cursor], 1)
		case "-", "_":
			m.change(settings[m.cursor], -1)
		case "s":
			return m, m.save()
		}
	}
	return m, nil
}

func (m *SettingsModel) change(s setting, dir int) {
	before := *m.config
	s.change(m.config, dir)
	if err := m.config.Validate(); err != nil {
		*m.config = before
		m.err = err
		return
	}
	m.err = nil
	m.status = ""
	m.dirty = true
}

func (m SettingsModel) save() tea.Cmd {
	cfg := *m.config
	dir := m.configDir
	return func() tea.Msg {
		path := filepath.Join(dir, config.FileName)
		if err := config.EnsureConfigDir(dir); err != nil {
			return SettingsSavedMsg{Path: path, Err: err}
		}
		return SettingsSavedMsg{Path: path, Err: config.Save(path, &cfg)}
	}
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("Morph Configuration"))
	b.WriteString("\n")
	b.WriteString(settingsPathStyle.Render("Config: " + filepath.Join(m.configDir, config.FileName)))
	b.WriteString("\n\n")

	var tabViews []string
	for i, t := range settingsTabs {
		style := settingsTabStyle
		if i == m.tab {
			style = settingsTabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t.name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(0, min(m.width-4, 60)))))
	b.WriteString("\n\n")

	for i, s := range settingsTabs[m.tab].settings {
		name := fmt.Sprintf("%-12s", s.name)
		if i == m.cursor {
			b.WriteString("> " + selectedStyle.Render(name) + " " + valueStyle.Render(s.value(m.config)))
		} else {
			b.WriteString("  " + labelStyle.Render(name) + " " + valueStyle.Render(s.value(m.config)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(copiedStyle.Render(m.status))
	case m.dirty:
		b.WriteString(mutedStyle.Render("Unsaved changes"))
	}
	b.WriteString("\n")

	b.WriteString(settingsHelpStyle.Render("←/→: switch tabs • j/k: select • enter/+/-: change • s: save"))

	return b.String()
}
