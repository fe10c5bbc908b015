package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/history"
	"github.com/f3rmion/morph/internal/tui/bigchar"
	"github.com/f3rmion/morph/internal/tui/components"
	"github.com/f3rmion/morph/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewCompose ViewType = iota
	ViewPlay
	ViewHistory
	ViewFilePicker
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// ScriptLoadedMsg is sent when a script file has been read
type ScriptLoadedMsg struct {
	Script *config.Script
	Path   string
	Err    error
}

type recordedMsg struct {
	id  int64
	err error
}

// Options configures the app. Store and Logger may be nil.
type Options struct {
	Config    *config.Config
	ConfigDir string
	Store     *history.Store
	Logger    *slog.Logger
}

// AppModel is the main unified TUI model
type AppModel struct {
	config *config.Config
	store  *history.Store
	logger *slog.Logger

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	composeView    views.ComposeModel
	playView       views.PlayModel
	historyView    views.HistoryModel
	filePickerView views.FilePickerModel
	settingsView   views.SettingsModel

	// Last app-level notice, e.g. a script that failed to load
	notice    string
	noticeErr bool

	// Help overlay
	showHelp bool
}

// NewApp creates a new unified TUI application
func NewApp(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	big := bigchar.NewSystemRenderer()

	menuItems := []MenuItem{
		{Label: "Compose", View: ViewCompose, Shortcut: "1"},
		{Label: "Play", View: ViewPlay, Shortcut: "2"},
		{Label: "History", View: ViewHistory, Shortcut: "3"},
		{Label: "Open Script", View: ViewFilePicker, Shortcut: "4"},
		{Label: "Settings", View: ViewSettings, Shortcut: "5"},
	}

	return AppModel{
		config:       cfg,
		store:        opts.Store,
		logger:       logger,
		sidebarWidth: 20,
		currentView:  ViewCompose,
		menuItems:    menuItems,

		composeView:    views.NewComposeModel(cfg, big),
		playView:       views.NewPlayModel(cfg, big),
		historyView:    views.NewHistoryModel(opts.Store, cfg, big),
		filePickerView: views.NewFilePickerModel("", config.ScriptExtensions),
		settingsView:   views.NewSettingsModel(cfg, opts.ConfigDir),
	}
}

// NewAppWithScript creates a new app that starts in the play view with script loaded
func NewAppWithScript(opts Options, script *config.Script) (AppModel, tea.Cmd) {
	app := NewApp(opts)
	cmd := app.playView.SetScript(script)
	app.switchTo(ViewPlay)
	return app, cmd
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.historyView.Init())
}

func (m *AppModel) switchTo(v ViewType) {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
}

// capturesInput reports whether the active view is taking typed text, in which case single-key shortcuts are not global.
func (m AppModel) capturesInput() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewCompose:
		return m.composeView.CapturesInput()
	case ViewHistory:
		return m.historyView.CapturesInput()
	}
	return false
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.capturesInput() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "tab":
				m.sidebarActive = true
				return m, nil
			case "esc":
				if m.currentView == ViewCompose {
					m.sidebarActive = true
					return m, nil
				}
			}
			break
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "1", "2", "3", "4", "5":
			for _, item := range m.menuItems {
				if item.Shortcut == msg.String() {
					m.switchTo(item.View)
				}
			}
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.composeView.SetSize(contentWidth, contentHeight)
		m.playView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case ViewSwitchMsg:
		m.switchTo(msg.View)
		return m, nil

	case components.FrameMsg, components.DoneMsg:
		// Animations keep running in views that are not on screen.
		var c1, c2, c3 tea.Cmd
		m.composeView, c1 = m.composeView.Update(msg)
		m.playView, c2 = m.playView.Update(msg)
		m.historyView, c3 = m.historyView.Update(msg)
		return m, tea.Batch(c1, c2, c3)

	case views.FileSelectedMsg:
		return m, m.loadScript(msg.Path)

	case ScriptLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("loading script failed", "path", msg.Path, "err", msg.Err)
			m.setNotice(msg.Err.Error(), true)
			return m, nil
		}
		m.logger.Info("script loaded", "path", msg.Path, "labels", len(msg.Script.Labels))
		m.setNotice("Loaded "+msg.Script.Title, false)
		cmd := m.playView.SetScript(msg.Script)
		m.switchTo(ViewPlay)
		return m, cmd

	case views.MorphedMsg:
		m.logger.Debug("morph",
			"old", msg.Old(), "new", msg.New(), "units", msg.Units,
			"summary", msg.Transition.Summary().String())
		return m, m.record(msg)

	case recordedMsg:
		if msg.err != nil {
			m.logger.Error("recording morph failed", "err", msg.err)
			return m, nil
		}
		m.logger.Debug("morph recorded", "id", msg.id)
		return m, views.LoadHistory(m.store)

	case views.HistoryLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("loading history failed", "err", msg.Err)
		}
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case views.SettingsSavedMsg:
		if msg.Err != nil {
			m.logger.Error("saving config failed", "path", msg.Path, "err", msg.Err)
		} else {
			m.logger.Info("config saved", "path", msg.Path)
		}
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd
	}

	// Delegate to active view if not in sidebar mode
	if !m.sidebarActive {
		var cmd tea.Cmd
		switch m.currentView {
		case ViewCompose:
			m.composeView, cmd = m.composeView.Update(msg)
		case ViewPlay:
			m.playView, cmd = m.playView.Update(msg)
		case ViewHistory:
			m.historyView, cmd = m.historyView.Update(msg)
		case ViewFilePicker:
			m.filePickerView, cmd = m.filePickerView.Update(msg)
		case ViewSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *AppModel) setNotice(s string, isErr bool) {
	m.notice = s
	m.noticeErr = isErr
}

// loadScript reads a script file asynchronously
func (m AppModel) loadScript(path string) tea.Cmd {
	return func() tea.Msg {
		s, err := config.LoadScript(path)
		return ScriptLoadedMsg{Script: s, Path: path, Err: err}
	}
}

// record stores a morph in history asynchronously
func (m AppModel) record(msg views.MorphedMsg) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	entry := history.Entry{
		Old:     msg.Old(),
		New:     msg.New(),
		Units:   string(msg.Units),
		Result:  msg.Transition.Result,
		Summary: msg.Transition.Summary(),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := store.Record(ctx, entry)
		return recordedMsg{id: id, err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewCompose:
		content = m.composeView.View()
	case ViewPlay:
		content = m.playView.View()
	case ViewHistory:
		content = m.historyView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	if m.notice != "" {
		style := NoticeStyle
		if m.noticeErr {
			style = NoticeErrorStyle
		}
		content = style.Render(m.notice) + "\n\n" + content
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render("  ⇄ MORPH  "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4 // borders and help
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4ECDC4")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFE66D")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FAEE"))

	row := func(key, desc string) string {
		return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
	}

	helpText := titleStyle.Render("morph - animated label transitions") + "\n\n"

	helpText += sectionStyle.Render("Global Keys") + "\n"
	helpText += row("1-5", "Switch views")
	helpText += row("tab", "Toggle sidebar focus")
	helpText += row("?", "Show this help")
	helpText += row("q", "Quit")

	helpText += sectionStyle.Render("Compose View") + "\n"
	helpText += row("enter", "Morph to the typed label")
	helpText += row("ctrl+r", "Replay last morph")
	helpText += row("ctrl+t", "Toggle slot table")
	helpText += row("ctrl+y", "Copy slot table")
	helpText += row("esc", "Leave the input")

	helpText += sectionStyle.Render("Play View") + "\n"
	helpText += row("←/→", "Prev/next label")
	helpText += row("space", "Toggle autoplay")
	helpText += row("r", "Back to first label")

	helpText += sectionStyle.Render("History View") + "\n"
	helpText += row("j/k ↑/↓", "Select morph")
	helpText += row("enter", "Replay morph")
	helpText += row("/", "Search")
	helpText += row("r", "Reload")

	helpText += sectionStyle.Render("Settings") + "\n"
	helpText += row("enter/+/-", "Change value")
	helpText += row("s", "Save config")

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(1, 2).
		Width(50)

	helpBox := boxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
