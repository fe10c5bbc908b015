package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/morph/internal/config"
	"github.com/f3rmion/morph/internal/history"
	"github.com/f3rmion/morph/internal/tui/bigchar"
	"github.com/f3rmion/morph/internal/tui/components"
)

// HistoryLimit is the number of entries the history view loads.
const HistoryLimit = 200

// History view styles
var (
	historyCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 1)

	historyTimeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	historySearchBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ffe66d")).
				Padding(0, 1)

	historyNoDataStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				Align(lipgloss.Center)
)

// HistoryLoadedMsg carries entries read from the store.
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// LoadHistory reads the most recent entries from store.
func LoadHistory(store *history.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		entries, err := store.Recent(ctx, HistoryLimit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

// HistoryModel lists recorded morphs and replays them.
type HistoryModel struct {
	store *history.Store
	stage stage

	entries  []history.Entry
	filtered []history.Entry
	selected int
	replayed bool

	searchInput textinput.Model
	searching   bool
	searchTerm  string

	err error

	width  int
	height int
}

// NewHistoryModel creates a new history view model. A nil store disables the view.
func NewHistoryModel(store *history.Store, cfg *config.Config, big *bigchar.Renderer) HistoryModel {
	si := textinput.New()
	si.Placeholder = "Search labels..."
	si.CharLimit = 50
	si.Width = 30

	return HistoryModel{
		store:       store,
		stage:       newStage(cfg, big),
		searchInput: si,
	}
}

// Init loads the entries.
func (m HistoryModel) Init() tea.Cmd {
	return LoadHistory(m.store)
}

// CapturesInput reports whether the search box is taking keys.
func (m HistoryModel) CapturesInput() bool {
	return m.searching
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.stage.setWidth(width)
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case components.FrameMsg, components.DoneMsg:
		return m, m.stage.update(msg)

	case HistoryLoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
			m.applyFilter()
		}
		return m, nil
	}

	if m.store == nil {
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch key.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.searchTerm = m.searchInput.Value()
			m.applyFilter()
			return m, nil
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
	}

	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return m, nil
	case "g":
		m.selected = 0
		return m, nil
	case "G":
		m.selected = max(0, len(m.filtered)-1)
		return m, nil
	case "enter":
		if m.selected < len(m.filtered) {
			m.replayed = true
			return m, m.stage.replay(m.filtered[m.selected].Transition())
		}
		return m, nil
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "c":
		m.searchTerm = ""
		m.searchInput.SetValue("")
		m.applyFilter()
		return m, nil
	case "r":
		return m, LoadHistory(m.store)
	}

	return m, nil
}

func (m *HistoryModel) applyFilter() {
	if m.searchTerm == "" {
		m.filtered = m.entries
	} else {
		m.filtered = nil
		term := strings.ToLower(m.searchTerm)
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.Old), term) || strings.Contains(strings.ToLower(e.New), term) {
				m.filtered = append(m.filtered, e)
			}
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.store == nil {
		return m.renderDisabled()
	}

	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.searching {
		b.WriteString(historySearchBoxStyle.Render("Search: " + m.searchInput.View()))
		b.WriteString("\n\n")
	} else if m.searchTerm != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Filter: %q (press 'c' to clear)", m.searchTerm)))
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		if len(m.entries) == 0 {
			b.WriteString(historyNoDataStyle.Render("No morphs recorded yet"))
		} else {
			b.WriteString(historyNoDataStyle.Render("No morphs match your search"))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(historyCountStyle.Render(
			fmt.Sprintf("Morph %d of %d", m.selected+1, len(m.filtered)),
		))
		b.WriteString("\n\n")
		b.WriteString(m.renderList())
	}

	if m.replayed {
		b.WriteString(m.stage.view())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: select • enter: replay • /: search • r: reload"))

	return b.String()
}

func (m HistoryModel) renderList() string {
	visible := max(3, m.height/2-4)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(start+visible, len(m.filtered))

	var b strings.Builder
	for i := start; i < end; i++ {
		e := m.filtered[i]
		line := fmt.Sprintf("%q → %q", e.Old, e.New)
		stamp := historyTimeStyle.Render(e.CreatedAt.Format("Jan 02 15:04"))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("▸ "+line) + "  " + stamp)
		} else {
			b.WriteString("  " + valueStyle.Render(line) + "  " + stamp)
		}
		b.WriteString("\n")
	}
	if m.selected < len(m.filtered) {
		b.WriteString(mutedStyle.Render("  " + m.filtered[m.selected].Summary.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m HistoryModel) renderDisabled() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3d5a80")).
		Padding(2, 4).
		Align(lipgloss.Center)

	content := historyNoDataStyle.Render("History Is Disabled") + "\n\n" +
		helpStyle.Render("Enable history in Settings and restart")

	return "\n\n" + box.Render(content)
}
