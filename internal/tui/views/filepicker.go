package views

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileSelectedMsg is sent when a file is selected
type FileSelectedMsg struct {
	Path string
}

// File picker styles
var (
	fpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	fpPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			MarginBottom(1)

	fpDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	fpFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	fpHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// FileEntry represents a file or directory
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// FilePickerModel browses the filesystem for script files.
type FilePickerModel struct {
	currentDir string
	entries    []FileEntry
	selected   int
	offset     int

	extensions []string
	showHidden bool

	err error

	width  int
	height int
}

// NewFilePickerModel creates a file picker rooted at startDir that lists files with the given extensions. An empty
// startDir means the working directory.
func NewFilePickerModel(startDir string, extensions []string) FilePickerModel {
	if startDir == "" {
		startDir, _ = os.Getwd()
	}
	if startDir == "" {
		startDir, _ = os.UserHomeDir()
	}
	if startDir == "" {
		startDir = "/"
	}

	m := FilePickerModel{
		currentDir: startDir,
		extensions: extensions,
	}
	m.loadDir()
	return m
}

// Dir is the directory being listed.
func (m FilePickerModel) Dir() string {
	return m.currentDir
}

// Entries are the listed entries, parent first, then directories, then files.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *FilePickerModel) loadDir() {
	m.entries = nil
	m.selected = 0
	m.offset = 0
	m.err = nil

	entries, err := os.ReadDir(m.currentDir)
	if err != nil {
		m.err = err
		return
	}

	if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
		m.entries = append(m.entries, FileEntry{
			Name:  "..",
			IsDir: true,
			Path:  parent,
		})
	}

	var dirs, files []FileEntry
	for _, entry := range entries {
		if !m.showHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fe := FileEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Path:  filepath.Join(m.currentDir, entry.Name()),
		}

		if entry.IsDir() {
			dirs = append(dirs, fe)
		} else if m.matchesExtension(entry.Name()) {
			files = append(files, fe)
		}
	}

	byName := func(s []FileEntry) {
		sort.Slice(s, func(i, j int) bool {
			return strings.ToLower(s[i].Name) < strings.ToLower(s[j].Name)
		})
	}
	byName(dirs)
	byName(files)

	m.entries = append(m.entries, dirs...)
	m.entries = append(m.entries, files...)
}

func (m *FilePickerModel) matchesExtension(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range m.extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.selected < len(m.entries)-1 {
			m.selected++
			m.adjustScroll()
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.adjustScroll()
		}
	case "enter", "l", "right":
		if m.selected < len(m.entries) {
			entry := m.entries[m.selected]
			if entry.IsDir {
				m.currentDir = entry.Path
				m.loadDir()
				return m, nil
			}
			return m, func() tea.Msg {
				return FileSelectedMsg{Path: entry.Path}
			}
		}
	case "backspace", "h":
		if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
			m.currentDir = parent
			m.loadDir()
		}
	case "~":
		if home, _ := os.UserHomeDir(); home != "" {
			m.currentDir = home
			m.loadDir()
		}
	case ".":
		m.showHidden = !m.showHidden
		m.loadDir()
	case "g":
		m.selected = 0
		m.offset = 0
	case "G":
		m.selected = max(0, len(m.entries)-1)
		m.adjustScroll()
	case "ctrl+d":
		m.selected = min(m.selected+m.visibleHeight()/2, max(0, len(m.entries)-1))
		m.adjustScroll()
	case "ctrl+u":
		m.selected = max(m.selected-m.visibleHeight()/2, 0)
		m.adjustScroll()
	}

	return m, nil
}

func (m *FilePickerModel) visibleHeight() int {
	return max(m.height-8, 5) // header, path, help
}

func (m *FilePickerModel) adjustScroll() {
	h := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(fpTitleStyle.Render("Open Script (" + strings.Join(m.extensions, " ") + ")"))
	b.WriteString("\n")
	b.WriteString(fpPathStyle.Render(m.currentDir))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	rule := dividerStyle.Render(strings.Repeat("─", max(0, min(m.width-4, 60))))
	b.WriteString(rule)
	b.WriteString("\n")

	h := m.visibleHeight()
	end := min(m.offset+h, len(m.entries))

	if len(m.entries) == 0 {
		b.WriteString(fpHelpStyle.Render("  (no scripts found)"))
		b.WriteString("\n")
	}

	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		line := "[FILE] " + entry.Name
		style := fpFileStyle
		if entry.IsDir {
			line = "[DIR]  " + entry.Name
			style = fpDirStyle
		}

		if i == m.selected {
			b.WriteString("> " + selectedStyle.Render(line))
		} else {
			b.WriteString("  " + style.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.entries) > h {
		b.WriteString(helpStyle.Render(strings.Repeat(" ", 50) + "↕ scroll"))
		b.WriteString("\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(fpHelpStyle.Render("enter: open • backspace: parent • ~: home • .: hidden files"))

	return b.String()
}
