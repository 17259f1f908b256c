package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pushlife/internal/config"
	"github.com/vovakirdan/pushlife/internal/level"
)

// LevelEntry is one selectable level.
type LevelEntry struct {
	Title  string
	Tiles  int
	Config config.LevelConfig
}

// LevelEntries lists the built-in tutorial followed by every level in dir.
// A missing or unreadable dir yields only the tutorial.
func LevelEntries(dir string) []LevelEntry {
	entries := []LevelEntry{{Title: "Tutorial (built-in)"}}
	if tut, err := level.Tutorial().Load(); err == nil {
		entries[0].Tiles = tut.TileCount()
	}
	if dir == "" {
		return entries
	}

	levels, err := level.NewLoader(dir).LoadAll()
	if err != nil {
		return entries
	}
	for _, lvl := range levels {
		entries = append(entries, LevelEntry{
			Title:  lvl.Name,
			Tiles:  lvl.TileCount(),
			Config: config.LevelConfig{Path: lvl.FilePath},
		})
	}
	return entries
}

// LevelMenuModel lets the user pick the starting level.
type LevelMenuModel struct {
	title   string
	entries []LevelEntry
	cursor  int
	width   int
	height  int
	keys    MenuKeyMap
	help    help.Model

	selected *LevelEntry
	back     bool
	quitting bool
}

// NewLevelMenuModel creates a level picker for the named variant.
func NewLevelMenuModel(title string, entries []LevelEntry, width, height int) LevelMenuModel {
	keys := DefaultMenuKeyMap()
	keys.History.SetEnabled(false)
	h := help.New()
	h.Width = width
	return LevelMenuModel{
		title:   title,
		entries: entries,
		width:   width,
		height:  height,
		keys:    keys,
		help:    h,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.entries) > 0 {
				sel := m.entries[m.cursor]
				m.selected = &sel
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select level:", m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		line := fmt.Sprintf("  %2d. %-24s %3d tiles", i+1, e.Title, e.Tiles)
		if i == m.cursor {
			line = cursorLine.Render(fmt.Sprintf("> %2d. %-24s %3d tiles", i+1, e.Title, e.Tiles))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen level, or nil while still choosing.
func (m LevelMenuModel) Selected() *LevelEntry {
	return m.selected
}

// WantsBack returns true if the user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// IsQuitting returns true if the user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}
