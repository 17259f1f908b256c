package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pushlife/internal/registry"
	"github.com/vovakirdan/pushlife/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the variant sidebar
	sidebarWidth       = 26
	maxSessions        = 100
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Back    key.Binding
	Quit    key.Binding
	Refresh key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Refresh, k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyTab is one filter in the history view. An empty ID shows every
// variant.
type historyTab struct {
	ID    string
	Title string
}

// HistoryModel is the Bubble Tea model for the session history screen.
type HistoryModel struct {
	tabs     []historyTab
	tab      int
	store    *storage.Store
	sessions []storage.SessionRecord
	stats    *storage.VariantStats
	loadErr  error

	table       table.Model
	wideTable   bool
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	showSidebar bool

	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history view. store may be nil.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	tabs := []historyTab{{Title: "All variants"}}
	for _, g := range registry.List() {
		tabs = append(tabs, historyTab{ID: g.ID, Title: g.Title})
	}

	h := help.New()
	h.Width = width

	m := HistoryModel{
		tabs:        tabs,
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates the table sized for the current layout.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Variant", Width: 16},
		{Title: "Level", Width: 12},
		{Title: "Player", Width: 10},
		{Title: "Steps", Width: 6},
		{Title: "Pushes", Width: 6},
		{Title: "Gens", Width: 5},
		{Title: "Time", Width: 6},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Narrow terminals drop the variant and player columns.
	m.wideTable = tableWidth >= 90
	if !m.wideTable {
		columns = []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Level", Width: 12},
			{Title: "Steps", Width: 6},
			{Title: "Pushes", Width: 6},
			{Title: "Gens", Width: 5},
			{Title: "Time", Width: 6},
		}
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads sessions and stats for the active tab.
func (m *HistoryModel) load() {
	m.sessions, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		id := m.tabs[m.tab].ID
		m.sessions, m.loadErr = m.store.RecentSessions(id, maxSessions)
		if m.loadErr == nil && id != "" {
			m.stats, m.loadErr = m.store.Stats(id)
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table with the loaded sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		level := s.LevelID
		if level == "" {
			level = "-"
		}
		row := table.Row{s.CreatedAt.Local().Format("Jan 02 15:04"), level}
		if m.wideTable {
			row = table.Row{s.CreatedAt.Local().Format("Jan 02 15:04"), s.GameID, level, s.Player}
		}
		row = append(row,
			strconv.Itoa(s.Steps),
			strconv.Itoa(s.Pushes),
			strconv.Itoa(s.Generations),
			formatDuration(s.Duration),
		)
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a session length as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := fmt.Sprintf("SESSION HISTORY - %s", m.tabs[m.tab].Title)
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.tabs[m.tab].Title), m.width))
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summary renders the aggregate line for the active tab.
func (m HistoryModel) summary() string {
	switch {
	case m.store == nil:
		return "history unavailable: no database"
	case m.loadErr != nil:
		return "error: " + m.loadErr.Error()
	case m.stats != nil && m.stats.Sessions > 0:
		return fmt.Sprintf("%d sessions  |  best %d pushes  |  %d steps  |  %.1f gens avg",
			m.stats.Sessions, m.stats.BestPushes, m.stats.TotalSteps, m.stats.AvgGenerated)
	default:
		return fmt.Sprintf("%d sessions", len(m.sessions))
	}
}

func (m HistoryModel) renderSidebar() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Variants\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, t := range m.tabs {
		if i == m.tab {
			sb.WriteString(cursorLine.Render("> " + t.Title))
		} else {
			sb.WriteString("  " + t.Title)
		}
		sb.WriteString("\n")
	}
	return style.Render(sb.String())
}

func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return empty.Render("No sessions recorded yet.\nPlay a level to start your history!")
	}
	return m.table.View()
}

// Rows returns the rows currently shown in the table.
func (m HistoryModel) Rows() []table.Row {
	return m.table.Rows()
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory shows the history screen as a standalone program.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
