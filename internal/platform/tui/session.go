package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushlife/internal/config"
	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/registry"
	"github.com/vovakirdan/pushlife/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLevels
	screenGame
	screenHistory
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Player     string
	HoldWindow time.Duration
	LevelDir   string // extra levels offered by the level picker
}

// levelChooser is implemented by games whose level can be picked per
// session.
type levelChooser interface {
	UseLevel(lc config.LevelConfig)
}

// SessionModel runs the whole flow: menu, level picker, game and history.
// It is the top-level model for SSH sessions and the local menu.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	opts   SessionOptions
	screen sessionScreen

	menu    MenuModel
	levels  LevelMenuModel
	history HistoryModel
	game    *GameModel
	pending registry.Game // variant waiting for its level

	quitting bool
}

// NewSessionModel creates a session starting at the menu. store may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenLevels:
		return m.updateLevels(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenHistory
		return m, nil

	case m.menu.Selected() != nil:
		sel := *m.menu.Selected()
		game, err := registry.Create(sel.ID)
		if err != nil {
			log.Error("cannot create game", "id", sel.ID, "err", err)
			return m.toMenu()
		}
		if _, ok := game.(levelChooser); ok {
			if entries := LevelEntries(m.opts.LevelDir); len(entries) > 1 {
				m.pending = game
				m.levels = NewLevelMenuModel(sel.Title, entries, m.config.ScreenW, m.config.ScreenH)
				m.screen = screenLevels
				return m, nil
			}
		}
		return m.startGame(game)
	}
	return m, nil
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := m.levels.Update(msg)
	m.levels = next.(LevelMenuModel)

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.levels.WantsBack():
		return m.toMenu()

	case m.levels.Selected() != nil:
		game := m.pending
		m.pending = nil
		if lc, ok := game.(levelChooser); ok {
			lc.UseLevel(m.levels.Selected().Config)
		}
		return m.startGame(game)
	}
	return m, nil
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	switch {
	case gm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case gm.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	m.history = next.(HistoryModel)

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) startGame(game registry.Game) (tea.Model, tea.Cmd) {
	gm := NewGameModel(game, m.store, m.config, GameOptions{
		Player:     m.opts.Player,
		HoldWindow: m.opts.HoldWindow,
		Embedded:   true,
	})
	m.game = &gm
	m.screen = screenGame
	log.Debug("game started", "id", game.ID(), "player", m.opts.Player)
	return m, gm.Init()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.pending = nil
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
	m.screen = screenMenu
	return m, nil
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenLevels:
		return m.levels.View()
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
