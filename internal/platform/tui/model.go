package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/registry"
	"github.com/vovakirdan/pushlife/internal/storage"
	"github.com/vovakirdan/pushlife/internal/world"
)

// DefaultHoldWindow is used when no hold window is configured.
const DefaultHoldWindow = 180 * time.Millisecond

// sessionReporter is implemented by games whose sessions are recorded.
type sessionReporter interface {
	Stats() world.Stats
	LevelID() string
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Player     string        // recorded with the session
	HoldWindow time.Duration // zero means DefaultHoldWindow
	Embedded   bool          // B returns to a surrounding menu
}

// GameModel is the Bubble Tea model for one game session.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	opts   GameOptions

	keys  KeyMap
	hold  *HoldTracker
	frame core.InputFrame
	state core.GameState

	started    time.Time
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	game.Reset(cfg)

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		opts:    opts,
		keys:    DefaultKeyMap(),
		hold:    NewHoldTracker(opts.HoldWindow),
		frame:   core.NewInputFrame(),
		state:   game.State(),
		started: time.Now(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key into the frame for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
		return m, nil

	case action == core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.opts.Embedded {
			m.finish()
			m.backToMenu = true
		}
		return m, nil

	case isDirection(action):
		if m.hold.Press(action, now) {
			m.frame.Set(action)
		} else {
			m.frame.Hold(action)
		}

	default:
		m.frame.Set(action)
	}

	return m, nil
}

// handleTick steps the game once with the accumulated input.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.hold.Apply(&m.frame, now)
	result := m.game.Step(m.frame)
	m.state = result.State
	if m.frame.Has(core.ActionRestart) {
		m.hold.Reset()
	}
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finish records the session once. Sessions without any progress are not
// recorded.
func (m *GameModel) finish() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	rep, ok := m.game.(sessionReporter)
	if !ok {
		return
	}
	st := rep.Stats()
	if st.Steps == 0 && st.Generations == 0 {
		return
	}

	rec := storage.SessionRecord{
		GameID:      m.game.ID(),
		LevelID:     rep.LevelID(),
		Player:      m.opts.Player,
		Steps:       st.Steps,
		Pushes:      st.Pushes,
		Blocked:     st.Blocked,
		Generations: st.Generations,
		Duration:    time.Since(m.started),
	}
	best, err := m.store.BestPushes(rec.GameID)
	if err != nil {
		log.Debug("could not read best pushes", "game", rec.GameID, "err", err)
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		log.Warn("could not save session", "game", rec.GameID, "err", err)
		return
	}
	if rec.Pushes > best {
		log.Info("new best", "game", rec.GameID, "player", rec.Player, "pushes", rec.Pushes)
	}
}

// saveScreenshot writes the current screen to ~/.pushlife/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".pushlife", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	log.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
