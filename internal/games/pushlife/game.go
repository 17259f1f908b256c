// Package pushlife adapts the world simulation to the platform's game
// interface: fixed-rate stepping, a camera-following renderer and HUD.
package pushlife

import (
	"sync"
	"time"

	"github.com/vovakirdan/pushlife/internal/config"
	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/level"
	"github.com/vovakirdan/pushlife/internal/registry"
	"github.com/vovakirdan/pushlife/internal/world"
)

// Registered variant IDs.
const (
	IDStandard = "pushlife"
	IDLegacy   = "pushlife_legacy"
)

// Package-level settings shared by every new session, set by the CLI.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultPushLifeConfig()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.PushLifeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

func currentConfig() config.PushLifeConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDLegacy, func() registry.Game {
		return NewLegacy()
	})
}

// Game implements registry.Game on top of a world.World.
type Game struct {
	id     string
	preset config.Preset
	cfg    *config.PushLifeConfig // overrides the package settings when set

	world *world.World
	dt    time.Duration
	tick  uint64

	// Camera in grid cells; follows the player while one exists.
	camX, camY int

	screenW int
	screenH int
	err     error
}

// New creates the standard variant: settings are used as configured.
func New() *Game {
	return &Game{id: IDStandard}
}

// NewLegacy creates the variant that keeps row-wrapping neighbours and
// unchecked pushes regardless of configuration.
func NewLegacy() *Game {
	return &Game{id: IDLegacy, preset: config.PresetLegacy}
}

// NewWithConfig creates a standard game bound to a fixed configuration.
func NewWithConfig(cfg config.PushLifeConfig) *Game {
	g := New()
	g.cfg = &cfg
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDLegacy {
		return "PushLife (Legacy rules)"
	}
	return "PushLife"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.id == IDLegacy {
		return "Original quirks: wrapping neighbours, unchecked pushes"
	}
	return "Push blocks, then watch them live"
}

// Reset builds a fresh world from the current settings.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := currentConfig()
	if g.cfg != nil {
		cfg = *g.cfg
	}
	if g.preset != "" {
		config.ApplyPreset(&cfg, g.preset)
	}

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.camX, g.camY = 0, 0
	g.err = nil

	w, err := world.New(cfg.ToOptions(), SourceFor(cfg.Level))
	if err != nil {
		// Options were validated by the config loader; fall back to defaults.
		g.err = err
		w, _ = world.New(world.DefaultOptions(), level.Tutorial())
	}
	g.world = w
	g.followPlayer()
}

// UseLevel overrides the level for subsequent resets and keeps every other
// setting.
func (g *Game) UseLevel(lc config.LevelConfig) {
	cfg := currentConfig()
	if g.cfg != nil {
		cfg = *g.cfg
	}
	cfg.Level = lc
	g.cfg = &cfg
}

// SourceFor selects the level source for a level configuration: an explicit
// path, then an ID inside the level directory, then the built-in tutorial.
func SourceFor(lc config.LevelConfig) world.LevelSource {
	switch {
	case lc.Path != "":
		return level.FileSource{Path: lc.Path}
	case lc.ID != "":
		return level.LoaderSource{Loader: level.NewLoader(lc.Dir), ID: lc.ID}
	default:
		return level.Tutorial()
	}
}

// Step advances the world by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		if err := g.world.Reload(); err != nil {
			g.err = err
		}
	}
	if err := g.world.Tick(in, g.dt); err != nil {
		g.err = err
	}
	g.followPlayer()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	st := g.world.Stats()
	score := st.Pushes
	if g.world.GameState() == world.ModeLiving {
		score = st.Generations
	}
	return core.GameState{
		Score:  score,
		Paused: g.world.PausedState() == world.Paused,
		Mode:   g.world.GameState().String(),
		Err:    g.lastErr(),
	}
}

func (g *Game) lastErr() error {
	if g.err != nil {
		return g.err
	}
	return g.world.Err()
}

// Stats returns the session counters.
func (g *Game) Stats() world.Stats {
	if g.world == nil {
		return world.Stats{}
	}
	return g.world.Stats()
}

// LevelID returns the ID of the loaded level.
func (g *Game) LevelID() string {
	if g.world == nil {
		return ""
	}
	return g.world.Level().ID
}

func (g *Game) followPlayer() {
	if g.world == nil || g.world.GameState() != world.ModePlaying {
		return
	}
	_, rec := g.world.Player()
	ts := g.world.Options().TileSize
	g.camX, g.camY = gridOf(rec.Pos.X, ts), gridOf(rec.Pos.Y, ts)
}

// gridOf converts a world coordinate to a grid cell, rounding down.
func gridOf(v, ts int) int {
	q := v / ts
	if v%ts != 0 && v < 0 {
		q--
	}
	return q
}
