package world

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/level"
)

// Options configures a World.
type Options struct {
	TileSize     int
	StepDuration time.Duration

	SimWidth    int
	SimHeight   int
	SimInterval time.Duration
	Neighbors   NeighborMode

	PushMode    PushMode
	StartPaused bool
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		TileSize:     64,
		StepDuration: 200 * time.Millisecond,
		SimWidth:     100,
		SimHeight:    100,
		SimInterval:  2 * time.Second,
		Neighbors:    NeighborsBounded,
		PushMode:     PushChecked,
		StartPaused:  true,
	}
}

// Validate checks that the options describe a usable world.
func (o Options) Validate() error {
	switch {
	case o.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidOptions, o.TileSize)
	case o.StepDuration <= 0:
		return fmt.Errorf("%w: step duration %v", ErrInvalidOptions, o.StepDuration)
	case o.SimWidth <= 0 || o.SimHeight <= 0:
		return fmt.Errorf("%w: sim size %dx%d", ErrInvalidOptions, o.SimWidth, o.SimHeight)
	case o.SimInterval <= 0:
		return fmt.Errorf("%w: sim interval %v", ErrInvalidOptions, o.SimInterval)
	}
	switch o.Neighbors {
	case NeighborsBounded, NeighborsLegacy:
	default:
		return fmt.Errorf("%w: neighbor mode %q", ErrInvalidOptions, o.Neighbors)
	}
	switch o.PushMode {
	case PushChecked, PushLegacy:
	default:
		return fmt.Errorf("%w: push mode %q", ErrInvalidOptions, o.PushMode)
	}
	return nil
}

// Stats are per-session counters.
type Stats struct {
	Steps       int
	Pushes      int
	Blocked     int
	Generations int
}

// LevelSource supplies the layout loaded on every entry into Playing.
type LevelSource interface {
	Load() (level.Level, error)
}

// World owns the arena and both state machines and runs one frame per Tick.
type World struct {
	arena  *Arena
	opts   Options
	source LevelSource

	game   *Machine[GameState]
	paused *Machine[PausedState]

	player Entity
	sim    *Sim
	level  level.Level
	report SimReport
	stats  Stats

	lastErr error
}

// New builds a world in Playing and runs the Playing entry actions. A level
// that fails to load leaves the world with only the player spawned; the
// error is available from Err. New itself only fails on invalid options.
func New(opts Options, source LevelSource) (*World, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	initialPause := Unpaused
	if opts.StartPaused {
		initialPause = Paused
	}

	w := &World{
		arena:  NewArena(),
		opts:   opts,
		source: source,
		game:   NewMachine(ModePlaying, Toggle(ModePlaying, ModeLiving, EventToggleMode)...),
		paused: NewMachine(initialPause, Toggle(Paused, Unpaused, EventTogglePause)...),
	}
	w.game.OnEnter(ModePlaying, w.enterPlaying)
	w.game.OnEnter(ModeLiving, w.enterLiving)

	cmds := NewCommands(w.arena)
	if err := w.game.Enter(cmds); err != nil {
		w.lastErr = err
		logger.Error("initial level load failed", "err", err)
		w.spawnPlayer(cmds, Position{})
	}
	cmds.Apply()

	return w, nil
}

// Tick runs one frame: edge-triggered toggles first, then the systems the
// current states allow. The returned error is a failed transition; the
// world is unchanged by it and keeps running.
func (w *World) Tick(in core.InputFrame, dt time.Duration) error {
	var err error
	if in.Has(core.ActionPause) {
		err = fire(w, w.paused, EventTogglePause)
	}
	if in.Has(core.ActionToggleMode) {
		if ferr := fire(w, w.game, EventToggleMode); ferr != nil {
			err = ferr
		}
	}

	if w.paused.Is(Paused) {
		return err
	}

	switch w.game.Current() {
	case ModePlaying:
		w.MovePlayer(in, dt)
		w.ResolvePushes()
	case ModeLiving:
		if w.Sim().Update(dt) {
			w.stats.Generations++
		}
	}
	return err
}

func fire[S comparable](w *World, m *Machine[S], ev Event) error {
	from := m.Current()
	cmds := NewCommands(w.arena)
	changed, err := m.Fire(ev, cmds)
	if err != nil {
		w.lastErr = err
		logger.Error("transition failed", "event", ev, "state", from, "err", err)
		return err
	}
	if changed {
		n := cmds.Pending()
		cmds.Apply()
		logger.Debug("transition", "event", ev, "from", from, "to", m.Current(), "commands", n)
	}
	return nil
}

// Reload re-runs the Playing entry actions, restoring the level layout and
// the player. It is a no-op outside Playing.
func (w *World) Reload() error {
	if !w.game.Is(ModePlaying) {
		return nil
	}
	cmds := NewCommands(w.arena)
	cmds.DespawnKind(KindTile)
	cmds.DespawnKind(KindPlayer)
	if err := w.enterPlaying(cmds); err != nil {
		cmds.Discard()
		w.lastErr = err
		return err
	}
	cmds.Apply()
	return nil
}

// enterPlaying loads the level, spawns the player and its tiles, and tears
// down the Sim. Nothing is committed until the buffer is applied.
func (w *World) enterPlaying(cmds *Commands) error {
	lvl, err := w.source.Load()
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	ts := w.opts.TileSize
	w.spawnPlayer(cmds, Position{X: lvl.Spawn.X * ts, Y: lvl.Spawn.Y * ts})
	for _, c := range lvl.Movable {
		cmds.Spawn(Record{Kind: KindTile, Tags: TagMovable, Pos: Position{X: c.X * ts, Y: c.Y * ts}})
	}
	for _, c := range lvl.Immovable {
		cmds.Spawn(Record{Kind: KindTile, Tags: TagImmovable, Pos: Position{X: c.X * ts, Y: c.Y * ts}})
	}
	cmds.DespawnKind(KindLifetile)

	cmds.OnApply(func() {
		w.level = lvl
		w.sim = nil
		w.report = SimReport{}
		logger.Info("level loaded", "id", lvl.ID, "movable", len(lvl.Movable), "immovable", len(lvl.Immovable))
	})
	return nil
}

func (w *World) spawnPlayer(cmds *Commands, at Position) {
	e := cmds.Spawn(Record{
		Kind: KindPlayer,
		Pos:  at,
		Player: &PlayerState{
			MovementTimer: NewTimer(w.opts.StepDuration, TimerOnce),
		},
	})
	cmds.OnApply(func() { w.player = e })
}

// enterLiving builds the Sim from the current tiles before queueing the
// teardown of the puzzle entities.
func (w *World) enterLiving(cmds *Commands) error {
	var tiles []Position
	w.arena.Each(KindTile, func(_ Entity, r *Record) {
		tiles = append(tiles, r.Pos)
	})

	sim, report := buildSim(w.arena, cmds, tiles, w.opts)
	cmds.DespawnKind(KindPlayer)
	cmds.DespawnKind(KindTile)

	cmds.OnApply(func() {
		w.sim = sim
		w.player = NoEntity
		w.report = report
		logger.Info("sim built", "living", report.Placed, "skipped", len(report.OutOfRange)+len(report.Duplicates))
	})
	return nil
}

// Player returns the player singleton. It panics unless exactly one player
// exists, which holds whenever GameState is Playing.
func (w *World) Player() (Entity, *Record) {
	if n := w.arena.Count(KindPlayer); n != 1 {
		panic(fmt.Sprintf("world: expected exactly one player, found %d (state %v)", n, w.game.Current()))
	}
	rec, ok := w.arena.Get(w.player)
	if !ok {
		panic("world: player handle is stale")
	}
	return w.player, rec
}

// Sim returns the automaton singleton. It panics outside Living.
func (w *World) Sim() *Sim {
	if w.sim == nil {
		panic(fmt.Sprintf("world: no sim (state %v)", w.game.Current()))
	}
	return w.sim
}

// HasSim reports whether the Sim exists.
func (w *World) HasSim() bool { return w.sim != nil }

// Arena exposes the entity store for rendering and inspection.
func (w *World) Arena() *Arena { return w.arena }

// Options returns the options the world was built with.
func (w *World) Options() Options { return w.opts }

// GameState returns the active mode.
func (w *World) GameState() GameState { return w.game.Current() }

// PausedState returns the active pause state.
func (w *World) PausedState() PausedState { return w.paused.Current() }

// Level returns the last successfully loaded level.
func (w *World) Level() level.Level { return w.level }

// Stats returns the session counters.
func (w *World) Stats() Stats { return w.stats }

// LastReport returns the placement report of the most recent Sim build.
func (w *World) LastReport() SimReport { return w.report }

// Err returns the most recent failed load or transition, if any.
func (w *World) Err() error { return w.lastErr }
