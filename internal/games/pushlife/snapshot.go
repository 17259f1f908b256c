package pushlife

import "github.com/vovakirdan/pushlife/internal/world"

// Snapshot captures the observable game state for tests and replay checks.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Paused     bool
	PlayerX    int // grid cell, valid in puzzle mode
	PlayerY    int
	Tiles      int
	Living     int
	Generation int
	Steps      int
	Pushes     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Mode:   g.world.GameState().String(),
		Paused: g.world.PausedState() == world.Paused,
		Tiles:  g.world.Arena().Count(world.KindTile),
		Steps:  g.world.Stats().Steps,
		Pushes: g.world.Stats().Pushes,
	}
	switch g.world.GameState() {
	case world.ModePlaying:
		_, rec := g.world.Player()
		ts := g.world.Options().TileSize
		s.PlayerX, s.PlayerY = gridOf(rec.Pos.X, ts), gridOf(rec.Pos.Y, ts)
	case world.ModeLiving:
		sim := g.world.Sim()
		s.Living = sim.LivingCount()
		s.Generation = sim.Generation
	}
	return s
}
