package world

import (
	"fmt"
	"time"
)

// NeighborMode selects how the automaton addresses neighbouring cells.
type NeighborMode string

const (
	// NeighborsBounded only counts cells inside the 2D grid.
	NeighborsBounded NeighborMode = "bounded"
	// NeighborsLegacy uses the flat offset index+dx+dy*width and only checks
	// the flat range, so cells on the left and right edges sample the
	// neighbouring row.
	NeighborsLegacy NeighborMode = "legacy"
)

// Sim is the life automaton state. Tiles maps a flat index y*Width+x to the
// Lifetile entity occupying it.
type Sim struct {
	Tiles  []Entity
	Width  int
	Height int
	Timer  Timer

	Mode       NeighborMode
	Generation int

	arena *Arena
}

// SimReport describes tiles that could not be placed while building a Sim.
type SimReport struct {
	Placed     int
	OutOfRange []Position
	Duplicates []Position
}

// Index converts grid coordinates to a flat index. ok is false when the
// coordinates are outside the grid.
func (s *Sim) Index(x, y int) (int, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, false
	}
	return y*s.Width + x, true
}

// Coords converts a flat index back to grid coordinates.
func (s *Sim) Coords(i int) (x, y int) {
	return i % s.Width, i / s.Width
}

// Len returns the number of cells.
func (s *Sim) Len() int {
	return s.Width * s.Height
}

// Cell returns the Lifetile at a flat index.
func (s *Sim) Cell(i int) *Lifetile {
	if i < 0 || i >= len(s.Tiles) {
		return nil
	}
	rec, ok := s.arena.Get(s.Tiles[i])
	if !ok {
		return nil
	}
	return rec.Cell
}

// At returns the Lifetile at grid coordinates.
func (s *Sim) At(x, y int) (*Lifetile, error) {
	i, ok := s.Index(x, y)
	if !ok {
		return nil, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, s.Width, s.Height, ErrOutOfBounds)
	}
	return s.Cell(i), nil
}

// StateAt returns the current state at grid coordinates. Out of range is Dead.
func (s *Sim) StateAt(x, y int) LifeState {
	i, ok := s.Index(x, y)
	if !ok {
		return Dead
	}
	if c := s.Cell(i); c != nil {
		return c.Cur
	}
	return Dead
}

// LivingCount returns the number of living cells.
func (s *Sim) LivingCount() int {
	n := 0
	for i := range s.Tiles {
		if c := s.Cell(i); c != nil && c.Cur == Living {
			n++
		}
	}
	return n
}

// buildSim allocates the grid and queues one Lifetile per index. Tiles map to
// Living cells; every other index gets a Dead one.
func buildSim(a *Arena, cmds *Commands, tiles []Position, opts Options) (*Sim, SimReport) {
	s := &Sim{
		Tiles:  make([]Entity, opts.SimWidth*opts.SimHeight),
		Width:  opts.SimWidth,
		Height: opts.SimHeight,
		Timer:  NewTimer(opts.SimInterval, TimerRepeating),
		Mode:   opts.Neighbors,
		arena:  a,
	}

	var report SimReport
	ts := opts.TileSize
	for _, pos := range tiles {
		x, y := floorDiv(pos.X, ts), floorDiv(pos.Y, ts)
		i, ok := s.Index(x, y)
		if !ok {
			logger.Warn("skipping tile", "pos", pos, "err", ErrOutOfBounds)
			report.OutOfRange = append(report.OutOfRange, pos)
			continue
		}
		if s.Tiles[i].Valid() {
			logger.Warn("skipping duplicate tile", "pos", pos, "cell", fmt.Sprintf("(%d,%d)", x, y))
			report.Duplicates = append(report.Duplicates, pos)
			continue
		}
		s.Tiles[i] = cmds.Spawn(lifeRecord(i, Living, s.Width, ts))
		report.Placed++
	}

	for i := range s.Tiles {
		if !s.Tiles[i].Valid() {
			s.Tiles[i] = cmds.Spawn(lifeRecord(i, Dead, s.Width, ts))
		}
	}
	return s, report
}

func lifeRecord(i int, state LifeState, width, ts int) Record {
	return Record{
		Kind: KindLifetile,
		Pos:  Position{X: (i % width) * ts, Y: (i / width) * ts},
		Cell: &Lifetile{Cur: state, Next: state, Index: i},
	}
}

// Update advances the sim timer and steps one generation when it fires.
// Returns true if a generation was computed.
func (s *Sim) Update(dt time.Duration) bool {
	s.Timer.Tick(dt)
	if !s.Timer.JustFinished() {
		return false
	}
	s.Step()
	return true
}

// Step computes the next generation from a snapshot of the current one and
// then commits it.
func (s *Sim) Step() {
	cells := make([]*Lifetile, len(s.Tiles))
	for i := range s.Tiles {
		cells[i] = s.Cell(i)
	}

	for i, c := range cells {
		if c == nil {
			continue
		}
		n := s.neighbors(cells, i)
		if c.Cur == Living {
			n-- // the scan includes the cell itself
			if n < 2 || n > 3 {
				c.Next = Dead
			}
		} else if n == 3 {
			c.Next = Living
		}
	}

	for _, c := range cells {
		if c != nil {
			c.Cur = c.Next
		}
	}
	s.Generation++
}

// neighbors counts living cells in the 3x3 block around i, self included.
func (s *Sim) neighbors(cells []*Lifetile, i int) int {
	count := 0
	total := len(cells)
	x, y := s.Coords(i)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			var j int
			if s.Mode == NeighborsLegacy {
				j = i + dx + dy*s.Width
				if j < 0 || j >= total {
					continue
				}
			} else {
				var ok bool
				j, ok = s.Index(x+dx, y+dy)
				if !ok {
					continue
				}
			}
			if c := cells[j]; c != nil && c.Cur == Living {
				count++
			}
		}
	}
	return count
}

// floorDiv divides rounding toward negative infinity, so tiles left of or
// below the origin never land on index 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
