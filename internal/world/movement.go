package world

import (
	"time"

	"github.com/vovakirdan/pushlife/internal/core"
)

// directionKeys is the order in which held keys are considered when the
// committed direction is no longer held.
var directionKeys = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionRight, DirRight},
	{core.ActionLeft, DirLeft},
}

// actionFor returns the input action bound to a direction.
func actionFor(d Direction) (core.Action, bool) {
	for _, k := range directionKeys {
		if k.dir == d {
			return k.action, true
		}
	}
	return core.ActionNone, false
}

// chooseNextDir picks the buffered direction for the next step.
// Continuing in the committed direction wins over switching.
func chooseNextDir(current Direction, in core.InputFrame) Direction {
	if a, ok := actionFor(current); ok && in.Held(a) {
		return current
	}
	for _, k := range directionKeys {
		if in.Held(k.action) {
			return k.dir
		}
	}
	return DirNone
}

// MovePlayer advances the player by at most one tile. Returns true when a
// translation was applied this frame.
func (w *World) MovePlayer(in core.InputFrame, dt time.Duration) bool {
	_, rec := w.Player()
	p := rec.Player

	p.NextMoveDir = chooseNextDir(p.MoveDir, in)

	p.MovementTimer.Tick(dt)
	if !p.MovementTimer.Finished() {
		return false
	}

	p.MovementTimer.Reset()
	p.MoveDir = p.NextMoveDir
	p.NextMoveDir = DirNone

	if p.MoveDir == DirNone {
		// Stay saturated so the next held key steps immediately.
		p.MovementTimer.SetElapsed(p.MovementTimer.Duration)
		return false
	}

	dx, dy := p.MoveDir.Delta()
	rec.Pos = rec.Pos.Add(dx*w.opts.TileSize, dy*w.opts.TileSize)
	w.stats.Steps++
	return true
}
