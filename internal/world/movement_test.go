package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/level"
)

func TestChooseNextDir(t *testing.T) {
	tests := []struct {
		name    string
		current Direction
		in      core.InputFrame
		want    Direction
	}{
		{"nothing held", DirNone, hold(), DirNone},
		{"single key", DirNone, hold(core.ActionLeft), DirLeft},
		{"up before down", DirNone, hold(core.ActionDown, core.ActionUp), DirUp},
		{"down before right", DirNone, hold(core.ActionRight, core.ActionDown), DirDown},
		{"right before left", DirNone, hold(core.ActionLeft, core.ActionRight), DirRight},
		{"committed direction wins", DirLeft, hold(core.ActionUp, core.ActionLeft), DirLeft},
		{"released committed direction", DirLeft, hold(core.ActionUp), DirUp},
		{"press counts as held", DirNone, press(core.ActionDown), DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, chooseNextDir(tc.current, tc.in))
		})
	}
}

func TestMovePlayerRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		there, back core.Action
		mid         Position
	}{
		{"up then down", core.ActionUp, core.ActionDown, tilePos(0, 1)},
		{"right then left", core.ActionRight, core.ActionLeft, tilePos(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, testOptions(), level.Level{})

			assert.NoError(t, w.Tick(hold(tc.there), step))
			assert.Equal(t, tc.mid, playerPos(w))

			assert.NoError(t, w.Tick(hold(tc.back), step))
			assert.Equal(t, tilePos(0, 0), playerPos(w))
			assert.Equal(t, 2, w.Stats().Steps)
		})
	}
}

func TestMovePlayerOneTilePerStep(t *testing.T) {
	w, _ := newTestWorld(t, testOptions(), level.Level{})

	w.Tick(hold(core.ActionUp), step/2)
	assert.Equal(t, tilePos(0, 0), playerPos(w), "timer not finished")

	w.Tick(hold(core.ActionUp), step/2)
	assert.Equal(t, tilePos(0, 1), playerPos(w), "up is +Y")

	// A long frame still moves a single tile.
	w.Tick(hold(core.ActionUp), 10*step)
	assert.Equal(t, tilePos(0, 2), playerPos(w))
}

func TestMovePlayerIdleSaturatesTimer(t *testing.T) {
	w, _ := newTestWorld(t, testOptions(), level.Level{})

	w.Tick(hold(), step)
	assert.Equal(t, tilePos(0, 0), playerPos(w))

	_, rec := w.Player()
	assert.Equal(t, DirNone, rec.Player.MoveDir)
	assert.True(t, rec.Player.MovementTimer.Finished())

	// The next held key moves without waiting a full step.
	w.Tick(hold(core.ActionDown), time.Millisecond)
	assert.Equal(t, tilePos(0, -1), playerPos(w))
}

func TestMovePlayerPauseFreezes(t *testing.T) {
	opts := testOptions()
	opts.StartPaused = true
	w, _ := newTestWorld(t, opts, level.Level{})
	assert.Equal(t, Paused, w.PausedState())

	for range 10 {
		w.Tick(hold(core.ActionRight), step)
	}
	assert.Equal(t, tilePos(0, 0), playerPos(w))
	assert.Zero(t, w.Stats().Steps)

	w.Tick(press(core.ActionPause), step)
	assert.Equal(t, Unpaused, w.PausedState())

	w.Tick(hold(core.ActionRight), step)
	assert.Equal(t, tilePos(1, 0), playerPos(w))
}

func TestMovePlayerPauseMidStepKeepsProgress(t *testing.T) {
	w, _ := newTestWorld(t, testOptions(), level.Level{})

	w.Tick(hold(core.ActionUp), step)
	assert.Equal(t, tilePos(0, 1), playerPos(w))

	// Half a step towards the origin, then pause.
	w.Tick(hold(core.ActionDown), step/2)
	w.Tick(press(core.ActionPause), 0)
	assert.Equal(t, Paused, w.PausedState())

	for range 5 {
		w.Tick(hold(core.ActionDown), step)
	}
	assert.Equal(t, tilePos(0, 1), playerPos(w), "paused world must not move")
	_, rec := w.Player()
	assert.Equal(t, step/2, rec.Player.MovementTimer.Elapsed)

	w.Tick(press(core.ActionPause), 0)
	assert.Equal(t, Unpaused, w.PausedState())

	w.Tick(hold(core.ActionDown), step/2-time.Millisecond)
	assert.Equal(t, tilePos(0, 1), playerPos(w), "remaining half step not yet elapsed")

	w.Tick(hold(core.ActionDown), time.Millisecond)
	assert.Equal(t, tilePos(0, 0), playerPos(w))
	assert.Equal(t, 2, w.Stats().Steps)
}

func TestDirectionOppositeUndoesDelta(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox, d.String())
		assert.Equal(t, 0, dy+oy, d.String())
	}
	assert.Equal(t, DirNone, DirNone.Opposite())
}
