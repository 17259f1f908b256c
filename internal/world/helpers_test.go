package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/level"
)

const step = 200 * time.Millisecond

type stubSource struct {
	lvl   level.Level
	err   error
	calls int
}

func (s *stubSource) Load() (level.Level, error) {
	s.calls++
	return s.lvl, s.err
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.StartPaused = false
	opts.SimWidth = 10
	opts.SimHeight = 10
	opts.SimInterval = time.Second
	return opts
}

func newTestWorld(t *testing.T, opts Options, lvl level.Level) (*World, *stubSource) {
	t.Helper()
	src := &stubSource{lvl: lvl}
	w, err := New(opts, src)
	require.NoError(t, err)
	require.NoError(t, w.Err())
	return w, src
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func playerPos(w *World) Position {
	_, rec := w.Player()
	return rec.Pos
}

// tiles returns every tile position with its tags.
func tiles(w *World) map[Position]Tags {
	out := make(map[Position]Tags)
	w.Arena().Each(KindTile, func(_ Entity, r *Record) {
		out[r.Pos] = r.Tags
	})
	return out
}

func tilePos(x, y int) Position {
	return Position{X: x * 64, Y: y * 64}
}
