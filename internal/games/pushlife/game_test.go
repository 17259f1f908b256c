package pushlife

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/pushlife/internal/config"
	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/registry"
	"github.com/vovakirdan/pushlife/internal/world"
)

const roomYAML = `id: room
spawn: {x: 2, y: 2}
movable:
  - {x: 3, y: 2}
immovable:
  - {x: 0, y: 0}
`

// runtime with one tick per movement step.
var rc = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 5}

func newRoomGame(t *testing.T, paused bool) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "room.yaml")
	if err := os.WriteFile(path, []byte(roomYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultPushLifeConfig()
	cfg.Level.Path = path
	cfg.Start.Paused = paused
	cfg.Life.Width = 10
	cfg.Life.Height = 10

	g := NewWithConfig(cfg)
	g.Reset(rc)
	if err := g.State().Err; err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func frame(pressed []core.Action, held ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range pressed {
		f.Set(a)
	}
	for _, a := range held {
		f.Hold(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDStandard, IDLegacy} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestResetTutorial(t *testing.T) {
	g := NewWithConfig(config.DefaultPushLifeConfig())
	g.Reset(rc)

	st := g.State()
	if !st.Paused {
		t.Error("game should start paused")
	}
	if st.Mode != "playing" {
		t.Errorf("Mode = %q, expected playing", st.Mode)
	}
	if snap := g.Snapshot(); snap.Tiles != 15 {
		t.Errorf("tutorial tiles = %d, expected 15", snap.Tiles)
	}
	if g.LevelID() != "tutorial" {
		t.Errorf("LevelID() = %q, expected tutorial", g.LevelID())
	}
}

func TestPushThroughGame(t *testing.T) {
	g := newRoomGame(t, false)

	g.Step(frame(nil, core.ActionRight))

	snap := g.Snapshot()
	if snap.PlayerX != 3 || snap.PlayerY != 2 {
		t.Errorf("player at (%d,%d), expected (3,2)", snap.PlayerX, snap.PlayerY)
	}
	if snap.Pushes != 1 || g.State().Score != 1 {
		t.Errorf("pushes = %d, score = %d, expected 1", snap.Pushes, g.State().Score)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newRoomGame(t, true)

	g.Step(frame(nil, core.ActionRight))
	if g.Snapshot().PlayerX != 2 {
		t.Error("player should not move while paused")
	}

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Paused") {
		t.Error("paused game should show the overlay")
	}

	g.Step(frame([]core.Action{core.ActionPause}))
	if g.State().Paused {
		t.Error("pause key should unpause")
	}
}

func TestModeToggle(t *testing.T) {
	g := newRoomGame(t, false)

	g.Step(frame([]core.Action{core.ActionToggleMode}))

	snap := g.Snapshot()
	if snap.Mode != "living" {
		t.Fatalf("Mode = %q, expected living", snap.Mode)
	}
	if snap.Living != 2 || snap.Tiles != 0 {
		t.Errorf("living = %d, tiles = %d, expected 2 and 0", snap.Living, snap.Tiles)
	}

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Life") {
		t.Errorf("HUD should show life mode, got %q", screen.Row(0))
	}

	g.Step(frame([]core.Action{core.ActionToggleMode}))
	if g.Snapshot().Tiles != 2 {
		t.Error("returning to puzzle mode should reload the level")
	}
}

func TestRestartReloads(t *testing.T) {
	g := newRoomGame(t, false)
	g.Step(frame(nil, core.ActionDown))
	if g.Snapshot().PlayerY != 1 {
		t.Fatal("expected a step down")
	}

	g.Step(frame([]core.Action{core.ActionRestart}))
	snap := g.Snapshot()
	if snap.PlayerX != 2 || snap.PlayerY != 2 {
		t.Errorf("after restart player at (%d,%d), expected spawn (2,2)", snap.PlayerX, snap.PlayerY)
	}
}

func TestLegacyVariant(t *testing.T) {
	g := NewLegacy()
	g.Reset(rc)

	opts := g.world.Options()
	if opts.PushMode != world.PushLegacy || opts.Neighbors != world.NeighborsLegacy {
		t.Errorf("legacy variant options = %+v", opts)
	}
}

func TestMissingLevelReportsError(t *testing.T) {
	cfg := config.DefaultPushLifeConfig()
	cfg.Level.Path = filepath.Join(t.TempDir(), "missing.map")

	g := NewWithConfig(cfg)
	g.Reset(rc)

	if g.State().Err == nil {
		t.Fatal("expected a load error")
	}
	if g.Snapshot().Tiles != 0 {
		t.Error("no tiles expected after a failed load")
	}

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.Row(rc.ScreenH-1), "error:") {
		t.Errorf("footer should show the error, got %q", screen.Row(rc.ScreenH-1))
	}
}

func TestRenderCentersPlayer(t *testing.T) {
	g := newRoomGame(t, false)
	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)

	// 9 visible rows and 20 cells: the camera cell is column 10, row 4.
	if screen.Get(20, hudHeight+4) != '@' {
		t.Errorf("player not at center, row = %q", screen.Row(hudHeight+4))
	}
	// The pushable block is one cell to the right.
	if screen.Get(22, hudHeight+4) != '[' {
		t.Errorf("block not right of player, row = %q", screen.Row(hudHeight+4))
	}
	if strings.Contains(screen.String(), "Game Paused") {
		t.Error("running game should not show the pause overlay")
	}
}

func TestUseLevelOverridesOnlyTheLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.yaml")
	if err := os.WriteFile(path, []byte(roomYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	g := NewLegacy()
	g.UseLevel(config.LevelConfig{Path: path})
	g.Reset(rc)

	if err := g.State().Err; err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := g.LevelID(); got != "room" {
		t.Errorf("LevelID = %q, want room", got)
	}
	if g.world.Options().PushMode != world.PushLegacy {
		t.Error("UseLevel should keep the variant's rules")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{0, "....."},
		{0.4, "##..."},
		{1, "#####"},
		{1.5, "#####"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.frac, 5); got != tt.want {
			t.Errorf("progressBar(%v) = %q, want %q", tt.frac, got, tt.want)
		}
	}
}

func TestLifeFooterReportsSkippedTiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.yaml")
	wide := "id: wide\nspawn: {x: 0, y: 0}\nmovable:\n  - {x: 1, y: 0}\n  - {x: 1, y: 15}\n"
	if err := os.WriteFile(path, []byte(wide), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultPushLifeConfig()
	cfg.Level.Path = path
	cfg.Start.Paused = false
	cfg.Life.Width = 10
	cfg.Life.Height = 10

	g := NewWithConfig(cfg)
	g.Reset(rc)
	g.Step(frame([]core.Action{core.ActionToggleMode}))

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)
	footer := screen.Row(rc.ScreenH - 1)
	if !strings.Contains(footer, "1 tile(s) outside the 10x10 grid") {
		t.Errorf("footer = %q, expected the skipped tile notice", footer)
	}
	if g.Snapshot().Living != 1 {
		t.Errorf("living = %d, expected 1", g.Snapshot().Living)
	}
}
