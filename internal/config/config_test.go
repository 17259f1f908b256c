package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/pushlife/internal/world"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := decode(GetDefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultPushLifeConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsMatchWorld(t *testing.T) {
	assert.Equal(t, world.DefaultOptions(), DefaultPushLifeConfig().ToOptions())
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("life:\n  width: 20\n  neighbors: legacy\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Life.Width)
	assert.Equal(t, 100, cfg.Life.Height, "unset fields keep defaults")
	assert.Equal(t, "legacy", cfg.Life.Neighbors)

	opts := cfg.ToOptions()
	assert.Equal(t, world.NeighborsLegacy, opts.Neighbors)
	assert.Equal(t, 2*time.Second, opts.SimInterval)
	assert.Equal(t, 180*time.Millisecond, cfg.HoldWindow())
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [oops"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("push:\n  mode: sideways\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "push.mode")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PushLifeConfig)
		wantErr string
	}{
		{"defaults", func(*PushLifeConfig) {}, ""},
		{"tile size", func(c *PushLifeConfig) { c.Grid.TileSize = 0 }, "grid.tile_size"},
		{"step", func(c *PushLifeConfig) { c.Movement.StepMS = -1 }, "movement.step_ms"},
		{"life size", func(c *PushLifeConfig) { c.Life.Width = 0 }, "life size"},
		{"interval", func(c *PushLifeConfig) { c.Life.IntervalMS = 0 }, "life.interval_ms"},
		{"neighbors", func(c *PushLifeConfig) { c.Life.Neighbors = "torus" }, "life.neighbors"},
		{"hold window", func(c *PushLifeConfig) { c.Input.HoldWindowMS = -5 }, "input.hold_window_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPushLifeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultPushLifeConfig()

	ApplyPreset(&cfg, PresetLegacy)
	assert.Equal(t, "legacy", cfg.Life.Neighbors)
	assert.Equal(t, "legacy", cfg.Push.Mode)

	ApplyPreset(&cfg, PresetStandard)
	assert.Equal(t, "bounded", cfg.Life.Neighbors)
	assert.Equal(t, "checked", cfg.Push.Mode)
}
