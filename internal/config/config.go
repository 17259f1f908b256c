// Package config provides YAML-based configuration loading for PushLife.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/pushlife/internal/world"
)

// PushLifeConfig contains all tunable settings.
type PushLifeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Movement MovementConfig `yaml:"movement"`
	Life     LifeConfig     `yaml:"life"`
	Push     PushConfig     `yaml:"push"`
	Level    LevelConfig    `yaml:"level"`
	Input    InputConfig    `yaml:"input"`
	Start    StartConfig    `yaml:"start"`
}

// GridConfig defines the world grid.
type GridConfig struct {
	TileSize int `yaml:"tile_size"` // World units per tile
}

// MovementConfig defines player stepping.
type MovementConfig struct {
	StepMS int `yaml:"step_ms"` // Minimum time between steps
}

// LifeConfig defines the automaton.
type LifeConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	IntervalMS int    `yaml:"interval_ms"`
	Neighbors  string `yaml:"neighbors"` // "bounded" or "legacy"
}

// PushConfig defines push validation.
type PushConfig struct {
	Mode string `yaml:"mode"` // "checked" or "legacy"
}

// LevelConfig selects the level. Path wins over ID; with neither set the
// built-in tutorial is used.
type LevelConfig struct {
	Path string `yaml:"path"`
	ID   string `yaml:"id"`
	Dir  string `yaml:"dir"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"` // How long a key counts as held after a repeat
}

// StartConfig defines the initial state.
type StartConfig struct {
	Paused bool `yaml:"paused"`
}

// Validate rejects configurations the world cannot run with.
func (c PushLifeConfig) Validate() error {
	var errs []error
	if c.Grid.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.tile_size must be positive, got %d", c.Grid.TileSize))
	}
	if c.Movement.StepMS <= 0 {
		errs = append(errs, fmt.Errorf("movement.step_ms must be positive, got %d", c.Movement.StepMS))
	}
	if c.Life.Width <= 0 || c.Life.Height <= 0 {
		errs = append(errs, fmt.Errorf("life size must be positive, got %dx%d", c.Life.Width, c.Life.Height))
	}
	if c.Life.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("life.interval_ms must be positive, got %d", c.Life.IntervalMS))
	}
	switch world.NeighborMode(c.Life.Neighbors) {
	case world.NeighborsBounded, world.NeighborsLegacy:
	default:
		errs = append(errs, fmt.Errorf("life.neighbors: unknown mode %q", c.Life.Neighbors))
	}
	switch world.PushMode(c.Push.Mode) {
	case world.PushChecked, world.PushLegacy:
	default:
		errs = append(errs, fmt.Errorf("push.mode: unknown mode %q", c.Push.Mode))
	}
	if c.Input.HoldWindowMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_window_ms must not be negative, got %d", c.Input.HoldWindowMS))
	}
	return errors.Join(errs...)
}

// ToOptions converts the configuration into world options.
func (c PushLifeConfig) ToOptions() world.Options {
	return world.Options{
		TileSize:     c.Grid.TileSize,
		StepDuration: time.Duration(c.Movement.StepMS) * time.Millisecond,
		SimWidth:     c.Life.Width,
		SimHeight:    c.Life.Height,
		SimInterval:  time.Duration(c.Life.IntervalMS) * time.Millisecond,
		Neighbors:    world.NeighborMode(c.Life.Neighbors),
		PushMode:     world.PushMode(c.Push.Mode),
		StartPaused:  c.Start.Paused,
	}
}

// HoldWindow returns the input hold window as a duration.
func (c PushLifeConfig) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldWindowMS) * time.Millisecond
}

// Preset is a named bundle of rule settings.
type Preset string

const (
	// PresetStandard uses strict grid bounds and checked pushes.
	PresetStandard Preset = "standard"
	// PresetLegacy keeps row-wrapping neighbours and unchecked pushes.
	PresetLegacy Preset = "legacy"
)

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *PushLifeConfig, preset Preset) {
	switch preset {
	case PresetLegacy:
		cfg.Life.Neighbors = string(world.NeighborsLegacy)
		cfg.Push.Mode = string(world.PushLegacy)
	case PresetStandard:
		cfg.Life.Neighbors = string(world.NeighborsBounded)
		cfg.Push.Mode = string(world.PushChecked)
	}
}
