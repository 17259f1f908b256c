package config

import (
	_ "embed"
)

//go:embed defaults/pushlife.yaml
var defaultPushLifeYAML []byte

// DefaultPushLifeConfig returns the hardcoded default configuration.
func DefaultPushLifeConfig() PushLifeConfig {
	return PushLifeConfig{
		Grid:     GridConfig{TileSize: 64},
		Movement: MovementConfig{StepMS: 200},
		Life: LifeConfig{
			Width:      100,
			Height:     100,
			IntervalMS: 2000,
			Neighbors:  "bounded",
		},
		Push:  PushConfig{Mode: "checked"},
		Level: LevelConfig{Dir: "levels"},
		Input: InputConfig{HoldWindowMS: 180},
		Start: StartConfig{Paused: true},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPushLifeYAML
}
