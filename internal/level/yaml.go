package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk structure of a .yaml level.
type YAMLLevel struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Spawn     YAMLCell   `yaml:"spawn"`
	Movable   []YAMLCell `yaml:"movable"`
	Immovable []YAMLCell `yaml:"immovable"`
}

// YAMLCell is a single coordinate.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a .yaml level. A cell listed as both movable and
// immovable is rejected.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:    yl.ID,
		Name:  yl.Name,
		Spawn: Cell{X: yl.Spawn.X, Y: yl.Spawn.Y},
	}

	walls := make(map[Cell]bool, len(yl.Immovable))
	for _, c := range yl.Immovable {
		cell := Cell{X: c.X, Y: c.Y}
		walls[cell] = true
		lvl.Immovable = append(lvl.Immovable, cell)
	}
	for _, c := range yl.Movable {
		cell := Cell{X: c.X, Y: c.Y}
		if walls[cell] {
			return Level{}, fmt.Errorf("cell %s is both movable and immovable", cell)
		}
		lvl.Movable = append(lvl.Movable, cell)
	}

	return lvl, nil
}
