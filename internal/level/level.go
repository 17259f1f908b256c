// Package level loads puzzle layouts. The line-oriented .map format only
// knows movable blocks; the .yaml format adds immovable walls and a spawn
// point. Coordinates are grid cells, the world scales them by its tile size.
package level

import "fmt"

// Cell is a grid coordinate.
type Cell struct {
	X int
	Y int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Level is a parsed puzzle layout.
type Level struct {
	ID        string
	Name      string
	Spawn     Cell
	Movable   []Cell
	Immovable []Cell
	FilePath  string
}

// TileCount returns the number of blocks in the level.
func (l *Level) TileCount() int {
	return len(l.Movable) + len(l.Immovable)
}

// LoadError reports a level source that could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("level: cannot load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
