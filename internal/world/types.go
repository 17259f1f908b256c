// Package world holds the simulation core of PushLife: the entity arena,
// grid movement, push resolution, the life automaton and the mode machine.
// It has no terminal dependencies; the platform layer feeds it input frames
// and reads entities back for rendering.
package world

import "fmt"

// Position is a point in world units. Grid entities always sit on
// multiples of the tile size.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistSq returns the squared Euclidean distance to another position.
func (p Position) DistSq(o Position) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Within reports whether o is strictly closer than dist to p.
func (p Position) Within(o Position, dist int) bool {
	return p.DistSq(o) < dist*dist
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a step direction for the player.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the unit offset of the direction. Up is +Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Kind identifies what an arena record represents.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindTile
	KindLifetile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindTile:
		return "tile"
	case KindLifetile:
		return "lifetile"
	default:
		return "unknown"
	}
}

// Tags are capability flags on tiles.
type Tags uint8

const (
	TagMovable Tags = 1 << iota
	TagImmovable
)

// Has reports whether all bits of t are set.
func (g Tags) Has(t Tags) bool { return g&t == t }

// LifeState is the state of a life cell.
type LifeState uint8

const (
	Dead LifeState = iota
	Living
)

func (s LifeState) String() string {
	if s == Living {
		return "living"
	}
	return "dead"
}

// Texture identifiers consumed by renderers.
const (
	TexturePlayer   = "player.png"
	TextureCell     = "cell.png"
	TextureDeadCell = "dead_cell.png"
)

// TextureFor selects the texture for a life cell in the given state.
func TextureFor(s LifeState) string {
	if s == Living {
		return TextureCell
	}
	return TextureDeadCell
}
