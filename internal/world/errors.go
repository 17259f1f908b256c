package world

import "errors"

var (
	// ErrOutOfBounds is returned for grid coordinates outside the Sim.
	ErrOutOfBounds = errors.New("position outside simulation grid")
	// ErrInvalidOptions is returned by New for unusable options.
	ErrInvalidOptions = errors.New("invalid world options")
)
