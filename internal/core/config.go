package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score  int    // Blocks pushed in puzzle mode, generations in life mode
	Paused bool   // Whether the simulation is paused
	Mode   string // Name of the active mode
	Err    error  // Last non-fatal error, such as a failed level load
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
