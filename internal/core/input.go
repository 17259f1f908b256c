package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move up
	ActionDown              // S, Down arrow - move down
	ActionLeft              // A, Left arrow - move left
	ActionRight             // D, Right arrow - move right
	ActionPause             // P, Escape - toggle pause
	ActionToggleMode        // L, Space - switch between puzzle and life
	ActionConfirm           // Enter - confirm selection
	ActionBack              // B - back to the previous screen
	ActionRestart           // R - reload the level
	ActionQuit              // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
// Pressed holds actions that went down this tick (edge-triggered);
// Down holds actions currently held (level-triggered). A press is
// always also held for the tick it happens in.
type InputFrame struct {
	Pressed map[Action]bool
	Down    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Down:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame. It is also held.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a new press.
func (f *InputFrame) Hold(a Action) {
	if f.Down == nil {
		f.Down = make(map[Action]bool)
	}
	f.Down[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Held returns true if the action is held this frame.
func (f InputFrame) Held(a Action) bool {
	return f.Down[a] || f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Down)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Down {
		clone.Down[k] = v
	}
	return clone
}
