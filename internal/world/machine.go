package world

import "fmt"

// GameState selects which simulation runs.
type GameState uint8

const (
	ModePlaying GameState = iota
	ModeLiving
)

func (s GameState) String() string {
	if s == ModeLiving {
		return "living"
	}
	return "playing"
}

// PausedState gates all simulation.
type PausedState uint8

const (
	Paused PausedState = iota
	Unpaused
)

func (s PausedState) String() string {
	if s == Unpaused {
		return "unpaused"
	}
	return "paused"
}

// Event is an edge-triggered input that may cause a transition.
type Event uint8

const (
	EventTogglePause Event = iota + 1
	EventToggleMode
)

func (e Event) String() string {
	switch e {
	case EventTogglePause:
		return "toggle-pause"
	case EventToggleMode:
		return "toggle-mode"
	default:
		return "unknown"
	}
}

// Hook is an entry or exit action. Hooks queue their effects into the
// command buffer; returning an error aborts the transition.
type Hook func(cmds *Commands) error

// Transition is one row of a machine's transition table.
type Transition[S comparable] struct {
	From  S
	Event Event
	To    S
}

type transitionKey[S comparable] struct {
	from  S
	event Event
}

// Machine is a finite-state machine driven by an explicit transition table
// with entry and exit hooks per state.
type Machine[S comparable] struct {
	current S
	table   map[transitionKey[S]]S
	onEnter map[S][]Hook
	onExit  map[S][]Hook
}

// NewMachine creates a machine in the initial state with the given table.
func NewMachine[S comparable](initial S, table ...Transition[S]) *Machine[S] {
	m := &Machine[S]{
		current: initial,
		table:   make(map[transitionKey[S]]S, len(table)),
		onEnter: make(map[S][]Hook),
		onExit:  make(map[S][]Hook),
	}
	for _, t := range table {
		m.table[transitionKey[S]{from: t.From, event: t.Event}] = t.To
	}
	return m
}

// Toggle builds the two-row table of a machine that flips between a and b
// on ev.
func Toggle[S comparable](a, b S, ev Event) []Transition[S] {
	return []Transition[S]{
		{From: a, Event: ev, To: b},
		{From: b, Event: ev, To: a},
	}
}

// OnEnter registers hooks run, in order, when s is entered.
func (m *Machine[S]) OnEnter(s S, hooks ...Hook) {
	m.onEnter[s] = append(m.onEnter[s], hooks...)
}

// OnExit registers hooks run, in order, when s is left.
func (m *Machine[S]) OnExit(s S, hooks ...Hook) {
	m.onExit[s] = append(m.onExit[s], hooks...)
}

// Current returns the active state.
func (m *Machine[S]) Current() S {
	return m.current
}

// Is reports whether s is the active state.
func (m *Machine[S]) Is(s S) bool {
	return m.current == s
}

// Next returns the state ev would lead to, if any.
func (m *Machine[S]) Next(ev Event) (S, bool) {
	to, ok := m.table[transitionKey[S]{from: m.current, event: ev}]
	return to, ok
}

// Fire applies ev. Exit hooks of the current state and entry hooks of the
// next run against cmds; the caller applies cmds when Fire succeeds. On a
// hook error cmds is discarded and the state is left unchanged.
func (m *Machine[S]) Fire(ev Event, cmds *Commands) (bool, error) {
	to, ok := m.Next(ev)
	if !ok {
		return false, nil
	}
	for _, h := range m.onExit[m.current] {
		if err := h(cmds); err != nil {
			cmds.Discard()
			return false, fmt.Errorf("leaving %v: %w", m.current, err)
		}
	}
	for _, h := range m.onEnter[to] {
		if err := h(cmds); err != nil {
			cmds.Discard()
			return false, fmt.Errorf("entering %v: %w", to, err)
		}
	}
	m.current = to
	return true, nil
}

// Enter runs the entry hooks of the current state, used once at startup.
func (m *Machine[S]) Enter(cmds *Commands) error {
	for _, h := range m.onEnter[m.current] {
		if err := h(cmds); err != nil {
			cmds.Discard()
			return fmt.Errorf("entering %v: %w", m.current, err)
		}
	}
	return nil
}
