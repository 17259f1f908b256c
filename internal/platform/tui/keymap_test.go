package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pushlife/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runes("w"), core.ActionUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runes("s"), core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"p", runes("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"l", runes("l"), core.ActionToggleMode},
		{"r", runes("r"), core.ActionRestart},
		{"b", runes("b"), core.ActionBack},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldTrackerRepeatsKeepKeyHeld(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	if !h.Press(core.ActionRight, t0) {
		t.Error("first press should be fresh")
	}
	if h.Press(core.ActionRight, t0.Add(30*time.Millisecond)) {
		t.Error("auto-repeat inside the window should not be fresh")
	}

	f := core.NewInputFrame()
	h.Apply(&f, t0.Add(120*time.Millisecond))
	if !f.Held(core.ActionRight) {
		t.Error("key should still be held 90ms after the last repeat")
	}
	if f.Has(core.ActionRight) {
		t.Error("Apply must not create presses")
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionUp, t0)

	f := core.NewInputFrame()
	h.Apply(&f, t0.Add(150*time.Millisecond))
	if f.Held(core.ActionUp) {
		t.Error("key should be released after the window")
	}
	if h.Held(core.ActionUp, t0) {
		t.Error("expired keys are forgotten by Apply")
	}
	if !h.Press(core.ActionUp, t0.Add(200*time.Millisecond)) {
		t.Error("press after release should be fresh")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionDown, t0)

	h.Reset()

	f := core.NewInputFrame()
	h.Apply(&f, t0)
	if f.Held(core.ActionLeft) || f.Held(core.ActionDown) {
		t.Error("Reset should release every key")
	}
}
