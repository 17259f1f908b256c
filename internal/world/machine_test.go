package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineToggle(t *testing.T) {
	m := NewMachine(Paused, Toggle(Paused, Unpaused, EventTogglePause)...)
	cmds := NewCommands(NewArena())

	changed, err := m.Fire(EventTogglePause, cmds)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, m.Is(Unpaused))

	changed, err = m.Fire(EventToggleMode, cmds)
	require.NoError(t, err)
	assert.False(t, changed, "no row for this event")
	assert.Equal(t, Unpaused, m.Current())

	m.Fire(EventTogglePause, cmds)
	assert.Equal(t, Paused, m.Current())
}

func TestMachineHookOrder(t *testing.T) {
	m := NewMachine(ModePlaying, Toggle(ModePlaying, ModeLiving, EventToggleMode)...)
	var calls []string
	record := func(name string) Hook {
		return func(*Commands) error {
			calls = append(calls, name)
			return nil
		}
	}
	m.OnExit(ModePlaying, record("exit playing"))
	m.OnEnter(ModeLiving, record("enter living 1"), record("enter living 2"))
	m.OnEnter(ModePlaying, record("enter playing"))

	_, err := m.Fire(EventToggleMode, NewCommands(NewArena()))
	require.NoError(t, err)
	assert.Equal(t, []string{"exit playing", "enter living 1", "enter living 2"}, calls)

	calls = nil
	require.NoError(t, m.Enter(NewCommands(NewArena())))
	assert.Equal(t, []string{"enter living 1", "enter living 2"}, calls, "Enter replays the current state's hooks")
}

func TestMachineHookErrorRollsBack(t *testing.T) {
	a := NewArena()
	m := NewMachine(ModeLiving, Toggle(ModePlaying, ModeLiving, EventToggleMode)...)
	boom := errors.New("boom")

	var reserved Entity
	m.OnEnter(ModePlaying,
		func(c *Commands) error {
			reserved = c.Spawn(Record{Kind: KindPlayer})
			return nil
		},
		func(*Commands) error { return boom },
	)

	cmds := NewCommands(a)
	changed, err := m.Fire(EventToggleMode, cmds)

	assert.False(t, changed)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, ModeLiving, m.Current())
	assert.Zero(t, cmds.Pending())
	assert.False(t, a.Alive(reserved))
	assert.Zero(t, a.Len())
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "playing", ModePlaying.String())
	assert.Equal(t, "living", ModeLiving.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "unpaused", Unpaused.String())
	assert.Equal(t, "toggle-mode", EventToggleMode.String())
}
