package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaSpawnDespawn(t *testing.T) {
	a := NewArena()

	e := a.Spawn(Record{Kind: KindTile, Tags: TagMovable})
	require.True(t, a.Alive(e))
	assert.Equal(t, 1, a.Len())

	assert.True(t, a.Despawn(e))
	assert.False(t, a.Alive(e))
	assert.False(t, a.Despawn(e), "double despawn")

	// The slot is reused with a new generation; the old handle stays dead.
	e2 := a.Spawn(Record{Kind: KindTile})
	assert.Equal(t, e.Index, e2.Index)
	assert.NotEqual(t, e.Gen, e2.Gen)
	assert.False(t, a.Alive(e))

	_, ok := a.Get(NoEntity)
	assert.False(t, ok)
}

func TestArenaQuery(t *testing.T) {
	a := NewArena()
	m := a.Spawn(Record{Kind: KindTile, Tags: TagMovable})
	w := a.Spawn(Record{Kind: KindTile, Tags: TagImmovable})
	a.Spawn(Record{Kind: KindPlayer})

	assert.Equal(t, []Entity{m}, a.Query(KindTile, TagMovable))
	assert.Equal(t, []Entity{w}, a.Query(KindTile, TagImmovable))
	assert.Equal(t, 2, a.Count(KindTile))
	assert.Equal(t, 1, a.Count(KindPlayer))
}

func TestCommandsApplyOrder(t *testing.T) {
	a := NewArena()
	old := a.Spawn(Record{Kind: KindTile})

	cmds := NewCommands(a)
	cmds.DespawnKind(KindTile)
	e := cmds.Spawn(Record{Kind: KindTile})

	var seen int
	cmds.OnApply(func() { seen = a.Count(KindTile) })

	assert.False(t, a.Alive(e), "spawn is deferred")
	assert.Equal(t, 3, cmds.Pending())

	cmds.Apply()
	assert.True(t, a.Alive(e))
	assert.False(t, a.Alive(old))
	assert.Equal(t, 1, seen, "hooks run after spawns and despawns")
	assert.Zero(t, cmds.Pending())
}

func TestCommandsDiscard(t *testing.T) {
	a := NewArena()
	keep := a.Spawn(Record{Kind: KindTile})

	cmds := NewCommands(a)
	e := cmds.Spawn(Record{Kind: KindPlayer})
	cmds.Despawn(keep)
	ran := false
	cmds.OnApply(func() { ran = true })

	cmds.Discard()
	cmds.Apply()

	assert.False(t, ran)
	assert.False(t, a.Alive(e))
	assert.True(t, a.Alive(keep))
	assert.Equal(t, 1, a.Len())

	// The reserved slot went back to the free list.
	again := a.Spawn(Record{Kind: KindPlayer})
	assert.Equal(t, e.Index, again.Index)
}
