package world

// Entity is a generational handle into an Arena. The zero value never
// refers to a live record.
type Entity struct {
	Index uint32
	Gen   uint32
}

// NoEntity is the empty handle.
var NoEntity = Entity{}

// Valid reports whether the handle was ever issued.
func (e Entity) Valid() bool { return e.Gen != 0 }

// PlayerState is the movement component of the player.
type PlayerState struct {
	MoveDir       Direction
	NextMoveDir   Direction
	MovementTimer Timer
}

// Lifetile is a cell of the life automaton.
type Lifetile struct {
	Cur   LifeState
	Next  LifeState
	Index int
}

// Record is the data stored for one entity.
type Record struct {
	Kind   Kind
	Tags   Tags
	Pos    Position
	Player *PlayerState
	Cell   *Lifetile
}

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotAlive
)

type slot struct {
	gen   uint32
	state slotState
	rec   Record
}

// Arena stores entities in a dense slice with a free list. Iteration is in
// slot order, so passes over the arena are deterministic.
type Arena struct {
	slots []slot
	free  []uint32
	alive int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Spawn inserts a record immediately and returns its handle.
func (a *Arena) Spawn(rec Record) Entity {
	e := a.reserve()
	a.activate(e, rec)
	return e
}

// Despawn removes an entity. Returns false if the handle is stale.
func (a *Arena) Despawn(e Entity) bool {
	if !a.Alive(e) {
		return false
	}
	a.release(e.Index)
	a.alive--
	return true
}

// Alive reports whether the handle refers to a live record.
func (a *Arena) Alive(e Entity) bool {
	if !e.Valid() || int(e.Index) >= len(a.slots) {
		return false
	}
	s := &a.slots[e.Index]
	return s.state == slotAlive && s.gen == e.Gen
}

// Get returns the record for a live entity.
func (a *Arena) Get(e Entity) (*Record, bool) {
	if !a.Alive(e) {
		return nil, false
	}
	return &a.slots[e.Index].rec, true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.alive
}

// Each calls fn for every live entity of the given kind, in slot order.
func (a *Arena) Each(kind Kind, fn func(Entity, *Record)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.state != slotAlive || s.rec.Kind != kind {
			continue
		}
		fn(Entity{Index: uint32(i), Gen: s.gen}, &s.rec)
	}
}

// Query returns the live entities of a kind carrying all of the given tags.
func (a *Arena) Query(kind Kind, tags Tags) []Entity {
	var out []Entity
	a.Each(kind, func(e Entity, r *Record) {
		if r.Tags.Has(tags) {
			out = append(out, e)
		}
	})
	return out
}

// Count returns the number of live entities of a kind.
func (a *Arena) Count(kind Kind) int {
	n := 0
	a.Each(kind, func(Entity, *Record) { n++ })
	return n
}

func (a *Arena) reserve() Entity {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[idx]
	s.gen++
	s.state = slotReserved
	return Entity{Index: idx, Gen: s.gen}
}

func (a *Arena) activate(e Entity, rec Record) {
	s := &a.slots[e.Index]
	s.rec = rec
	s.state = slotAlive
	a.alive++
}

func (a *Arena) release(idx uint32) {
	s := &a.slots[idx]
	s.state = slotFree
	s.rec = Record{}
	a.free = append(a.free, idx)
}

// Commands buffers spawns and despawns so passes over the arena never
// mutate it while iterating. Handles returned by Spawn are reserved
// immediately and become live on Apply.
type Commands struct {
	arena    *Arena
	spawns   []pendingSpawn
	despawns []Entity
	after    []func()
}

type pendingSpawn struct {
	e   Entity
	rec Record
}

// NewCommands creates a command buffer bound to an arena.
func NewCommands(a *Arena) *Commands {
	return &Commands{arena: a}
}

// Spawn queues a record and returns its reserved handle.
func (c *Commands) Spawn(rec Record) Entity {
	e := c.arena.reserve()
	c.spawns = append(c.spawns, pendingSpawn{e: e, rec: rec})
	return e
}

// Despawn queues removal of an entity.
func (c *Commands) Despawn(e Entity) {
	c.despawns = append(c.despawns, e)
}

// DespawnKind queues removal of every live entity of a kind.
func (c *Commands) DespawnKind(kind Kind) {
	c.arena.Each(kind, func(e Entity, _ *Record) {
		c.Despawn(e)
	})
}

// OnApply registers fn to run after the queued spawns and despawns have
// been applied. Discard drops it.
func (c *Commands) OnApply(fn func()) {
	c.after = append(c.after, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.despawns) + len(c.after)
}

// Apply performs the queued spawns, then the queued despawns, then the
// OnApply hooks in registration order.
func (c *Commands) Apply() {
	for _, p := range c.spawns {
		c.arena.activate(p.e, p.rec)
	}
	for _, e := range c.despawns {
		c.arena.Despawn(e)
	}
	after := c.after
	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.after = nil
	for _, fn := range after {
		fn()
	}
}

// Discard drops the queue and gives reserved handles back to the arena.
func (c *Commands) Discard() {
	for _, p := range c.spawns {
		c.arena.release(p.e.Index)
	}
	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.after = nil
}
