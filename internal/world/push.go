package world

// PushMode selects how pushed blocks are validated.
type PushMode string

const (
	// PushChecked refuses a push whose destination is already occupied by
	// another tile; the player is moved back instead.
	PushChecked PushMode = "checked"
	// PushLegacy displaces blocks without looking at the destination, so
	// blocks can end up stacked on walls or other blocks.
	PushLegacy PushMode = "legacy"
)

// ResolvePushes resolves collisions after a player step. It must run after
// MovePlayer in the same frame.
func (w *World) ResolvePushes() {
	_, prec := w.Player()
	dir := prec.Player.MoveDir
	if dir == DirNone {
		return
	}
	ts := w.opts.TileSize
	dx, dy := dir.Delta()
	bx, by := dir.Opposite().Delta()

	for _, e := range w.arena.Query(KindTile, TagImmovable) {
		rec, _ := w.arena.Get(e)
		if prec.Pos.Within(rec.Pos, ts) {
			prec.Pos = prec.Pos.Add(bx*ts, by*ts)
		}
	}

	for _, e := range w.arena.Query(KindTile, TagMovable) {
		rec, _ := w.arena.Get(e)
		if !prec.Pos.Within(rec.Pos, ts) {
			continue
		}
		dest := rec.Pos.Add(dx*ts, dy*ts)
		if w.opts.PushMode == PushChecked && w.tileAt(dest, e) {
			prec.Pos = prec.Pos.Add(bx*ts, by*ts)
			w.stats.Blocked++
			continue
		}
		rec.Pos = dest
		w.stats.Pushes++
	}
}

// tileAt reports whether any tile other than skip overlaps pos.
func (w *World) tileAt(pos Position, skip Entity) bool {
	found := false
	w.arena.Each(KindTile, func(e Entity, r *Record) {
		if e != skip && r.Pos.Within(pos, w.opts.TileSize) {
			found = true
		}
	})
	return found
}
