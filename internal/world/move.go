package world

// The movement-resolution protocol. Every rule about entering an occupied
// cell lives in this file: requestMove is the polymorphic "please vacate"
// request, stepPlayer and stepMonster are the two self-propelled variants'
// per-tick behaviors. Movement failures are boolean refusals, never errors.

// neighborOffsets covers the full 8-neighborhood of a cell.
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// step dispatches an entity's per-tick behavior. Walls and boxes are
// inert; they only ever move when pushed through requestMove.
func (g *Grid) step(e *Entity) {
	switch e.kind {
	case KindPlayer:
		g.stepPlayer(e)
	case KindMonster:
		g.stepMonster(e)
	}
}

// requestMove asks target to vacate its cell by relocating one step in
// (dx, dy) on behalf of requester. It returns true iff the target's cell
// has been vacated (or, for a sticky box capture, occupied as intended)
// and the requester may proceed.
//
// The recursion through box chains is depth-first and bounded by the
// number of entities on the grid: each hop advances one cell in a fixed
// direction, so a chain can never revisit an entity.
func (g *Grid) requestMove(target, requester *Entity, dx, dy int) bool {
	switch target.kind {
	case KindStickyBox:
		return g.moveStickyBox(target, dx, dy)
	case KindBox:
		return g.moveBox(target, dx, dy)
	case KindMonster:
		// Nobody pushes a monster around; it only moves itself.
		return requester == target
	default:
		// Walls never move, and nothing in the design pushes the player.
		return false
	}
}

// moveBox relocates a box one step, pushing any box ahead of it first.
// The chain resolves atomically: either the whole line advances one cell
// or nothing moves.
func (g *Grid) moveBox(b *Entity, dx, dy int) bool {
	nx, ny := b.x+dx, b.y+dy

	if !g.InBounds(nx, ny) {
		return false
	}

	occupant := g.OccupantAt(nx, ny)
	if occupant == nil {
		b.setPosition(nx, ny)
		return true
	}

	// Only box-on-box pushes cascade; any other occupant blocks.
	if occupant.kind != KindBox && occupant.kind != KindStickyBox {
		return false
	}

	if g.requestMove(occupant, b, dx, dy) {
		b.setPosition(nx, ny)
		return true
	}
	return false
}

// moveStickyBox relocates a sticky box one step. If the destination holds
// a monster, the box skips the normal occupancy rules, lands on the
// monster's exact cell and ensnares it; the two entities then share the
// cell (see OccupantAt). Otherwise it behaves like a plain box.
func (g *Grid) moveStickyBox(s *Entity, dx, dy int) bool {
	nx, ny := s.x+dx, s.y+dy

	if occupant := g.OccupantAt(nx, ny); occupant != nil && occupant.kind == KindMonster {
		s.setPosition(nx, ny)
		occupant.ensnared = true
		return true
	}
	return g.moveBox(s, dx, dy)
}

// stepPlayer consumes the buffered intent and attempts the move. A blocked
// move is absorbed silently; the intent is spent either way.
func (g *Grid) stepPlayer(p *Entity) {
	intent := p.intent
	p.intent = DirNone
	if intent == DirNone {
		return
	}

	dx, dy := intent.Delta()
	nx, ny := p.x+dx, p.y+dy
	if !g.InBounds(nx, ny) {
		return
	}

	occupant := g.OccupantAt(nx, ny)
	switch {
	case occupant == nil:
		p.setPosition(nx, ny)
	case occupant.kind == KindMonster:
		// Walking into a monster is fatal; no move happens.
		g.kill(p)
	case occupant.kind == KindBox || occupant.kind == KindStickyBox:
		if g.requestMove(occupant, p, dx, dy) {
			p.setPosition(nx, ny)
		}
	}
}

// stepMonster runs the monster state machine for one tick:
//
//  1. Death by encirclement is checked before anything else, regardless
//     of the delay counter.
//  2. The delay counter throttles movement attempts, except that an
//     ensnared monster attempts every tick (and the attempt is a no-op,
//     there is no escape from a sticky box).
//  3. An active monster bounces off occupied cells and grid edges,
//     reversing each blocked axis without relocating that tick; catching
//     the player takes priority over the bounce.
func (g *Grid) stepMonster(m *Entity) {
	if g.encircled(m) {
		g.kill(m)
		return
	}

	if !m.tickDelay() && !m.ensnared {
		return
	}
	if m.ensnared {
		return
	}

	nx, ny := m.x+m.dx, m.y+m.dy
	occupant := g.OccupantAt(nx, ny)

	if occupant != nil && occupant.kind == KindPlayer {
		g.kill(occupant)
	}

	bounced := false
	if !g.InBoundsX(nx) || occupant != nil {
		m.dx = -m.dx
		bounced = true
	}
	if !g.InBoundsY(ny) || occupant != nil {
		m.dy = -m.dy
		bounced = true
	}
	if !bounced {
		m.setPosition(nx, ny)
	}
}

// encircled reports whether all 8 neighboring cells of a monster are
// occupied. Off-grid neighbors count as open, matching the original rule
// that only entities (not edges) smother a monster.
func (g *Grid) encircled(m *Entity) bool {
	for _, off := range neighborOffsets {
		if g.OccupantAt(m.x+off[0], m.y+off[1]) == nil {
			return false
		}
	}
	return true
}
