package world

import (
	"errors"
	"fmt"
)

// ErrNotOnGrid is returned by Remove when the entity is not a member.
var ErrNotOnGrid = errors.New("world: entity not on grid")

// Grid is the bounded coordinate space and the single source of truth for
// "who is where". It owns the ordered collection of live entities;
// insertion order is the iteration order for ticking and the tiebreak
// order for occupant lookup, which keeps the simulation deterministic.
type Grid struct {
	width  int
	height int

	entities []*Entity
	player   *Entity
}

// New creates an empty grid. Dimensions must be positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world: invalid grid dimensions %dx%d", width, height)
	}
	return &Grid{width: width, height: height}, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) falls within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return g.InBoundsX(x) && g.InBoundsY(y)
}

// InBoundsX reports whether x falls within the grid width.
func (g *Grid) InBoundsX(x int) bool {
	return x >= 0 && x < g.width
}

// InBoundsY reports whether y falls within the grid height.
func (g *Grid) InBoundsY(y int) bool {
	return y >= 0 && y < g.height
}

// OccupantAt returns the first entity at (x, y) in insertion order, or nil
// if the cell is empty. A cell normally holds at most one entity; the one
// documented exception is a sticky box sharing a cell with the monster it
// ensnared, in which case the earlier-inserted entity wins here and
// OccupantsAt exposes both.
func (g *Grid) OccupantAt(x, y int) *Entity {
	for _, e := range g.entities {
		if e.x == x && e.y == y {
			return e
		}
	}
	return nil
}

// OccupantsAt returns every entity at (x, y) in insertion order.
func (g *Grid) OccupantsAt(x, y int) []*Entity {
	var occupants []*Entity
	for _, e := range g.entities {
		if e.x == x && e.y == y {
			occupants = append(occupants, e)
		}
	}
	return occupants
}

// Add appends an entity to the live set.
func (g *Grid) Add(e *Entity) {
	g.entities = append(g.entities, e)
}

// Remove deletes an entity from the live set. Removing a non-member
// returns ErrNotOnGrid and leaves the set untouched.
func (g *Grid) Remove(e *Entity) error {
	for i, member := range g.entities {
		if member == e {
			g.entities = append(g.entities[:i], g.entities[i+1:]...)
			return nil
		}
	}
	return ErrNotOnGrid
}

// SetPlayer designates the controlled player and adds it to the live set.
func (g *Grid) SetPlayer(p *Entity) {
	g.player = p
	g.Add(p)
}

// RemovePlayer removes the designated player from the grid.
func (g *Grid) RemovePlayer() {
	if g.player == nil {
		return
	}
	//nolint:errcheck // the designated player is always a member
	g.Remove(g.player)
	g.player = nil
}

// Player returns the designated player, or nil once it has been killed.
func (g *Grid) Player() *Entity {
	return g.player
}

// PlayerIntent buffers a movement intent for the player. The mailbox holds
// a single value and each new intent overwrites the previous one, so only
// the most recent input before the next tick matters.
func (g *Grid) PlayerIntent(d Direction) {
	if g.player != nil {
		g.player.intent = d
	}
}

// Entities returns a copy of the live entity list in insertion order.
func (g *Grid) Entities() []*Entity {
	out := make([]*Entity, len(g.entities))
	copy(out, g.entities)
	return out
}

// AdvanceTick steps every live entity exactly once, in insertion order.
// The list is snapshotted first so that kills during the pass can mutate
// the live set without skipping or repeating anyone.
func (g *Grid) AdvanceTick() {
	snapshot := make([]*Entity, len(g.entities))
	copy(snapshot, g.entities)

	for _, e := range snapshot {
		if !e.alive {
			continue
		}
		g.step(e)
	}
}

// kill removes an entity from the grid and clears its liveness. Used for
// the player being caught and for monster death by encirclement.
func (g *Grid) kill(e *Entity) {
	e.alive = false
	//nolint:errcheck // killed entities are always live members
	g.Remove(e)
	if e == g.player {
		g.player = nil
	}
}
