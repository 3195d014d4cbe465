package world

// Kind tags an entity variant. The movement-resolution protocol switches
// on this tag instead of spreading the rules over a type hierarchy, so the
// whole protocol lives in one place (move.go).
type Kind int

const (
	KindWall Kind = iota
	KindBox
	KindStickyBox
	KindMonster
	KindPlayer
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBox:
		return "box"
	case KindStickyBox:
		return "sticky-box"
	case KindMonster:
		return "monster"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Entity is a single occupant of the grid. All variants share identity,
// position, an opaque icon reference and a liveness flag; the per-variant
// fields below are only meaningful for the kind that owns them.
type Entity struct {
	kind  Kind
	icon  string // opaque asset reference, passed through to rendering
	x, y  int
	alive bool

	// Monster state: heading, ensnarement and the delay throttle that
	// slows it down relative to other entities.
	dx, dy     int
	ensnared   bool
	delay      int
	delayCount int

	// Player state: single-slot intent mailbox, last write wins.
	intent Direction
}

// NewWall creates an immovable blocker.
func NewWall(icon string, x, y int) *Entity {
	return &Entity{kind: KindWall, icon: icon, x: x, y: y, alive: true}
}

// NewBox creates a pushable box.
func NewBox(icon string, x, y int) *Entity {
	return &Entity{kind: KindBox, icon: icon, x: x, y: y, alive: true}
}

// NewStickyBox creates a pushable box that ensnares monsters when pushed
// onto them.
func NewStickyBox(icon string, x, y int) *Entity {
	return &Entity{kind: KindStickyBox, icon: icon, x: x, y: y, alive: true}
}

// NewMonster creates a roaming monster with the given delay factor and
// heading. A delay below 1 is clamped to 1 (acts every tick); a zero
// heading defaults to the south-east diagonal.
func NewMonster(icon string, x, y, delay, dx, dy int) *Entity {
	if delay < 1 {
		delay = 1
	}
	if dx == 0 && dy == 0 {
		dx, dy = 1, 1
	}
	return &Entity{kind: KindMonster, icon: icon, x: x, y: y, alive: true, delay: delay, dx: dx, dy: dy}
}

// NewPlayer creates the controlled player entity.
func NewPlayer(icon string, x, y int) *Entity {
	return &Entity{kind: KindPlayer, icon: icon, x: x, y: y, alive: true}
}

// Kind returns the entity's variant tag.
func (e *Entity) Kind() Kind {
	return e.kind
}

// Icon returns the opaque icon reference attached at construction.
// The simulation never interprets it; it exists for the renderer.
func (e *Entity) Icon() string {
	return e.icon
}

// Position returns the entity's current grid coordinates.
func (e *Entity) Position() (x, y int) {
	return e.x, e.y
}

// Alive reports whether the entity is still on the grid.
func (e *Entity) Alive() bool {
	return e.alive
}

// Ensnared reports whether a monster is held by a sticky box.
// Always false for other kinds.
func (e *Entity) Ensnared() bool {
	return e.ensnared
}

// Heading returns a monster's current heading. Zero for other kinds.
func (e *Entity) Heading() (dx, dy int) {
	return e.dx, e.dy
}

// setPosition moves the entity's stored coordinates. Only the grid's
// resolution protocol may call this, keeping the occupancy view and the
// entity's own position in agreement.
func (e *Entity) setPosition(x, y int) {
	e.x, e.y = x, y
}

// tickDelay advances the delay counter by one tick and reports whether it
// wrapped to zero, i.e. whether the entity gets to act this tick.
func (e *Entity) tickDelay() bool {
	e.delayCount = (e.delayCount + 1) % e.delay
	return e.delayCount == 0
}
