// Package world implements the boxworld simulation: a bounded tile grid
// shared by a player, pushable boxes, sticky boxes, walls and roaming
// monsters, with a recursive movement-resolution protocol deciding what
// happens when an entity tries to enter an occupied cell.
package world

// Direction is one of the eight grid directions, or none.
// The y-axis grows southward, matching screen coordinates.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
)

var deltas = map[Direction][2]int{
	DirNone:      {0, 0},
	DirNorth:     {0, -1},
	DirNorthEast: {1, -1},
	DirEast:      {1, 0},
	DirSouthEast: {1, 1},
	DirSouth:     {0, 1},
	DirSouthWest: {-1, 1},
	DirWest:      {-1, 0},
	DirNorthWest: {-1, -1},
}

// Delta returns the unit step (dx, dy) for the direction.
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d]
	return v[0], v[1]
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirNorth:
		return "north"
	case DirNorthEast:
		return "north-east"
	case DirEast:
		return "east"
	case DirSouthEast:
		return "south-east"
	case DirSouth:
		return "south"
	case DirSouthWest:
		return "south-west"
	case DirWest:
		return "west"
	case DirNorthWest:
		return "north-west"
	default:
		return "unknown"
	}
}
