package world

// Direction is the way an actor faces.
type Direction int

const (
	East Direction = iota
	North
	West
	South
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{East, North, West, South}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case North:
		return 0, -1
	case West:
		return -1, 0
	case South:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// DirectionFromDelta returns the direction matching a unit delta.
// ok is false for anything that is not one of the four unit steps.
func DirectionFromDelta(dx, dy int) (d Direction, ok bool) {
	switch {
	case dx == 1 && dy == 0:
		return East, true
	case dx == 0 && dy == -1:
		return North, true
	case dx == -1 && dy == 0:
		return West, true
	case dx == 0 && dy == 1:
		return South, true
	default:
		return 0, false
	}
}

// Cell is an integral grid coordinate.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
