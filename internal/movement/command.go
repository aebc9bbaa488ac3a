// Package movement animates actors one cell at a time.
//
// A Command spreads a single step over Frames ticks. The target cell is
// checked once, on the first tick; a blocked command never moves its actor
// but still runs for the full Frames ticks before it is done. Each actor has
// at most one command in flight; different actors step side by side.
package movement

import "github.com/samdwyer/daydream/internal/world"

// Frames is the number of ticks one step takes. It matches the game frame
// rate, so a step lasts one second.
const Frames = 20

// Mover is anything a command can walk across the grid.
type Mover interface {
	Cell() world.Cell
	SetPosition(x, y float64)
	Face(d world.Direction)
}

// Terrain answers the collision questions for a target cell.
type Terrain interface {
	IsWalkable(x, y int) bool
	Occupied(c world.Cell) bool
}

// Phase is the lifecycle stage of a command.
type Phase int

const (
	// PhasePending - created, not yet advanced
	PhasePending Phase = iota
	// PhaseAnimating - between the first and the last frame
	PhaseAnimating
	// PhaseDone - all frames consumed
	PhaseDone
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseAnimating:
		return "animating"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Block explains why a command did not move its actor.
type Block int

const (
	BlockNone Block = iota
	BlockWall
	BlockOccupied
)

// String returns a human-readable block reason.
func (b Block) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockWall:
		return "wall"
	case BlockOccupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// Command is one animated step of one actor.
type Command struct {
	actor  Mover
	dir    world.Direction
	start  world.Cell
	target world.Cell
	frame  int
	block  Block
	// checked is set once the first-frame collision test has run
	checked bool
}

// NewCommand creates a step for actor in direction dir. The actor turns to
// face dir immediately.
func NewCommand(actor Mover, dir world.Direction) *Command {
	start := actor.Cell()
	actor.Face(dir)
	return &Command{
		actor:  actor,
		dir:    dir,
		start:  start,
		target: start.Step(dir),
	}
}

// Advance runs one frame of the command.
func (c *Command) Advance(terrain Terrain) {
	if c.Done() {
		return
	}
	c.frame++

	if c.frame == 1 {
		switch {
		case !terrain.IsWalkable(c.target.X, c.target.Y):
			c.block = BlockWall
		case terrain.Occupied(c.target):
			c.block = BlockOccupied
		}
		c.checked = true
	}
	// A blocked step still runs out its frames (DESIGN.md D1).
	if c.block != BlockNone {
		return
	}

	if c.frame >= Frames {
		c.actor.SetPosition(float64(c.target.X), float64(c.target.Y))
		return
	}
	dx, dy := c.dir.Delta()
	t := float64(c.frame) / Frames
	c.actor.SetPosition(float64(c.start.X)+float64(dx)*t, float64(c.start.Y)+float64(dy)*t)
}

// Claims reports whether the command is walking through cell: its start or
// its target, from the frame it passes the check until it is done.
func (c *Command) Claims(cell world.Cell) bool {
	if !c.checked || c.block != BlockNone || c.Done() {
		return false
	}
	return cell == c.start || cell == c.target
}

// Actor returns the mover the command animates.
func (c *Command) Actor() Mover {
	return c.actor
}

// Done reports whether every frame has been consumed.
func (c *Command) Done() bool {
	return c.frame >= Frames
}

// Phase returns the lifecycle stage.
func (c *Command) Phase() Phase {
	switch {
	case c.frame == 0:
		return PhasePending
	case c.frame < Frames:
		return PhaseAnimating
	default:
		return PhaseDone
	}
}

// Blocked returns why the step was refused, or BlockNone.
func (c *Command) Blocked() Block {
	return c.block
}

// Frame returns the number of frames run so far.
func (c *Command) Frame() int {
	return c.frame
}

// Direction returns the direction of the step.
func (c *Command) Direction() world.Direction {
	return c.dir
}

// Start returns the cell the actor stood on when the command was created.
func (c *Command) Start() world.Cell {
	return c.start
}

// Target returns the cell the command tries to reach.
func (c *Command) Target() world.Cell {
	return c.target
}
