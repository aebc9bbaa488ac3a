// Package entity provides the things that live on the map: actors that move
// and interactables that talk.
package entity

import (
	"math"

	"github.com/samdwyer/daydream/internal/world"
)

// Actor is a character on the map. Its position is fractional while a step
// is being animated and integral at rest.
type Actor struct {
	Name   string
	X, Y   float64
	Facing world.Direction
	Symbol rune
}

// NewActor creates an actor standing on cell (x, y).
func NewActor(name string, x, y int, facing world.Direction, symbol rune) *Actor {
	return &Actor{
		Name:   name,
		X:      float64(x),
		Y:      float64(y),
		Facing: facing,
		Symbol: symbol,
	}
}

// Cell returns the cell the actor is standing on, rounding mid-step positions.
func (a *Actor) Cell() world.Cell {
	return world.Cell{X: int(math.Round(a.X)), Y: int(math.Round(a.Y))}
}

// SetPosition moves the actor.
func (a *Actor) SetPosition(x, y float64) {
	a.X = x
	a.Y = y
}

// Face turns the actor.
func (a *Actor) Face(d world.Direction) {
	a.Facing = d
}

// FacingCell returns the neighbouring cell the actor looks at.
func (a *Actor) FacingCell() world.Cell {
	return a.Cell().Step(a.Facing)
}

// AtRest reports whether the actor stands exactly on a cell.
func (a *Actor) AtRest() bool {
	return a.X == math.Trunc(a.X) && a.Y == math.Trunc(a.Y)
}
