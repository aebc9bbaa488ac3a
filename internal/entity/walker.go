package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daydream/internal/gamedata"
	"github.com/samdwyer/daydream/internal/world"
)

// Walker is a non-player actor that follows a fixed route, one step for
// every step the player starts.
type Walker struct {
	*Actor
	Def   *gamedata.WalkerDef
	ID    string
	Route []world.Direction
	next  int
}

// NewWalkerFromDef creates a walker from a data-driven definition.
func NewWalkerFromDef(def *gamedata.WalkerDef) (*Walker, error) {
	route, err := def.Route()
	if err != nil {
		return nil, fmt.Errorf("walker %q: %w", def.ID, err)
	}
	return &Walker{
		Actor: NewActor(def.Name, def.X, def.Y, def.FacingDirection(), def.GlyphRune()),
		Def:   def,
		ID:    def.ID,
		Route: route,
	}, nil
}

// NextStep returns the next direction on the route and moves past it.
// The route wraps around. A walker without a route never steps.
func (w *Walker) NextStep() (world.Direction, bool) {
	if len(w.Route) == 0 {
		return 0, false
	}
	d := w.Route[w.next]
	w.next = (w.next + 1) % len(w.Route)
	return d, true
}

// Color returns the tcell color for this walker.
func (w *Walker) Color() tcell.Color {
	if w.Def != nil {
		return w.Def.TCellColor()
	}
	return tcell.ColorWhite
}
