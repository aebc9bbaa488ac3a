package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daydream/internal/dialogue"
	"github.com/samdwyer/daydream/internal/world"
)

// ErrInvalidScene wraps every scene validation failure.
var ErrInvalidScene = errors.New("invalid scene")

// InteractableKind selects how an interactable reacts when activated.
type InteractableKind string

const (
	// KindPlain opens its dialogue straight away.
	KindPlain InteractableKind = "plain"
	// KindLockedDoor plays its cue first and waits for another press
	// before showing the dialogue.
	KindLockedDoor InteractableKind = "locked_door"
)

// Point is a cell position in scene JSON.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell converts the point to a world cell.
func (p Point) Cell() world.Cell {
	return world.Cell{X: p.X, Y: p.Y}
}

// ActorDef describes how the player character is drawn.
type ActorDef struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"` // Hex color code (e.g., "#F4C542")
}

// InteractableDef defines a world object loaded from JSON.
type InteractableDef struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	X     int              `json:"x"`
	Y     int              `json:"y"`
	Kind  InteractableKind `json:"kind"`
	Glyph string           `json:"glyph"`
	Color string           `json:"color"`
	Cue   string           `json:"cue,omitempty"` // Sound cue played on activation
	Pages [][]string       `json:"pages"`
}

// WalkerDef defines a non-player actor that takes one scripted step each
// time the player starts a step.
type WalkerDef struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Facing string   `json:"facing"`
	Glyph  string   `json:"glyph"`
	Color  string   `json:"color"`
	Steps  [][2]int `json:"steps"` // Unit deltas, repeated in order
}

// ScriptDef is a dialogue payload that is not attached to an object.
type ScriptDef struct {
	Pages [][]string `json:"pages"`
}

// SceneDef defines one playable room.
type SceneDef struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Layout        []string          `json:"layout"`
	Start         Point             `json:"start"`
	Facing        string            `json:"facing"`
	Player        ActorDef          `json:"player"`
	Interactables []InteractableDef `json:"interactables"`
	Walkers       []WalkerDef       `json:"walkers,omitempty"`
	Opening       *ScriptDef        `json:"opening,omitempty"` // Played after the opening fade
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *InteractableDef) GlyphRune() rune {
	return firstRune(d.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (d *InteractableDef) TCellColor() tcell.Color {
	return colorOr(d.Color, tcell.ColorWhite)
}

// Script returns the dialogue payload.
func (d *InteractableDef) Script() dialogue.Script {
	return dialogue.Script(d.Pages)
}

// Cell returns the interactable's position.
func (d *InteractableDef) Cell() world.Cell {
	return world.Cell{X: d.X, Y: d.Y}
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *WalkerDef) GlyphRune() rune {
	return firstRune(d.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (d *WalkerDef) TCellColor() tcell.Color {
	return colorOr(d.Color, tcell.ColorWhite)
}

// Cell returns the walker's start position.
func (d *WalkerDef) Cell() world.Cell {
	return world.Cell{X: d.X, Y: d.Y}
}

// FacingDirection parses the start facing. Unknown or empty values face south.
func (d *WalkerDef) FacingDirection() world.Direction {
	return parseFacing(d.Facing)
}

// Route converts the step deltas into directions.
func (d *WalkerDef) Route() ([]world.Direction, error) {
	route := make([]world.Direction, 0, len(d.Steps))
	for i, step := range d.Steps {
		dir, ok := world.DirectionFromDelta(step[0], step[1])
		if !ok {
			return nil, fmt.Errorf("step %d (%d,%d) is not a unit move", i, step[0], step[1])
		}
		route = append(route, dir)
	}
	return route, nil
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ActorDef) GlyphRune() rune {
	if d.Glyph == "" {
		return '@'
	}
	return firstRune(d.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (d *ActorDef) TCellColor() tcell.Color {
	return colorOr(d.Color, tcell.ColorYellow)
}

// Script returns the opening payload, or nil when the scene has none.
func (d *ScriptDef) Script() dialogue.Script {
	if d == nil {
		return nil
	}
	return dialogue.Script(d.Pages)
}

// FacingDirection parses the start facing. Unknown or empty values face south.
func (s *SceneDef) FacingDirection() world.Direction {
	return parseFacing(s.Facing)
}

func parseFacing(name string) world.Direction {
	for _, d := range world.Directions {
		if d.String() == name {
			return d
		}
	}
	return world.South
}

// BuildMap parses the layout into a map.
func (s *SceneDef) BuildMap() (*world.Map, error) {
	m, err := world.ParseMap(s.Layout)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w: %w", s.ID, ErrInvalidScene, err)
	}
	return m, nil
}

// Validate checks the scene is playable. The layout must be rectangular and
// the start must be floor. Interactables need distinct in-bounds cells, a
// known kind and a well-formed script. Walkers start on free floor and only
// take unit steps.
func (s *SceneDef) Validate() error {
	m, err := s.BuildMap()
	if err != nil {
		return err
	}
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("scene %q: %w: %s", s.ID, ErrInvalidScene, fmt.Sprintf(format, args...))
	}

	if s.ID == "" {
		return invalid("missing id")
	}
	if !m.IsWalkable(s.Start.X, s.Start.Y) {
		return invalid("start (%d,%d) is not floor", s.Start.X, s.Start.Y)
	}

	seen := make(map[world.Cell]string, len(s.Interactables))
	for i := range s.Interactables {
		def := &s.Interactables[i]
		if !m.InBounds(def.X, def.Y) {
			return invalid("interactable %q at (%d,%d) is outside the map", def.ID, def.X, def.Y)
		}
		if def.Cell() == s.Start.Cell() {
			return invalid("interactable %q sits on the start cell", def.ID)
		}
		if other, ok := seen[def.Cell()]; ok {
			return invalid("interactables %q and %q share a cell", other, def.ID)
		}
		seen[def.Cell()] = def.ID

		switch def.Kind {
		case KindPlain, KindLockedDoor:
		default:
			return invalid("interactable %q has unknown kind %q", def.ID, def.Kind)
		}
		if err := def.Script().Validate(); err != nil {
			return invalid("interactable %q: %v", def.ID, err)
		}
	}

	for i := range s.Walkers {
		def := &s.Walkers[i]
		if !m.IsWalkable(def.X, def.Y) {
			return invalid("walker %q at (%d,%d) is not on floor", def.ID, def.X, def.Y)
		}
		if def.Cell() == s.Start.Cell() {
			return invalid("walker %q sits on the start cell", def.ID)
		}
		if other, ok := seen[def.Cell()]; ok {
			return invalid("walker %q shares a cell with %q", def.ID, other)
		}
		seen[def.Cell()] = def.ID

		if _, err := def.Route(); err != nil {
			return invalid("walker %q: %v", def.ID, err)
		}
	}

	if s.Opening != nil {
		if err := s.Opening.Script().Validate(); err != nil {
			return invalid("opening: %v", err)
		}
	}
	return nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
