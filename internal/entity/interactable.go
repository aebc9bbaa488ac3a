package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daydream/internal/dialogue"
	"github.com/samdwyer/daydream/internal/gamedata"
	"github.com/samdwyer/daydream/internal/world"
)

// Interactable is a static object the player can face and activate.
type Interactable struct {
	Def    *gamedata.InteractableDef
	ID     string
	Name   string
	Cell   world.Cell
	Kind   gamedata.InteractableKind
	Symbol rune
	Cue    string
	Script dialogue.Script
}

// NewInteractableFromDef creates an interactable from a data-driven definition.
func NewInteractableFromDef(def *gamedata.InteractableDef) *Interactable {
	return &Interactable{
		Def:    def,
		ID:     def.ID,
		Name:   def.Name,
		Cell:   def.Cell(),
		Kind:   def.Kind,
		Symbol: def.GlyphRune(),
		Cue:    def.Cue,
		Script: def.Script(),
	}
}

// HasDialogue reports whether activating the object shows any text.
func (i *Interactable) HasDialogue() bool {
	return i.Script.PageCount() > 0
}

// Color returns the tcell color for this object.
func (i *Interactable) Color() tcell.Color {
	if i.Def != nil {
		return i.Def.TCellColor()
	}
	return tcell.ColorWhite
}

// Interactables is the object list of the current scene.
type Interactables []*Interactable

// At returns the object on cell c, or nil.
func (l Interactables) At(c world.Cell) *Interactable {
	for _, it := range l {
		if it.Cell == c {
			return it
		}
	}
	return nil
}
