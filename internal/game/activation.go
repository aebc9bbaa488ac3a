package game

import (
	"github.com/samdwyer/daydream/internal/dialogue"
	"github.com/samdwyer/daydream/internal/entity"
	"github.com/samdwyer/daydream/internal/gamedata"
)

// ActivationKind says how the game reacts to an activated object.
type ActivationKind int

const (
	// ActivationNone - nothing to show
	ActivationNone ActivationKind = iota
	// ActivationDialogue - open the text box at once
	ActivationDialogue
	// ActivationWaiting - play the cue and hold the script until the next press
	ActivationWaiting
)

// String returns a human-readable activation kind.
func (k ActivationKind) String() string {
	switch k {
	case ActivationNone:
		return "none"
	case ActivationDialogue:
		return "dialogue"
	case ActivationWaiting:
		return "waiting"
	default:
		return "unknown"
	}
}

// Cue is a named sound event for the audio collaborator.
type Cue string

// CueText is emitted for every revealed character.
const CueText Cue = "text"

// Activation is the result of interacting with an object.
type Activation struct {
	Kind   ActivationKind
	Source *entity.Interactable
	Script dialogue.Script
	Cue    Cue
}

// Activate decides how it reacts to the player. The reaction depends on the
// object's kind, not on which object it is.
func Activate(it *entity.Interactable) Activation {
	if it == nil || !it.HasDialogue() {
		return Activation{Kind: ActivationNone, Source: it}
	}

	act := Activation{
		Kind:   ActivationDialogue,
		Source: it,
		Script: it.Script,
		Cue:    Cue(it.Cue),
	}
	switch it.Kind {
	case gamedata.KindLockedDoor:
		act.Kind = ActivationWaiting
	case gamedata.KindPlain:
	}
	return act
}
