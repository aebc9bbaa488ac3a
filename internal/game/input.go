package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daydream/internal/world"
)

// Input is one player command, already decoupled from the keyboard.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputUp
	InputDown
	// InputInteract activates, acknowledges or advances depending on mode.
	InputInteract
	InputQuit
)

// String returns a human-readable input name.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputInteract:
		return "interact"
	case InputQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Direction returns the step direction of a directional input.
func (in Input) Direction() (world.Direction, bool) {
	switch in {
	case InputLeft:
		return world.West, true
	case InputRight:
		return world.East, true
	case InputUp:
		return world.North, true
	case InputDown:
		return world.South, true
	default:
		return 0, false
	}
}

// KeyToInput maps a terminal key event to an input.
// Arrows and WASD walk; space, enter and z interact; escape, ctrl-c and q quit.
func KeyToInput(ev *tcell.EventKey) Input {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return InputQuit
	case tcell.KeyUp:
		return InputUp
	case tcell.KeyDown:
		return InputDown
	case tcell.KeyLeft:
		return InputLeft
	case tcell.KeyRight:
		return InputRight
	case tcell.KeyEnter:
		return InputInteract
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return InputUp
		case 'a', 'A':
			return InputLeft
		case 's', 'S':
			return InputDown
		case 'd', 'D':
			return InputRight
		case ' ', 'z', 'Z':
			return InputInteract
		case 'q', 'Q':
			return InputQuit
		}
	}
	return InputNone
}
