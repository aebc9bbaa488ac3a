// Package game provides the main game loop and mode dispatch.
package game

// Mode gates which input handler is live.
type Mode int

const (
	// ModeMoving - directional keys walk, interact activates the faced object
	ModeMoving Mode = iota
	// ModeDialogue - the text box is open, interact advances it
	ModeDialogue
	// ModeWaiting - an object has been noticed, interact shows its text
	ModeWaiting
	// ModeTransitionFadeout - timed fade from black, no input accepted
	ModeTransitionFadeout
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMoving:
		return "moving"
	case ModeDialogue:
		return "dialogue"
	case ModeWaiting:
		return "waiting"
	case ModeTransitionFadeout:
		return "transition_fadeout"
	default:
		return "unknown"
	}
}
