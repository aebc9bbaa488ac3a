package game

import "github.com/samdwyer/daydream/internal/movement"

// FrameRate is the number of ticks per second. One movement step, one blink
// cycle of the continue indicator and the opening fade all last FrameRate ticks.
const FrameRate = movement.Frames

// Config holds game configuration options.
type Config struct {
	// SkipOpening starts in moving mode even when the scene has an opening fade.
	SkipOpening bool
	// SessionID tags logs and spans of this run. Empty means a fresh uuid.
	SessionID string
}
