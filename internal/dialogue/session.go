package dialogue

import "github.com/rivo/uniseg"

// State is the typewriter state of a session.
type State int

const (
	// StateIdle means no script is showing.
	StateIdle State = iota
	// StateRevealing means the current line is still being typed out.
	StateRevealing
	// StateLineComplete means the whole line is shown and the box waits for input.
	StateLineComplete
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRevealing:
		return "revealing"
	case StateLineComplete:
		return "line_complete"
	default:
		return "unknown"
	}
}

// Outcome describes what an Advance call did.
type Outcome int

const (
	// OutcomeNone means the input had no effect.
	OutcomeNone Outcome = iota
	// OutcomeSkipped means the rest of the line was revealed at once.
	OutcomeSkipped
	// OutcomeNextLine means the session moved to the next line of the page.
	OutcomeNextLine
	// OutcomeNextPage means the session moved to the first line of the next page.
	OutcomeNextPage
	// OutcomeEnded means the last line was dismissed and the session is idle.
	OutcomeEnded
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNextLine:
		return "next_line"
	case OutcomeNextPage:
		return "next_page"
	case OutcomeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session is the typewriter state machine for one script at a time.
//
// The current line is held as grapheme clusters and the reveal cursor counts
// how many of them are shown, so wide or combined characters appear whole.
type Session struct {
	script      Script
	page        int
	line        int
	graphemes   []string
	cursor      int
	blink       int
	blinkPeriod int
	state       State
}

// NewSession creates an idle session. blinkPeriod is the length in ticks of
// one on/off cycle of the continue indicator.
func NewSession(blinkPeriod int) *Session {
	if blinkPeriod < 2 {
		blinkPeriod = 2
	}
	return &Session{blinkPeriod: blinkPeriod}
}

// Start shows script from its first line. An empty script leaves the session idle.
func (s *Session) Start(script Script) {
	s.reset()
	if script.PageCount() == 0 {
		return
	}
	s.script = script
	s.loadLine()
}

// End drops the active script.
func (s *Session) End() {
	s.reset()
}

func (s *Session) reset() {
	s.script = nil
	s.page = 0
	s.line = 0
	s.graphemes = nil
	s.cursor = 0
	s.blink = 0
	s.state = StateIdle
}

// loadLine splits the current line into grapheme clusters and starts revealing it.
func (s *Session) loadLine() {
	s.graphemes = s.graphemes[:0]
	page := s.script[s.page]
	if s.line < len(page) {
		gr := uniseg.NewGraphemes(page[s.line])
		for gr.Next() {
			s.graphemes = append(s.graphemes, gr.Str())
		}
	}
	s.cursor = 0
	s.blink = 0
	s.state = StateRevealing
}

// Tick advances the session by one frame and reports whether a character was revealed.
func (s *Session) Tick() bool {
	switch s.state {
	case StateRevealing:
		revealed := false
		if s.cursor < len(s.graphemes) {
			s.cursor++
			revealed = true
		}
		if s.cursor >= len(s.graphemes) {
			s.state = StateLineComplete
			s.blink = 0
		}
		return revealed
	case StateLineComplete:
		s.blink++
		return false
	case StateIdle:
		return false
	default:
		return false
	}
}

// Advance applies one press of the advance key.
func (s *Session) Advance() Outcome {
	switch s.state {
	case StateRevealing:
		if s.cursor < len(s.graphemes) {
			s.cursor = len(s.graphemes)
			return OutcomeSkipped
		}
		return OutcomeNone
	case StateLineComplete:
		if s.line+1 < len(s.script[s.page]) {
			s.line++
			s.loadLine()
			return OutcomeNextLine
		}
		if s.page+1 < len(s.script) {
			s.page++
			s.line = 0
			s.loadLine()
			return OutcomeNextPage
		}
		s.reset()
		return OutcomeEnded
	case StateIdle:
		return OutcomeNone
	default:
		return OutcomeNone
	}
}

// Active reports whether a script is showing.
func (s *Session) Active() bool {
	return s.state != StateIdle
}

// State returns the current typewriter state.
func (s *Session) State() State {
	return s.state
}

// Script returns the active script, or nil when idle.
func (s *Session) Script() Script {
	return s.script
}

// Page returns the index of the page being shown.
func (s *Session) Page() int {
	return s.page
}

// Line returns the index of the line being revealed within the page.
func (s *Session) Line() int {
	return s.line
}

// Cursor returns how many characters of the current line are visible.
func (s *Session) Cursor() int {
	return s.cursor
}

// LineLength returns the current line's length in characters.
func (s *Session) LineLength() int {
	return len(s.graphemes)
}

// Current returns the visible prefix of the current line.
func (s *Session) Current() string {
	if s.state == StateIdle || s.line >= len(s.script[s.page]) {
		return ""
	}
	n := 0
	for _, g := range s.graphemes[:s.cursor] {
		n += len(g)
	}
	return s.script[s.page][s.line][:n]
}

// Completed returns the lines of the current page above the one being revealed.
func (s *Session) Completed() []string {
	if s.state == StateIdle {
		return nil
	}
	return s.script[s.page][:s.line]
}

// VisibleLines returns everything the text box shows: the completed lines
// followed by the revealed prefix of the current line.
func (s *Session) VisibleLines() []string {
	if s.state == StateIdle {
		return nil
	}
	lines := make([]string, 0, s.line+1)
	lines = append(lines, s.Completed()...)
	return append(lines, s.Current())
}

// ContinueVisible reports whether the blinking continue indicator is lit.
// It shows for the first half of every blink period while the line is complete.
func (s *Session) ContinueVisible() bool {
	return s.state == StateLineComplete && s.blink%s.blinkPeriod < s.blinkPeriod/2
}
