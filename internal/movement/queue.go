package movement

import "github.com/samdwyer/daydream/internal/world"

// Queue holds the pending movement commands. Each actor may have only one
// command pending at a time, so its steps never overlap.
type Queue struct {
	pending []*Command
}

// Enqueue creates a step for actor if it has nothing pending.
// It returns nil when the input is ignored; the actor does not turn in that case.
func (q *Queue) Enqueue(actor Mover, dir world.Direction) *Command {
	if q.PendingFor(actor) {
		return nil
	}
	cmd := NewCommand(actor, dir)
	q.pending = append(q.pending, cmd)
	return cmd
}

// Pending reports whether any command is still running.
func (q *Queue) Pending() bool {
	return len(q.pending) > 0
}

// PendingFor reports whether actor has a command still running.
func (q *Queue) PendingFor(actor Mover) bool {
	for _, cmd := range q.pending {
		if cmd.actor == actor {
			return true
		}
	}
	return false
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Claimed reports whether a running step is walking through cell.
func (q *Queue) Claimed(cell world.Cell) bool {
	for _, cmd := range q.pending {
		if cmd.Claims(cell) {
			return true
		}
	}
	return false
}

// Advance runs one frame of every pending command in the order they were
// queued, drops the finished ones and returns them. A command checked earlier
// in the same frame already claims its cells when the next one is checked.
func (q *Queue) Advance(terrain Terrain) []*Command {
	var finished []*Command
	remaining := make([]*Command, 0, len(q.pending))
	for _, cmd := range q.pending {
		cmd.Advance(terrain)
		if cmd.Done() {
			finished = append(finished, cmd)
			continue
		}
		remaining = append(remaining, cmd)
	}
	q.pending = remaining
	return finished
}
