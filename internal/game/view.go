package game

import (
	"fmt"

	"github.com/samdwyer/daydream/internal/ui"
)

// Snapshot captures what the renderer needs after the latest tick.
func (g *Game) Snapshot() ui.Frame {
	f := ui.Frame{
		Map:           g.world,
		Player:        g.player,
		Interactables: g.interactables,
		Opacity:       g.Opacity(),
		Status: fmt.Sprintf("%s  [%s]  (%d,%d) facing %s",
			g.scene.Name, g.mode, g.player.Cell().X, g.player.Cell().Y, g.player.Facing),
	}
	for _, w := range g.walkers {
		f.Actors = append(f.Actors, ui.Sprite{Actor: w.Actor, Color: w.Color()})
	}
	f.Actors = append(f.Actors, ui.Sprite{Actor: g.player, Color: g.scene.Player.TCellColor()})

	if g.mode == ModeDialogue {
		f.DialogueOpen = true
		f.Dialogue = g.session.VisibleLines()
		f.Continue = g.session.ContinueVisible()
	}
	return f
}
