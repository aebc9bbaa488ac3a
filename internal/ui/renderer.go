package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/samdwyer/daydream/internal/entity"
	"github.com/samdwyer/daydream/internal/world"
)

const (
	// cellWidth is the number of terminal columns per map cell, which keeps
	// cells roughly square and lets half steps show horizontally.
	cellWidth = 2

	// dialogueRows is the height of the text box including its border.
	dialogueRows = 6

	continueGlyph = '▼'
)

// Sprite is an actor and the color it is drawn in.
type Sprite struct {
	Actor *entity.Actor
	Color tcell.Color
}

// Frame is everything the renderer needs for one picture. It is a read-only
// snapshot taken after the tick has been applied.
type Frame struct {
	Map *world.Map
	// Player is the camera focus.
	Player *entity.Actor
	// Actors are drawn in order, so later ones end up on top.
	Actors        []Sprite
	Interactables entity.Interactables

	DialogueOpen bool
	Dialogue     []string
	Continue     bool

	// Opacity of the black overlay, 1 fully black and 0 clear.
	Opacity float64
	Status  string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, objects, player and text box.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	width, height := r.screen.Size()
	camera := world.NewCamera(width/cellWidth, max(height-dialogueRows-1, 1))
	view := camera.Viewport(f.Map, f.Player.X, f.Player.Y)

	for y := view.Y; y < view.Y+view.Height; y++ {
		for x := view.X; x < view.X+view.Width; x++ {
			if !f.Map.InBounds(x, y) {
				continue
			}
			tile := f.Map.TileAt(x, y)
			style := tcell.StyleDefault.Foreground(fade(tileColor(tile), f.Opacity))
			col, row := (x-view.X)*cellWidth, y-view.Y
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(col+i, row, tile.Rune(), nil, style)
			}
		}
	}

	for _, it := range f.Interactables {
		if !view.Contains(it.Cell.X, it.Cell.Y) {
			continue
		}
		style := tcell.StyleDefault.Foreground(fade(it.Color(), f.Opacity)).Bold(true)
		r.screen.SetContent((it.Cell.X-view.X)*cellWidth, it.Cell.Y-view.Y, it.Symbol, nil, style)
	}

	for _, sp := range f.Actors {
		r.renderActor(sp, view, f.Opacity)
	}

	boxTop := view.Height
	if f.DialogueOpen {
		r.renderDialogue(f, boxTop, width)
	}
	r.RenderMessage(f.Status, boxTop+dialogueRows)

	r.screen.Show()
}

// renderActor draws one actor. Fractional positions are rounded to the
// nearest column and row.
func (r *Renderer) renderActor(sp Sprite, view world.Rect, opacity float64) {
	col := int(math.Round((sp.Actor.X - float64(view.X)) * cellWidth))
	row := int(math.Round(sp.Actor.Y - float64(view.Y)))
	if col < 0 || row < 0 || col >= view.Width*cellWidth || row >= view.Height {
		return
	}
	style := tcell.StyleDefault.Foreground(fade(sp.Color, opacity)).Bold(true)
	r.screen.SetContent(col, row, sp.Actor.Symbol, nil, style)
}

// renderDialogue draws the bordered text box with its visible lines.
func (r *Renderer) renderDialogue(f Frame, top, width int) {
	border := tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	right := width - 1

	for x := 0; x <= right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, border)
		r.screen.SetContent(x, top+dialogueRows-1, tcell.RuneHLine, nil, border)
	}
	for y := top; y < top+dialogueRows; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, border)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	r.screen.SetContent(0, top, tcell.RuneULCorner, nil, border)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, border)
	r.screen.SetContent(0, top+dialogueRows-1, tcell.RuneLLCorner, nil, border)
	r.screen.SetContent(right, top+dialogueRows-1, tcell.RuneLRCorner, nil, border)

	for i, line := range f.Dialogue {
		if i >= dialogueRows-2 {
			break
		}
		r.drawText(2, top+1+i, right-2, line, text)
	}

	if f.Continue {
		r.screen.SetContent(right-2, top+dialogueRows-2, continueGlyph, nil, border)
	}
}

// drawText writes s from column x, one grapheme cluster at a time, stopping
// before column limit. Wide characters take two columns.
func (r *Renderer) drawText(x, y, limit int, s string, style tcell.Style) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		runes := gr.Runes()
		w := uniseg.StringWidth(gr.Str())
		if x+w > limit {
			return
		}
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(w, 1)
	}
}

// tileColor returns the foreground color for a tile type.
func tileColor(tile world.Tile) tcell.Color {
	switch tile {
	case world.TileWall:
		return tcell.ColorSaddleBrown
	case world.TileFloor:
		return tcell.ColorGray
	default:
		return tcell.ColorWhite
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	width, _ := r.screen.Size()
	r.drawText(0, y, width, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// fade darkens c towards black by opacity.
func fade(c tcell.Color, opacity float64) tcell.Color {
	if opacity <= 0 {
		return c
	}
	cr, cg, cb := c.RGB()
	if cr < 0 {
		return tcell.ColorBlack
	}
	keep := 1 - math.Min(opacity, 1)
	return tcell.NewRGBColor(
		int32(float64(cr)*keep),
		int32(float64(cg)*keep),
		int32(float64(cb)*keep),
	)
}
