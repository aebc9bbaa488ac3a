package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/daydream/internal/entity"
	"github.com/samdwyer/daydream/internal/world"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	t.Cleanup(s.Close)
	sim.SetSize(w, h)
	return s, sim
}

func testFrame(t *testing.T) Frame {
	t.Helper()
	m, err := world.ParseMap([]string{
		"#####",
		"#...#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseMap() error = %v", err)
	}
	player := entity.NewActor("Kintoki", 1, 1, world.South, '@')
	return Frame{
		Map:    m,
		Player: player,
		Actors: []Sprite{{Actor: player, Color: tcell.ColorYellow}},
	}
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		for _, r := range cells[y*w+x].Runes {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestRenderMapAndPlayer(t *testing.T) {
	s, sim := newSimScreen(t, 40, 20)
	NewRenderer(s).Render(testFrame(t))

	if got := cellAt(sim, 0, 0); got != '#' {
		t.Errorf("cell(0,0) = %q, want '#'", got)
	}
	if got := cellAt(sim, 1, 0); got != '#' {
		t.Errorf("cell(1,0) = %q, want '#' (two columns per map cell)", got)
	}
	if got := cellAt(sim, 2, 1); got != '@' {
		t.Errorf("cell(2,1) = %q, want '@'", got)
	}
	if got := cellAt(sim, 4, 1); got != '.' {
		t.Errorf("cell(4,1) = %q, want '.'", got)
	}
}

func TestRenderPlayerMidStep(t *testing.T) {
	s, sim := newSimScreen(t, 40, 20)
	f := testFrame(t)
	f.Player.SetPosition(1.5, 1)
	NewRenderer(s).Render(f)

	if got := cellAt(sim, 3, 1); got != '@' {
		t.Errorf("cell(3,1) = %q, want '@' halfway between cells", got)
	}
}

func TestRenderEveryActor(t *testing.T) {
	s, sim := newSimScreen(t, 40, 20)
	f := testFrame(t)
	cricket := entity.NewActor("Cricket", 3, 2, world.South, 'c')
	f.Actors = append([]Sprite{{Actor: cricket, Color: tcell.ColorGreen}}, f.Actors...)
	NewRenderer(s).Render(f)

	if got := cellAt(sim, 6, 2); got != 'c' {
		t.Errorf("cell(6,2) = %q, want 'c'", got)
	}
	if got := cellAt(sim, 2, 1); got != '@' {
		t.Errorf("cell(2,1) = %q, want '@'", got)
	}
}

func TestRenderInteractable(t *testing.T) {
	s, sim := newSimScreen(t, 40, 20)
	f := testFrame(t)
	f.Interactables = entity.Interactables{
		{ID: "door", Cell: world.Cell{X: 3, Y: 2}, Symbol: 'D'},
	}
	NewRenderer(s).Render(f)

	if got := cellAt(sim, 6, 2); got != 'D' {
		t.Errorf("cell(6,2) = %q, want 'D'", got)
	}
}

func TestRenderDialogue(t *testing.T) {
	s, sim := newSimScreen(t, 40, 20)
	f := testFrame(t)
	f.DialogueOpen = true
	f.Dialogue = []string{"hello", "あれ"}
	f.Continue = true
	NewRenderer(s).Render(f)

	_, h := s.Size()
	top := h - dialogueRows - 1
	if got := rowText(sim, top+1); !strings.Contains(got, "hello") {
		t.Errorf("dialogue row 1 = %q, want it to contain %q", got, "hello")
	}
	row := rowText(sim, top+2)
	for _, r := range "あれ" {
		if !strings.ContainsRune(row, r) {
			t.Errorf("dialogue row 2 = %q, want it to contain %q", row, r)
		}
	}
	if !strings.ContainsRune(rowText(sim, top+dialogueRows-2), continueGlyph) {
		t.Error("continue indicator not drawn")
	}
}

func TestRenderStatus(t *testing.T) {
	s, sim := newSimScreen(t, 40, 20)
	f := testFrame(t)
	f.Status = "moving"
	NewRenderer(s).Render(f)

	_, h := s.Size()
	if got := rowText(sim, h-1); !strings.HasPrefix(got, "moving") {
		t.Errorf("status row = %q, want prefix %q", got, "moving")
	}
}

func TestFade(t *testing.T) {
	c := tcell.NewRGBColor(200, 100, 50)

	if got := fade(c, 0); got != c {
		t.Errorf("fade(c, 0) = %v, want %v", got, c)
	}
	if got := fade(c, 1); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("fade(c, 1) = %v, want black", got)
	}
	r, g, b := fade(c, 0.5).RGB()
	if r != 100 || g != 50 || b != 25 {
		t.Errorf("fade(c, 0.5) = (%d,%d,%d), want (100,50,25)", r, g, b)
	}
	if got := fade(tcell.ColorDefault, 0.5); got != tcell.ColorBlack {
		t.Errorf("fade(default, 0.5) = %v, want black", got)
	}
}
