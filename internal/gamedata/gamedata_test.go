package gamedata

import (
	"errors"
	"testing"

	"github.com/samdwyer/daydream/internal/world"
)

func TestLoadScenes(t *testing.T) {
	scenes, err := LoadScenes()
	if err != nil {
		t.Fatalf("Failed to load scenes: %v", err)
	}

	expectedIDs := map[string]bool{"door": false, "ticket": false, "level": false}
	for _, s := range scenes {
		if _, ok := expectedIDs[s.ID]; ok {
			expectedIDs[s.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected scene %q not found", id)
		}
	}
}

func TestSceneRegistry(t *testing.T) {
	registry, err := LoadSceneRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 scenes, got %d", registry.Count())
	}

	door, err := registry.Get("door")
	if err != nil {
		t.Fatalf("Get(door) error = %v", err)
	}
	if door.Start != (Point{X: 4, Y: 4}) {
		t.Errorf("door start = %+v, want (4,4)", door.Start)
	}
	if len(door.Interactables) != 1 || door.Interactables[0].Kind != KindLockedDoor {
		t.Errorf("door scene should hold one locked door, got %+v", door.Interactables)
	}
	if door.Opening == nil || door.Opening.Script().PageCount() != 3 {
		t.Error("door scene should have a three page opening")
	}

	m, err := door.BuildMap()
	if err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}
	if m.Width != 9 || m.Height != 9 {
		t.Errorf("door map = %dx%d, want 9x9", m.Width, m.Height)
	}

	if _, err := registry.Get("nowhere"); !errors.Is(err, ErrSceneNotFound) {
		t.Errorf("Get(nowhere) error = %v, want ErrSceneNotFound", err)
	}

	level, err := registry.Get("level")
	if err != nil {
		t.Fatalf("Get(level) error = %v", err)
	}
	if len(level.Walkers) != 1 || level.Walkers[0].Cell() != (world.Cell{X: 2, Y: 1}) {
		t.Errorf("level scene should hold one walker at (2,1), got %+v", level.Walkers)
	}

	ids := registry.IDs()
	if len(ids) != 3 || ids[0] != "door" || ids[1] != "level" || ids[2] != "ticket" {
		t.Errorf("IDs() = %v, want sorted [door level ticket]", ids)
	}
}

func validScene() SceneDef {
	return SceneDef{
		ID:     "test",
		Layout: []string{"#####", "#...#", "#...#", "#####"},
		Start:  Point{X: 1, Y: 1},
		Interactables: []InteractableDef{
			{ID: "box", X: 3, Y: 2, Kind: KindPlain, Pages: [][]string{{"a box"}}},
		},
	}
}

func TestSceneValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *SceneDef)
		valid  bool
	}{
		{"valid", func(s *SceneDef) {}, true},
		{"ragged layout", func(s *SceneDef) { s.Layout[1] = "#.." }, false},
		{"missing id", func(s *SceneDef) { s.ID = "" }, false},
		{"start on wall", func(s *SceneDef) { s.Start = Point{X: 0, Y: 0} }, false},
		{"interactable outside", func(s *SceneDef) { s.Interactables[0].X = 40 }, false},
		{"interactable on start", func(s *SceneDef) { s.Interactables[0].X, s.Interactables[0].Y = 1, 1 }, false},
		{"unknown kind", func(s *SceneDef) { s.Interactables[0].Kind = "chest" }, false},
		{"empty page", func(s *SceneDef) { s.Interactables[0].Pages = [][]string{{}} }, false},
		{"no pages", func(s *SceneDef) { s.Interactables[0].Pages = nil }, false},
		{"bad opening", func(s *SceneDef) { s.Opening = &ScriptDef{} }, false},
		{"door in wall", func(s *SceneDef) {
			s.Interactables = append(s.Interactables, InteractableDef{
				ID: "door", X: 2, Y: 3, Kind: KindLockedDoor, Pages: [][]string{{"locked"}},
			})
		}, true},
		{"shared cell", func(s *SceneDef) {
			s.Interactables = append(s.Interactables, s.Interactables[0])
		}, false},
		{"walker", func(s *SceneDef) {
			s.Walkers = []WalkerDef{{ID: "cat", X: 2, Y: 1, Steps: [][2]int{{0, 1}, {0, -1}}}}
		}, true},
		{"walker in wall", func(s *SceneDef) {
			s.Walkers = []WalkerDef{{ID: "cat", X: 0, Y: 1}}
		}, false},
		{"walker on start", func(s *SceneDef) {
			s.Walkers = []WalkerDef{{ID: "cat", X: 1, Y: 1}}
		}, false},
		{"walker on interactable", func(s *SceneDef) {
			s.Walkers = []WalkerDef{{ID: "cat", X: 3, Y: 2}}
		}, false},
		{"walker diagonal step", func(s *SceneDef) {
			s.Walkers = []WalkerDef{{ID: "cat", X: 2, Y: 1, Steps: [][2]int{{1, 1}}}}
		}, false},
	}

	for _, tt := range tests {
		scene := validScene()
		tt.mutate(&scene)
		err := scene.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() should pass, got %v", tt.name, err)
		}
		if !tt.valid {
			if err == nil {
				t.Errorf("%s: Validate() should fail", tt.name)
			} else if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("%s: Validate() error %v should wrap ErrInvalidScene", tt.name, err)
			}
		}
	}
}

func TestNewSceneRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewSceneRegistry([]SceneDef{validScene(), validScene()})
	if !errors.Is(err, ErrInvalidScene) {
		t.Errorf("NewSceneRegistry() error = %v, want ErrInvalidScene", err)
	}
}

func TestFacingDirection(t *testing.T) {
	tests := []struct {
		input string
		want  world.Direction
	}{
		{"east", world.East},
		{"north", world.North},
		{"west", world.West},
		{"south", world.South},
		{"", world.South},
		{"up", world.South},
	}

	for _, tt := range tests {
		s := SceneDef{Facing: tt.input}
		if got := s.FacingDirection(); got != tt.want {
			t.Errorf("FacingDirection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#A0522D", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestDefGlyphs(t *testing.T) {
	def := InteractableDef{Glyph: "D", Color: "#A0522D"}
	if def.GlyphRune() != 'D' {
		t.Errorf("Expected glyph 'D', got %c", def.GlyphRune())
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := InteractableDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("Expected fallback glyph '?', got %c", empty.GlyphRune())
	}

	player := ActorDef{}
	if player.GlyphRune() != '@' {
		t.Errorf("Expected player glyph '@', got %c", player.GlyphRune())
	}
}

func TestWalkerRoute(t *testing.T) {
	def := WalkerDef{Steps: [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}}
	route, err := def.Route()
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	want := []world.Direction{world.South, world.East, world.North, world.West}
	if len(route) != len(want) {
		t.Fatalf("Route() = %v, want %v", route, want)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Errorf("Route()[%d] = %v, want %v", i, route[i], want[i])
		}
	}

	bad := WalkerDef{Steps: [][2]int{{2, 0}}}
	if _, err := bad.Route(); err == nil {
		t.Error("Route() should reject a two-cell step")
	}
}
