package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/daydream/internal/dialogue"
	"github.com/samdwyer/daydream/internal/entity"
	"github.com/samdwyer/daydream/internal/gamedata"
	"github.com/samdwyer/daydream/internal/logging"
	"github.com/samdwyer/daydream/internal/metrics"
	"github.com/samdwyer/daydream/internal/movement"
	"github.com/samdwyer/daydream/internal/telemetry"
	"github.com/samdwyer/daydream/internal/world"
)

// Game holds the entire game state. It is owned by the tick loop and never
// shared between goroutines.
type Game struct {
	scene         *gamedata.SceneDef
	world         *world.Map
	player        *entity.Actor
	walkers       []*entity.Walker
	interactables entity.Interactables
	commands      movement.Queue
	session       *dialogue.Session
	mode          Mode
	running       bool

	// staged is held while waiting for the second press
	staged     dialogue.Script
	stagedFrom string
	opening    dialogue.Script
	fade       int

	frame     int
	cues      []Cue
	sessionID string
	log       *logrus.Entry

	dialogueSpan trace.Span
}

// New creates a game in the given scene.
func New(ctx context.Context, scene *gamedata.SceneDef, cfg Config) (*Game, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	m, err := scene.BuildMap()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to build scene %q: %w", scene.ID, err)
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	g := &Game{
		scene: scene,
		world: m,
		player: entity.NewActor(scene.Player.Name, scene.Start.X, scene.Start.Y,
			scene.FacingDirection(), scene.Player.GlyphRune()),
		session:   dialogue.NewSession(FrameRate),
		mode:      ModeMoving,
		running:   true,
		opening:   scene.Opening.Script(),
		sessionID: sessionID,
	}
	g.log = logging.Log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"scene":      scene.ID,
	})

	for i := range scene.Interactables {
		g.interactables = append(g.interactables, entity.NewInteractableFromDef(&scene.Interactables[i]))
	}
	for i := range scene.Walkers {
		w, err := entity.NewWalkerFromDef(&scene.Walkers[i])
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to build scene %q: %w", scene.ID, err)
		}
		g.walkers = append(g.walkers, w)
	}

	if g.opening.PageCount() > 0 && !cfg.SkipOpening {
		g.mode = ModeTransitionFadeout
		g.fade = FrameRate
	}

	span.SetAttributes(
		attribute.String("game.session_id", sessionID),
		attribute.String("scene.id", scene.ID),
		attribute.Int("scene.width", m.Width),
		attribute.Int("scene.height", m.Height),
		attribute.Int("scene.floor_cells", m.FloorCount()),
		attribute.Int("scene.interactables", len(g.interactables)),
		attribute.Int("scene.walkers", len(g.walkers)),
		attribute.String("game.mode", g.mode.String()),
	)
	g.log.WithField("mode", g.mode).Info("scene loaded")

	return g, nil
}

// Step applies the inputs gathered since the last tick, then advances one
// tick. It returns the cues raised during the tick.
func (g *Game) Step(ctx context.Context, inputs ...Input) []Cue {
	for _, in := range inputs {
		g.HandleInput(ctx, in)
	}
	return g.Tick(ctx)
}

// HandleInput routes one input to the handler of the current mode.
func (g *Game) HandleInput(ctx context.Context, in Input) {
	if in == InputQuit {
		g.running = false
		return
	}

	switch g.mode {
	case ModeMoving:
		if dir, ok := in.Direction(); ok {
			if g.commands.Enqueue(g.player, dir) != nil {
				g.stepWalkers()
			}
			return
		}
		if in == InputInteract {
			g.interact(ctx)
		}
	case ModeDialogue:
		if in == InputInteract {
			g.advanceDialogue(ctx)
		}
	case ModeWaiting:
		if in == InputInteract {
			script, from := g.staged, g.stagedFrom
			g.staged, g.stagedFrom = nil, ""
			g.startDialogue(ctx, script, from)
		}
	case ModeTransitionFadeout:
		// time driven only
	}
}

// Tick advances movement, then dialogue, then the fade, by one frame.
func (g *Game) Tick(ctx context.Context) []Cue {
	for _, cmd := range g.commands.Advance(g.terrain()) {
		g.finishMove(ctx, cmd)
	}

	switch g.mode {
	case ModeDialogue:
		if g.session.Tick() {
			g.cue(CueText)
		}
	case ModeTransitionFadeout:
		g.fade--
		if g.fade <= 0 {
			g.fade = 0
			g.startDialogue(ctx, g.opening, "opening")
		}
	case ModeMoving, ModeWaiting:
	}

	g.frame++
	metrics.Tick()

	cues := g.cues
	g.cues = nil
	return cues
}

// stepWalkers starts the next route step of every walker. It runs in the
// same input as the player's step, so all of them move side by side.
func (g *Game) stepWalkers() {
	for _, w := range g.walkers {
		if dir, ok := w.NextStep(); ok {
			g.commands.Enqueue(w.Actor, dir)
		}
	}
}

// interact activates the object the player is facing.
func (g *Game) interact(ctx context.Context) {
	if g.commands.PendingFor(g.player) {
		return
	}

	act := Activate(g.interactables.At(g.player.FacingCell()))
	if act.Kind == ActivationNone {
		return
	}
	metrics.Interaction(string(act.Source.Kind))
	g.log.WithFields(logrus.Fields{
		"object":     act.Source.ID,
		"activation": act.Kind,
	}).Debug("object activated")

	if act.Cue != "" {
		g.cue(act.Cue)
	}
	switch act.Kind {
	case ActivationWaiting:
		g.staged, g.stagedFrom = act.Script, act.Source.ID
		g.setMode(ctx, ModeWaiting)
	case ActivationDialogue:
		g.startDialogue(ctx, act.Script, act.Source.ID)
	case ActivationNone:
	}
}

func (g *Game) startDialogue(ctx context.Context, script dialogue.Script, source string) {
	g.session.Start(script)
	if !g.session.Active() {
		g.setMode(ctx, ModeMoving)
		return
	}

	tracer := telemetry.Tracer("dialogue")
	_, g.dialogueSpan = tracer.Start(ctx, "dialogue.session")
	g.dialogueSpan.SetAttributes(
		attribute.String("dialogue.source", source),
		attribute.Int("dialogue.pages", script.PageCount()),
		attribute.Int("dialogue.lines", script.LineCount()),
	)
	metrics.DialogueStarted()
	g.setMode(ctx, ModeDialogue)
}

func (g *Game) advanceDialogue(ctx context.Context) {
	outcome := g.session.Advance()
	if g.dialogueSpan != nil && outcome != dialogue.OutcomeNone {
		g.dialogueSpan.AddEvent("dialogue." + outcome.String())
	}
	if outcome != dialogue.OutcomeEnded {
		return
	}

	g.endDialogueSpan("finished")
	g.setMode(ctx, ModeMoving)
}

// endDialogueSpan closes the open dialogue span, if any.
func (g *Game) endDialogueSpan(reason string) {
	if g.dialogueSpan == nil {
		return
	}
	g.dialogueSpan.SetAttributes(attribute.String("dialogue.end", reason))
	g.dialogueSpan.End()
	g.dialogueSpan = nil
}

func (g *Game) finishMove(ctx context.Context, cmd *movement.Command) {
	name := ""
	if a, ok := cmd.Actor().(*entity.Actor); ok {
		name = a.Name
	}

	result := "moved"
	if block := cmd.Blocked(); block != movement.BlockNone {
		result = block.String()
		trace.SpanFromContext(ctx).AddEvent("movement.rejected", trace.WithAttributes(
			attribute.String("movement.actor", name),
			attribute.String("movement.block", result),
			attribute.Int("movement.target_x", cmd.Target().X),
			attribute.Int("movement.target_y", cmd.Target().Y),
		))
	}
	metrics.Move(result)
	g.log.WithFields(logrus.Fields{
		"actor":     name,
		"direction": cmd.Direction(),
		"result":    result,
		"cell":      cmd.Actor().Cell(),
		"in_flight": g.commands.Len(),
	}).Debug("step finished")
}

func (g *Game) setMode(ctx context.Context, m Mode) {
	if g.mode == m {
		return
	}
	from := g.mode
	g.mode = m

	metrics.ModeTransition(from.String(), m.String())
	trace.SpanFromContext(ctx).AddEvent("game.mode", trace.WithAttributes(
		attribute.String("mode.from", from.String()),
		attribute.String("mode.to", m.String()),
	))
	g.log.WithFields(logrus.Fields{"from": from, "to": m}).Debug("mode changed")
}

func (g *Game) cue(c Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) terrain() terrain {
	return terrain{world: g.world, objects: g.interactables, actors: g.actors(), moves: &g.commands}
}

// actors returns the walkers followed by the player.
func (g *Game) actors() []*entity.Actor {
	actors := make([]*entity.Actor, 0, len(g.walkers)+1)
	for _, w := range g.walkers {
		actors = append(actors, w.Actor)
	}
	return append(actors, g.player)
}

// terrain answers movement collision queries for the current scene.
// Objects block their cell, actors standing still block theirs, and a step
// in flight blocks both ends.
type terrain struct {
	world   *world.Map
	objects entity.Interactables
	actors  []*entity.Actor
	moves   *movement.Queue
}

func (t terrain) IsWalkable(x, y int) bool {
	return t.world.IsWalkable(x, y)
}

func (t terrain) Occupied(c world.Cell) bool {
	if t.objects.At(c) != nil || t.moves.Claimed(c) {
		return true
	}
	for _, a := range t.actors {
		if a.AtRest() && a.Cell() == c {
			return true
		}
	}
	return false
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Running reports whether the player has not quit.
func (g *Game) Running() bool {
	return g.running
}

// Player returns the player character.
func (g *Game) Player() *entity.Actor {
	return g.player
}

// Map returns the scene's tile map.
func (g *Game) Map() *world.Map {
	return g.world
}

// Walkers returns the scene's scripted actors.
func (g *Game) Walkers() []*entity.Walker {
	return g.walkers
}

// Interactables returns the scene's objects.
func (g *Game) Interactables() entity.Interactables {
	return g.interactables
}

// Dialogue returns the dialogue session.
func (g *Game) Dialogue() *dialogue.Session {
	return g.session
}

// MovePending reports whether the player's step is running.
func (g *Game) MovePending() bool {
	return g.commands.PendingFor(g.player)
}

// Opacity returns the opening fade overlay strength, 1 (black) to 0 (clear).
func (g *Game) Opacity() float64 {
	if g.mode != ModeTransitionFadeout {
		return 0
	}
	return float64(g.fade) / FrameRate
}

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() int {
	return g.frame
}

// Scene returns the scene definition.
func (g *Game) Scene() *gamedata.SceneDef {
	return g.scene
}

// SessionID returns the id that tags this run's logs and spans.
func (g *Game) SessionID() string {
	return g.sessionID
}
