package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/daydream/internal/telemetry"
	"github.com/samdwyer/daydream/internal/ui"
)

// TickInterval is the wall-clock length of one tick.
const TickInterval = time.Second / FrameRate

// Run drives the game on screen until the player quits or ctx is done.
// Key presses are collected between ticks and applied at the start of the
// next one, so the simulation only ever advances on the ticker.
func (g *Game) Run(ctx context.Context, screen *ui.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer func() {
		g.endDialogueSpan("abandoned")
		span.SetAttributes(
			attribute.Int("game.ticks", g.frame),
			attribute.String("game.final_mode", g.mode.String()),
		)
		span.End()
	}()

	renderer := ui.NewRenderer(screen)
	keys, resizes := startEventLoop(ctx, screen.PollEvent)

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	g.log.Info("game loop started")
	renderer.Render(g.Snapshot())

	var pending []Input
	for g.running {
		select {
		case <-ctx.Done():
			g.log.Info("game loop cancelled")
			return ctx.Err()
		case ev := <-keys:
			in := KeyToInput(ev)
			if in == InputQuit {
				g.running = false
				continue
			}
			if in != InputNone {
				pending = append(pending, in)
			}
		case <-resizes:
			screen.Sync()
			renderer.Render(g.Snapshot())
		case <-ticker.C:
			for _, c := range g.Step(ctx, pending...) {
				if c == CueText {
					continue
				}
				if err := screen.Beep(); err != nil {
					g.log.WithError(err).Debug("beep failed")
				}
			}
			pending = pending[:0]
			renderer.Render(g.Snapshot())
		}
	}

	g.log.WithField("ticks", g.frame).Info("game loop finished")
	return nil
}

// startEventLoop pumps terminal events into channels until ctx is done or
// poll returns nil, which happens once the screen is closed.
func startEventLoop(ctx context.Context, poll func() tcell.Event) (<-chan *tcell.EventKey, <-chan *tcell.EventResize) {
	keys := make(chan *tcell.EventKey)
	resizes := make(chan *tcell.EventResize)
	go func() {
		for ctx.Err() == nil {
			ev := poll()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				select {
				case <-ctx.Done():
					return
				case keys <- ev:
				}
			case *tcell.EventResize:
				select {
				case <-ctx.Done():
					return
				case resizes <- ev:
				}
			}
		}
	}()
	return keys, resizes
}
