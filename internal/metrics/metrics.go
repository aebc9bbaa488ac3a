// Package metrics exposes Prometheus counters for the game loop.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ticksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daydream_ticks_total",
		Help: "Total number of simulated frames.",
	})

	movesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daydream_moves_total",
			Help: "Finished movement commands by result (moved, wall, occupied).",
		},
		[]string{"result"},
	)

	interactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daydream_interactions_total",
			Help: "Interactable activations by kind.",
		},
		[]string{"kind"},
	)

	dialogueSessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daydream_dialogue_sessions_total",
		Help: "Total number of dialogue sessions started.",
	})

	modeTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daydream_mode_transitions_total",
			Help: "Game mode changes by source and destination mode.",
		},
		[]string{"from", "to"},
	)
)

// Tick counts one simulated frame.
func Tick() {
	ticksTotal.Inc()
}

// Move counts a finished movement command.
func Move(result string) {
	movesTotal.WithLabelValues(result).Inc()
}

// Interaction counts an activation of an interactable of the given kind.
func Interaction(kind string) {
	interactionsTotal.WithLabelValues(kind).Inc()
}

// DialogueStarted counts a new dialogue session.
func DialogueStarted() {
	dialogueSessionsTotal.Inc()
}

// ModeTransition counts a change of game mode.
func ModeTransition(from, to string) {
	modeTransitionsTotal.WithLabelValues(from, to).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
