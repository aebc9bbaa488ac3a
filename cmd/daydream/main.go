// Package main is the entry point for Daydream.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/daydream/internal/config"
	"github.com/samdwyer/daydream/internal/game"
	"github.com/samdwyer/daydream/internal/gamedata"
	"github.com/samdwyer/daydream/internal/logging"
	"github.com/samdwyer/daydream/internal/metrics"
	"github.com/samdwyer/daydream/internal/telemetry"
	"github.com/samdwyer/daydream/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sceneID := flag.String("scene", cfg.Scene, "id of the scene to start in")
	list := flag.Bool("list", false, "list the available scenes and exit")
	flag.Parse()

	registry, err := gamedata.LoadSceneRegistry()
	if err != nil {
		log.Fatalf("Failed to load scenes: %v", err)
	}

	if *list {
		for _, scene := range registry.All() {
			fmt.Printf("%-10s %s\n", scene.ID, scene.Name)
		}
		return
	}

	scene, err := registry.Get(*sceneID)
	if err != nil {
		log.Fatalf("Unknown scene %q (available: %s)", *sceneID, strings.Join(registry.IDs(), ", "))
	}

	closeLog, err := logging.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()
	logging.Log.WithFields(logrus.Fields{
		"scenes": registry.Count(),
		"scene":  scene.ID,
	}).Info("scenes loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.NewString()

	if cfg.TelemetryEnabled {
		setupOTelEnv(cfg)
		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			logging.Log.WithError(err).Warn("telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				logging.Log.WithError(err).Error("metrics endpoint stopped")
			}
		}()
	}

	g, err := game.New(ctx, scene, game.Config{
		SkipOpening: cfg.SkipOpening,
		SessionID:   sessionID,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	runErr := g.Run(ctx, screen)
	screen.Close()
	if runErr != nil && ctx.Err() == nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb using our config.
func setupOTelEnv(cfg *config.Config) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here from the key itself.
	if cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
	}
}
