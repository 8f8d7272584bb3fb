// cmd/server/main.go
// Entry point for the Equipes API server — a small roster-management service
// for volleyball teams. The cmd/server directory follows the common Go
// convention: cmd/ holds executable binaries, internal/ holds the packages
// they are built from.
package main

import (
	"context"
	"os"

	// fiber is a fast HTTP web framework inspired by Express.js
	"github.com/gofiber/fiber/v2"
	// cors allows the mobile app to call the API from a different origin
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints request details (method, path, status, duration) to stdout
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/equipesapp/equipes-api/internal/config"
	"github.com/equipesapp/equipes-api/internal/database"
	"github.com/equipesapp/equipes-api/internal/handlers"
	"github.com/equipesapp/equipes-api/internal/keepalive"
	"github.com/equipesapp/equipes-api/internal/middleware"
	"github.com/equipesapp/equipes-api/internal/teams"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg := config.Load()

	// Human-readable console logs in development; plain JSON everywhere else.
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if cfg.MongoURI == "" {
		log.Fatal().Msg("MONGO_URI environment variable is required")
	}

	// Connect to MongoDB and verify it with a ping. This is the fail-fast
	// gate: if the store is unreachable, the process exits here and never
	// starts accepting requests against a dead backend.
	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	log.Info().Str("database", cfg.MongoDB).Msg("connected to MongoDB")

	// The store is the only thing handlers see — they never touch the
	// Mongo client directly.
	store := teams.NewMongoStore(client.Database(cfg.MongoDB))

	// Create a new Fiber app (our HTTP server).
	app := fiber.New(fiber.Config{
		AppName: "Equipes API",
	})

	// --- Global middleware ---
	// These run on every request before any route handler.
	app.Use(logger.New())
	// Allow requests from any origin — the app is served from a different
	// host than the API. Lock down in production if it ever matters.
	app.Use(cors.New())
	// Tag every request with an X-Request-ID for log correlation.
	app.Use(middleware.RequestID())

	// --- Routes ---
	// GET /ping is the health check; it is also the target of the keepalive
	// pinger below.
	app.Get("/ping", handlers.Ping)

	// Equipe CRUD. The by-owner listing uses a path parameter, so the
	// single-record fetch lives under /equipes/details/:id to avoid
	// colliding with it.
	app.Post("/equipes", handlers.CreateEquipe(store))
	app.Get("/equipes/details/:id", handlers.GetEquipe(store))
	app.Get("/equipes/:userId", handlers.ListEquipesByOwner(store))
	app.Put("/equipes/:id", handlers.UpdateEquipe(store))
	app.Delete("/equipes/:id", handlers.DeleteEquipe(store))

	// --- Keepalive pinger ---
	// Started from the OnListen hook so the first tick can only happen once
	// the server is actually accepting connections. SELF_URL is the public
	// URL of this deployment's /ping route; leaving it unset (local
	// development) disables the pinger entirely.
	if cfg.SelfURL != "" {
		pinger := keepalive.New(cfg.SelfURL, cfg.PingInterval)
		app.Hooks().OnListen(func(fiber.ListenData) error {
			go pinger.Run(ctx)
			return nil
		})
	} else {
		log.Info().Msg("SELF_URL not set, keepalive pinger disabled")
	}

	// Start listening for HTTP connections on the configured port.
	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
