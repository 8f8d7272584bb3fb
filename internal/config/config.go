// Package config handles loading and validating runtime configuration.
// Configuration values (like the MongoDB URI and the listening port) come
// from environment variables rather than being hardcoded, so the same binary
// runs unchanged in development and on the hosting platform — just swap the
// environment.
package config

import (
	"os"
	"time"

	// godotenv reads a .env file and loads its key=value pairs into the
	// process environment. Convenient in development; in production real
	// environment variables are set by the platform and no .env exists.
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// defaultPingInterval is how often the keepalive pinger fires when
// PING_INTERVAL is not set. Three minutes comfortably beats the ~15 minute
// idle window of the free hosting tier.
const defaultPingInterval = 3 * time.Minute

// Config holds all runtime configuration values for the application.
type Config struct {
	Port         string        // TCP port the HTTP server listens on (e.g. "3000")
	MongoURI     string        // MongoDB connection string — required, server refuses to start without it
	MongoDB      string        // database name holding the equipes collection
	SelfURL      string        // public URL of this service's /ping route; empty disables the keepalive pinger
	PingInterval time.Duration // period between keepalive ticks
	Env          string        // "development", "staging", or "production"
}

// Load reads configuration from environment variables and returns a
// populated Config. It first tries to load a .env file for local
// development; a missing .env is fine and the error is discarded.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	db := os.Getenv("MONGO_DB")
	if db == "" {
		db = "volei-app"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		Port:         port,
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      db,
		SelfURL:      os.Getenv("SELF_URL"),
		PingInterval: pingInterval(),
		Env:          env,
	}
}

// pingInterval parses PING_INTERVAL as a Go duration string ("3m", "120s").
// An unset or malformed value falls back to the default — a bad interval
// should never keep the server from starting.
func pingInterval() time.Duration {
	raw := os.Getenv("PING_INTERVAL")
	if raw == "" {
		return defaultPingInterval
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn().Str("value", raw).Msg("invalid PING_INTERVAL, using default")
		return defaultPingInterval
	}
	return d
}
