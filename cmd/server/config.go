package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/duelhall/encounter-api/internal/errors"
)

// appConfig is loaded from the environment, with an optional .env file
// for local development
type appConfig struct {
	GRPCPort      int           `env:"ENCOUNTER_GRPC_PORT"          envDefault:"50051"`
	RedisAddr     string        `env:"ENCOUNTER_REDIS_ADDR"         envDefault:"localhost:6379"`
	RedisPassword string        `env:"ENCOUNTER_REDIS_PASSWORD"     envDefault:""`
	RedisDB       int           `env:"ENCOUNTER_REDIS_DB"           envDefault:"0"`
	NarratorURL   string        `env:"ENCOUNTER_NARRATOR_URL"       envDefault:""`
	DCChooserURL  string        `env:"ENCOUNTER_DC_CHOOSER_URL"     envDefault:""`
	HTTPTimeout   time.Duration `env:"ENCOUNTER_COLLABORATOR_TIMEOUT" envDefault:"10s"`
}

// loadConfig reads .env if present, then parses the environment
func loadConfig() (*appConfig, error) {
	// Missing .env is fine; the environment still applies
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
