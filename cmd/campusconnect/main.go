package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusconnect-dev/campusconnect/db"
	"github.com/campusconnect-dev/campusconnect/internal/auth"
	"github.com/campusconnect-dev/campusconnect/internal/config"
	"github.com/campusconnect-dev/campusconnect/internal/handlers"
	"github.com/campusconnect-dev/campusconnect/internal/registry"
	"github.com/campusconnect-dev/campusconnect/internal/router"
	"github.com/campusconnect-dev/campusconnect/internal/seed"
	"github.com/campusconnect-dev/campusconnect/internal/types"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to init JWT secret")
	}

	handlers.Domain = cfg.Domain
	types.InitAllowedOrigins(cfg)

	ctx := context.Background()

	if err := db.Connect(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect store")
	}

	if err := seed.Admin(ctx, db.Active); err != nil {
		// The original behavior: a failed admin bootstrap is logged and
		// skipped, not fatal.
		log.Warn().Err(err).Msg("admin seeding skipped or failed")
	}

	registry.Init(db.Active)

	r := router.NewRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
