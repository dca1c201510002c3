// Package db owns backend selection. The choice between the remote
// relational store and the local snapshot fallback is made once, at process
// start, and never re-evaluated.
package db

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect-dev/campusconnect/internal/config"
	"github.com/campusconnect-dev/campusconnect/internal/seed"
	"github.com/campusconnect-dev/campusconnect/internal/store"
	"github.com/campusconnect-dev/campusconnect/internal/store/local"
	"github.com/campusconnect-dev/campusconnect/internal/store/remote"
)

var (
	// Active is the selected backend. Everything above this package
	// depends only on the store.Store interface.
	Active store.Store

	// IsRemote reports whether the process operates against the hosted
	// relational store rather than the local fallback.
	IsRemote bool
)

// Connect binds Active to the remote adapter when valid remote credentials
// are configured, and to the local snapshot store otherwise. The local
// path seeds the built-in catalog when its events partition is empty.
func Connect(ctx context.Context, cfg *config.Config) error {
	if cfg.RemoteConfigured() {
		s, err := remote.Connect(cfg.RemoteDSN())
		if err != nil {
			return err
		}
		Active = s
		IsRemote = true
		log.Info().Str("endpoint", cfg.RemoteURL).Msg("using remote event store")
		return nil
	}

	s, err := local.Open(cfg.LocalDBPath)
	if err != nil {
		return err
	}

	events, err := s.GetEvents(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		if err := s.ReplaceEvents(ctx, seed.Catalog()); err != nil {
			return err
		}
		log.Info().Int("events", len(seed.Catalog())).Msg("seeded built-in event catalog")
	}

	Active = s
	IsRemote = false
	log.Info().Str("path", cfg.LocalDBPath).Msg("using local event store")
	return nil
}
