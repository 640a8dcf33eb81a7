// main.go
//
// Entry point for the Bingo server.
// Responsibilities:
//   - Load .env (if present) and the typed configuration.
//   - Configure the global zerolog logger (level + json/console output).
//   - Open the configured store (memory, sqlite or postgres).
//   - Wire generator, feed hub, service and HTTP server, then serve.

package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bingo-server/internal/bingo"
	"github.com/robalobadob/bingo-server/internal/config"
	"github.com/robalobadob/bingo-server/internal/feed"
	"github.com/robalobadob/bingo-server/internal/httpserver"
	"github.com/robalobadob/bingo-server/internal/service"
	"github.com/robalobadob/bingo-server/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStore(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}
	defer st.Close()

	gen := bingo.NewGenerator(cfg.ColumnAttempts)
	if cfg.RandomSeed != 0 {
		gen = bingo.NewSeededGenerator(cfg.RandomSeed, cfg.ColumnAttempts)
		log.Warn().Int64("seed", cfg.RandomSeed).Msg("deterministic draws enabled")
	}

	hub := feed.NewHub(cfg.ClientOrigin)
	defer hub.Close()

	svc := service.New(st, gen, hub, service.Options{
		DefaultGameStatusID:  cfg.DefaultGameStatusID,
		DefaultGamerStatusID: cfg.DefaultGamerStatusID,
		UniqueMoves:          cfg.UniqueMoves,
	})
	srv := httpserver.New(svc, hub, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.RequestTimeout,
	})

	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Bool("unique_moves", cfg.UniqueMoves).Msg("starting bingo-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
	}
}

func setupLogging(cfg config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return store.NewMemoryStore(), nil
	case config.DriverPostgres:
		return store.Open(ctx, store.Postgres, cfg.DatabaseURL)
	default:
		return store.Open(ctx, store.SQLite, cfg.DatabaseURL)
	}
}
