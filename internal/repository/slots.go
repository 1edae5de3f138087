// Package repository selects the persistence slot backend
package repository

import (
	"context"
	"fmt"

	"github.com/dafibh/tabi/tabi-backend/internal/config"
	"github.com/dafibh/tabi/tabi-backend/internal/domain"
	"github.com/dafibh/tabi/tabi-backend/internal/repository/postgres"
	"github.com/dafibh/tabi/tabi-backend/internal/repository/sqlite"
	"github.com/dafibh/tabi/tabi-backend/internal/repository/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// OpenSlotStore opens the backend named by cfg.SlotBackend. The returned
// close function releases it and is never nil.
func OpenSlotStore(ctx context.Context, cfg *config.Config) (domain.SlotStore, func(), error) {
	switch cfg.SlotBackend {
	case config.BackendSQLite:
		repo, err := sqlite.NewSlotRepository(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close sqlite slot store")
			}
		}, nil

	case config.BackendPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info().Msg("Connected to database")
		return postgres.NewSlotRepository(pool), pool.Close, nil

	case config.BackendS3:
		repo, err := storage.NewS3SlotRepository(ctx, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown slot backend %q", cfg.SlotBackend)
}
