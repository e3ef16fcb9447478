package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/legends-of-revenue/internal/config"
	"github.com/KirkDiggler/legends-of-revenue/internal/database"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/clock"
	"github.com/KirkDiggler/legends-of-revenue/internal/redis"
	"github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot"
)

// openRepository builds the snapshot repository for the configured backend.
// The returned close function releases its connections.
func openRepository(ctx context.Context, cfg *config.Config, c clock.Clock) (snapshot.Repository, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.StorageMemory:
		return snapshot.NewMemory(&snapshot.MemoryConfig{Clock: c}), noop, nil

	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{})
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}
		if err := redis.Ping(ctx, client); err != nil {
			closeClient()
			return nil, nil, err
		}
		repo, err := snapshot.NewRedis(&snapshot.RedisConfig{Client: client, Clock: c})
		if err != nil {
			closeClient()
			return nil, nil, err
		}
		return repo, closeClient, nil

	case config.StorageSQLite, config.StoragePostgres, config.StorageMySQL:
		dialect, ok := database.DialectFor(cfg.StorageBackend)
		if !ok {
			return nil, nil, errors.InvalidArgumentf("unsupported storage backend %s", cfg.StorageBackend)
		}
		db, err := database.Open(ctx, dialect, database.DialectConfig{
			Path: cfg.DatabasePath,
			URL:  cfg.DatabaseURL,
		})
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				slog.Warn("Failed to close database", "error", err)
			}
		}
		repo, err := snapshot.NewSQL(ctx, &snapshot.SQLConfig{DB: db, Clock: c})
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		return repo, closeDB, nil
	}

	return nil, nil, errors.InvalidArgumentf("unsupported storage backend %s", cfg.StorageBackend)
}
