// Package database provides the durable storage backends the persistence
// adapter can run on. Badger is the default (embedded, no external
// process); sqlite and redis are alternatives selected by configuration.
package database

import (
	"fmt"

	"go.uber.org/zap"

	"deal-pipeline-api/internal/config"
	"deal-pipeline-api/internal/persist"
)

// OpenKV opens the storage backend selected by the configuration
func OpenKV(cfg *config.Config, logger *zap.Logger) (persist.KV, error) {
	switch cfg.Storage.Driver {
	case config.StorageBadger:
		return OpenBadger(cfg.Storage.Path, logger)
	case config.StorageSQLite:
		return OpenSQLite(cfg.Storage.DSN, logger)
	case config.StorageRedis:
		addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		return OpenRedis(addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	case config.StorageMemory:
		return persist.NewMemoryKV(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
