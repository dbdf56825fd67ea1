package cli

import (
	"context"
	"fmt"
	"log/slog"

	"sanakirja/internal/config"
	"sanakirja/internal/infrastructure/database"
	"sanakirja/internal/infrastructure/filestore"
	"sanakirja/internal/infrastructure/memstore"
	"sanakirja/internal/ports/output"
)

// openStore returns the configured repository and a function releasing it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (output.DictionaryRepository, func(), error) {
	switch cfg.Store {
	case config.StoreFile:
		logger.Debug("using file store", "path", cfg.File)
		return filestore.New(cfg.File), func() {}, nil
	case config.StoreMemory:
		logger.Debug("using memory store")
		return memstore.New(), func() {}, nil
	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		return database.NewWordPairRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
