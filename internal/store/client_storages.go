package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories backed by the SQLite cache.
type ClientStorages struct {
	ItemRepository    LocalItemRepository
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite cache, migrates it and builds the
// repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ItemRepository:    NewLocalItemRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the cache database.
func (c *ClientStorages) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
