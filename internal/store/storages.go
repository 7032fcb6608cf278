package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/logger"
)

// Storages groups the console's local repositories.
type Storages struct {
	// ActivityRepository is the SQLite-backed mutation journal.
	ActivityRepository ActivityRepository

	db *DB
}

// NewStorages opens the journal database at cfg.JournalDSN, creating the
// file when needed, and applies pending migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ActivityRepository: NewActivityRepository(db, logger),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
