package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lang-sync/internal/config"
	"github.com/MKhiriev/go-lang-sync/internal/logger"
)

// Storages groups the local persistence ports used by the service layer.
type Storages struct {
	// Files is the local localization directory.
	Files LocalFiles
	// Versions reads and writes the manifest kept in Files.
	Versions VersionStore
	// Journal is the SQLite-backed history of synchronization passes.
	Journal SyncJournal

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens (creating if needed) the local directory cfg.LocalDir.
//  2. Opens the SQLite journal at cfg.JournalDSN and runs pending migrations.
//
// Call [Storages.Close] when done.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	files, err := NewLocalFiles(cfg.LocalDir)
	if err != nil {
		return nil, fmt.Errorf("local directory error: %w", err)
	}

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Files:    files,
		Versions: NewVersionStore(files, cfg.MarkerHistory, logger),
		Journal:  NewSyncJournal(db, logger),
		db:       db,
	}, nil
}

// Close releases the journal connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
