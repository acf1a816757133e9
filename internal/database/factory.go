package database

import (
	"fmt"
	"os"
	"path/filepath"

	"photosort/internal/config"
	"photosort/internal/photosort"
)

// journalFile is the SQLite file name inside the configured data directory.
const journalFile = "photosort.db"

// NewJournalFromConfig creates a Journal implementation based on the database config type.
// The returned close function releases the journal and is never nil.
func NewJournalFromConfig(cfg config.DatabaseConfig) (photosort.Journal, func() error, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("creating data directory: %w", err)
		}
		db, err := NewSQLiteDatabase(filepath.Join(cfg.DataDir, journalFile))
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case "memory":
		db, err := NewSQLiteDatabase(":memory:")
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case "none":
		return photosort.NopJournal{}, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
