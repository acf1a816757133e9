package database

import (
	"context"
	"database/sql"
	"fmt"

	"photosort/internal/database/migrations"
	"photosort/internal/photosort"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase is the run journal backed by SQLite.
type SQLiteDatabase struct {
	db   *sql.DB
	path string
}

// NewSQLiteDatabase opens the journal at path and brings its schema up to date.
// path can be a file path or ":memory:" for an in-memory journal.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteDatabase{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection.
// path can be a file path or ":memory:" for an in-memory database.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writers and keeps :memory: databases
	// from splitting across connections.
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Run operations

func (s *SQLiteDatabase) CreateRun(run *photosort.Run) error {
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO runs (id, started_at, source_dir, target_dir, group_by, rename_files, date_format, status, files, conflicts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC(), run.SourceDir, run.TargetDir, run.Grouping, run.Rename, run.DateFormat, run.Status, run.Files, run.Conflicts,
	)
	if err != nil {
		return fmt.Errorf("creating run: %w", err)
	}
	return nil
}

// FinishRun updates the run row and inserts its entries in one transaction.
func (s *SQLiteDatabase) FinishRun(run *photosort.Run, entries []photosort.JournalEntry) error {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, status = ?, files = ?, conflicts = ?
		WHERE id = ?`,
		run.FinishedAt.UTC(), run.Status, run.Files, run.Conflicts, run.ID,
	)
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %s not found", run.ID)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_entries (run_id, seq, source, target, outcome)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing entry insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(ctx, run.ID, i, e.Source, e.Target, e.Outcome); err != nil {
			return fmt.Errorf("inserting entry %s: %w", e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A non-positive limit returns all runs.
func (s *SQLiteDatabase) ListRuns(limit int) ([]*photosort.Run, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(context.Background(), `
		SELECT id, started_at, finished_at, source_dir, target_dir, group_by, rename_files, date_format, status, files, conflicts
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*photosort.Run
	for rows.Next() {
		var (
			r        photosort.Run
			finished sql.NullTime
		)
		if err := rows.Scan(&r.ID, &r.StartedAt, &finished, &r.SourceDir, &r.TargetDir, &r.Grouping,
			&r.Rename, &r.DateFormat, &r.Status, &r.Files, &r.Conflicts); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = finished.Time
		}
		runs = append(runs, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// ListEntries returns the entries of a run in the order they were recorded.
func (s *SQLiteDatabase) ListEntries(runID string) ([]*photosort.JournalEntry, error) {
	rows, err := s.db.QueryContext(context.Background(), `
		SELECT source, target, outcome
		FROM run_entries
		WHERE run_id = ?
		ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing run entries: %w", err)
	}
	defer rows.Close()

	var entries []*photosort.JournalEntry
	for rows.Next() {
		var e photosort.JournalEntry
		if err := rows.Scan(&e.Source, &e.Target, &e.Outcome); err != nil {
			return nil, fmt.Errorf("scanning run entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing run entries: %w", err)
	}
	return entries, nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteDatabase) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteDatabase) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time check that SQLiteDatabase implements photosort.Journal
var _ photosort.Journal = (*SQLiteDatabase)(nil)
