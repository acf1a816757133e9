// Package migrations holds the run journal schema and applies it with
// golang-migrate from files embedded in the binary.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed files/*.sql
var migrationFiles embed.FS

// ErrNoSchema is returned when the database has never been migrated.
var ErrNoSchema = errors.New("database has no schema version (needs migration)")

// CheckDBMigrationStatus returns nil when the journal schema is at the
// version embedded in this binary.
func CheckDBMigrationStatus(db *sql.DB) error {
	version, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	latest, err := LatestVersion()
	if err != nil {
		return err
	}

	switch {
	case version < latest:
		return fmt.Errorf("journal schema is at version %d but latest is %d (%d migrations behind)",
			version, latest, latest-version)
	case version > latest:
		return fmt.Errorf("journal schema version %d is ahead of binary version %d (binary needs update)",
			version, latest)
	}
	return nil
}

// SchemaVersion returns the applied schema version. A dirty database is an error.
func SchemaVersion(db *sql.DB) (uint, error) {
	m, err := newMigrate(db)
	if err != nil {
		return 0, err
	}
	// m is not closed: closing it would close db, which the caller owns.

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, ErrNoSchema
		}
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("database is in dirty state at version %d (migration failed previously)", version)
	}
	return version, nil
}

// LatestVersion returns the highest migration version embedded in the binary.
func LatestVersion() (uint, error) {
	src, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return 0, fmt.Errorf("reading migration files: %w", err)
	}
	defer src.Close()

	return lastVersion(src)
}

// MigrateUp applies all pending migrations. An up-to-date database is not an error.
func MigrateUp(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating journal schema: %w", err)
	}
	return nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return nil, fmt.Errorf("creating migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}
	return m, nil
}

// lastVersion walks the source from its first version until Next reports
// there is nothing further.
func lastVersion(src source.Driver) (uint, error) {
	version, err := src.First()
	if err != nil {
		return 0, fmt.Errorf("finding first migration: %w", err)
	}
	for {
		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			return version, nil
		}
		if err != nil {
			return 0, fmt.Errorf("finding migration after %d: %w", version, err)
		}
		version = next
	}
}
