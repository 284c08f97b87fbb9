// package store owns the SQLite snapshot that holds every artist and session.
package store

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/zakbeatz/studio/internal/shared"
)

// sqliteHeader is the magic prefix of every SQLite database file.
var sqliteHeader = []byte("SQLite format 3\x00")

// Store wraps the on-disk SQLite database. The database file itself is the
// snapshot: export reads it out, import replaces it wholesale.
type Store struct {
	path   string
	db     *sql.DB
	logger *log.Logger
}

// Opts configures Open.
type Opts struct {
	// Seed inserts the sample dataset when the database is created fresh.
	Seed bool
	// Logger defaults to a stderr logger when nil.
	Logger *log.Logger
}

// Open opens (or creates) the store at path.
//
// A missing file yields a fresh schema plus optional seed data. A file that
// cannot be opened or migrated is moved aside and replaced with an empty but
// structurally valid store; seeding is skipped in that case so a failed load
// is distinguishable from a first run.
func Open(path string, opts Opts) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	logger = shared.WithLogger(logger, "component", "store")

	fresh := true
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		if _, err := os.Stat(path); err == nil {
			fresh = false
		}
	}

	db, err := openAndMigrate(path, logger)
	if err != nil {
		if path == ":memory:" {
			return nil, err
		}

		// Fall back to an empty store rather than aborting startup.
		logger.Error("failed to load database, starting empty", "path", path, "error", err)
		if renameErr := quarantine(path); renameErr != nil {
			return nil, fmt.Errorf("failed to move unreadable database aside: %w", renameErr)
		}

		fresh = false
		if db, err = openAndMigrate(path, logger); err != nil {
			return nil, err
		}
	}

	s := &Store{path: path, db: db, logger: logger}

	if fresh && opts.Seed {
		if err := s.seed(); err != nil {
			logger.Warn("failed to insert seed data", "error", err)
		}
	}

	return s, nil
}

// openAndMigrate opens a connection and brings the schema up to date.
func openAndMigrate(path string, logger *log.Logger) (*sql.DB, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}

	// Single writer, single reader: one connection keeps the file consistent
	// for byte-level export.
	shared.ConfigureDatabase(db, 1, 1)

	if err := EnsureSchema(db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// quarantine renames an unreadable database file out of the way.
func quarantine(path string) error {
	backup := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if err := os.Rename(path, backup); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DB exposes the underlying connection for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// EnsureSchema re-runs the schema check on the live database. Safe to call
// at any time; a fully migrated store is a no-op.
func (s *Store) EnsureSchema() error {
	return EnsureSchema(s.db, s.logger)
}

// ExportBytes returns the full dataset as a portable SQLite database image.
func (s *Store) ExportBytes() ([]byte, error) {
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("studio-export-%d.db", time.Now().UnixNano()))
	defer os.Remove(tmp)

	if _, err := s.db.Exec("VACUUM INTO ?", tmp); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSnapshotFailed, err)
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSnapshotFailed, err)
	}

	return data, nil
}

// ImportBytes replaces the entire live dataset with the given database image
// and persists the result. The live dataset is left untouched unless the
// blob validates as a loadable database.
func (s *Store) ImportBytes(data []byte) error {
	if s.path == ":memory:" {
		return fmt.Errorf("%w: cannot import into an in-memory store", shared.ErrInvalidArgument)
	}
	if !bytes.HasPrefix(data, sqliteHeader) {
		return shared.ErrImportInvalid
	}

	tmp := s.path + ".import"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to stage import: %w", err)
	}
	defer os.Remove(tmp)

	// Validate and migrate the candidate before touching the live file.
	candidate, err := openAndMigrate(tmp, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrImportInvalid, err)
	}

	var integrity string
	if err := candidate.QueryRow("PRAGMA integrity_check").Scan(&integrity); err != nil || integrity != "ok" {
		candidate.Close()
		return fmt.Errorf("%w: integrity check failed (%s)", shared.ErrImportInvalid, integrity)
	}
	candidate.Close()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to release live database: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		// Try to get the old database back before reporting failure.
		if db, reopenErr := openAndMigrate(s.path, s.logger); reopenErr == nil {
			s.db = db
		}
		return fmt.Errorf("failed to swap database file: %w", err)
	}

	db, err := openAndMigrate(s.path, s.logger)
	if err != nil {
		return fmt.Errorf("failed to reopen imported database: %w", err)
	}

	s.db = db
	s.logger.Info("database imported", "path", s.path, "bytes", len(data))
	return nil
}

// Clear deletes every session and artist and persists the empty state.
// Payment ledgers live outside the database and are not touched.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM artists"); err != nil {
		return fmt.Errorf("failed to clear artists: %w", err)
	}

	return tx.Commit()
}
