package store

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// createArtists and createSessions define the base table shape. Columns
// added after the first release are NOT listed here; they arrive through
// sessionMigrations so that a database of any age migrates forward in one
// pass.
const (
	createArtists = `
		CREATE TABLE IF NOT EXISTS artists (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			rate REAL DEFAULT 50,
			type TEXT DEFAULT 'pacote_horas'
		)
	`

	createSessions = `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			artist_id TEXT NOT NULL,
			start TEXT,
			pause_start TEXT,
			pause_end TEXT,
			end TEXT,
			total_hours REAL DEFAULT 0,
			note TEXT,
			paid_amount REAL DEFAULT 0,
			package_type TEXT,
			is_package INTEGER DEFAULT 0,
			FOREIGN KEY (artist_id) REFERENCES artists (id)
		)
	`
)

// columnSpec declares one additive migration: a column plus the SQL literal
// used both as its default and as the backfill for existing rows.
type columnSpec struct {
	Name       string
	Type       string
	DefaultSQL string
}

// sessionMigrations lists every column added to sessions since the base
// schema, oldest first. Additive only: columns are never removed or renamed.
var sessionMigrations = []columnSpec{
	{Name: "type", Type: "TEXT", DefaultSQL: "'pacote_horas'"},
	{Name: "hourly_rate", Type: "REAL", DefaultSQL: "0"},
}

// EnsureSchema creates missing tables and applies every pending additive
// column migration, backfilling existing rows with the declared default.
//
// Idempotent: a second call on the same database changes nothing. Each
// column is applied and persisted individually, so a failure partway leaves
// a consistent store on an older shape rather than a half-migrated one.
// Individual column failures are logged and skipped; only inspection
// failures abort.
func EnsureSchema(db *sql.DB, logger *log.Logger) error {
	if _, err := db.Exec(createArtists); err != nil {
		return fmt.Errorf("failed to create artists table: %w", err)
	}
	if _, err := db.Exec(createSessions); err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}

	existing, err := tableColumns(db, "sessions")
	if err != nil {
		return fmt.Errorf("failed to inspect sessions table: %w", err)
	}

	for _, col := range sessionMigrations {
		if existing[col.Name] {
			continue
		}

		logger.Info("adding column to sessions", "column", col.Name)

		alter := fmt.Sprintf("ALTER TABLE sessions ADD COLUMN %s %s DEFAULT %s", col.Name, col.Type, col.DefaultSQL)
		if _, err := db.Exec(alter); err != nil {
			logger.Error("migration step failed", "column", col.Name, "error", err)
			continue
		}

		backfill := fmt.Sprintf("UPDATE sessions SET %s = %s WHERE %s IS NULL", col.Name, col.DefaultSQL, col.Name)
		if _, err := db.Exec(backfill); err != nil {
			logger.Error("backfill failed", "column", col.Name, "error", err)
		}
	}

	return nil
}

// HasColumn reports whether the named column exists on the table.
func HasColumn(db *sql.DB, table, column string) (bool, error) {
	cols, err := tableColumns(db, table)
	if err != nil {
		return false, err
	}
	return cols[column], nil
}

// tableColumns returns the set of column names on a table via PRAGMA
// table_info.
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		cols[name] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cols, nil
}
