package store

import (
	"io"
	"testing"

	"github.com/zakbeatz/studio/internal/shared"
)

func TestEnsureSchema(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	t.Run("creates tables and applies migrations", func(t *testing.T) {
		db, err := shared.NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := EnsureSchema(db, logger); err != nil {
			t.Fatalf("failed to ensure schema: %v", err)
		}

		for _, col := range []string{"type", "hourly_rate"} {
			has, err := HasColumn(db, "sessions", col)
			if err != nil {
				t.Fatalf("failed to inspect sessions: %v", err)
			}
			if !has {
				t.Errorf("sessions table should have column %s", col)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		db, err := shared.NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := EnsureSchema(db, logger); err != nil {
			t.Fatalf("first run failed: %v", err)
		}

		before, err := tableColumns(db, "sessions")
		if err != nil {
			t.Fatalf("failed to inspect sessions: %v", err)
		}

		if err := EnsureSchema(db, logger); err != nil {
			t.Fatalf("second run failed: %v", err)
		}

		after, err := tableColumns(db, "sessions")
		if err != nil {
			t.Fatalf("failed to inspect sessions: %v", err)
		}

		if len(before) != len(after) {
			t.Errorf("column count changed on second run: %d -> %d", len(before), len(after))
		}
	})

	t.Run("migrates the original shape in one pass", func(t *testing.T) {
		db, err := shared.NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		// First-release shape: no type, no hourly_rate column.
		if _, err := db.Exec(createArtists); err != nil {
			t.Fatalf("failed to create artists: %v", err)
		}
		if _, err := db.Exec(createSessions); err != nil {
			t.Fatalf("failed to create sessions: %v", err)
		}
		if _, err := db.Exec(
			"INSERT INTO sessions (date, artist_id, total_hours) VALUES ('2024-01-10', 'vic', 2)",
		); err != nil {
			t.Fatalf("failed to insert legacy row: %v", err)
		}

		if err := EnsureSchema(db, logger); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}

		var sessionType string
		var hourlyRate float64
		err = db.QueryRow("SELECT type, hourly_rate FROM sessions WHERE artist_id = 'vic'").Scan(&sessionType, &hourlyRate)
		if err != nil {
			t.Fatalf("failed to read migrated row: %v", err)
		}

		if sessionType != "pacote_horas" {
			t.Errorf("expected backfilled type pacote_horas, got %s", sessionType)
		}
		if hourlyRate != 0 {
			t.Errorf("expected backfilled hourly_rate 0, got %v", hourlyRate)
		}
	})
}
