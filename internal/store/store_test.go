package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/zakbeatz/studio/internal/shared"
)

func testOpts() Opts {
	return Opts{Logger: shared.NewLogger(io.Discard)}
}

func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

func TestOpen(t *testing.T) {
	t.Run("fresh database with seed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "studio.db")

		opts := testOpts()
		opts.Seed = true
		s, err := Open(path, opts)
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer s.Close()

		if got := countRows(t, s, "artists"); got != 8 {
			t.Errorf("expected 8 seeded artists, got %d", got)
		}
		if got := countRows(t, s, "sessions"); got != 8 {
			t.Errorf("expected 8 seeded sessions, got %d", got)
		}
	})

	t.Run("fresh database without seed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "studio.db")

		s, err := Open(path, testOpts())
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer s.Close()

		if got := countRows(t, s, "artists"); got != 0 {
			t.Errorf("expected empty store, got %d artists", got)
		}
	})

	t.Run("existing database is not re-seeded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "studio.db")

		opts := testOpts()
		opts.Seed = true
		s, err := Open(path, opts)
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		if _, err := s.DB().Exec("DELETE FROM sessions WHERE artist_id = 'vic'"); err != nil {
			t.Fatalf("failed to delete session: %v", err)
		}
		s.Close()

		s, err = Open(path, opts)
		if err != nil {
			t.Fatalf("failed to reopen store: %v", err)
		}
		defer s.Close()

		if got := countRows(t, s, "sessions"); got != 7 {
			t.Errorf("expected 7 sessions after reopen, got %d", got)
		}
	})

	t.Run("unreadable file falls back to empty store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "studio.db")
		if err := os.WriteFile(path, []byte("not a database at all"), 0644); err != nil {
			t.Fatalf("failed to write junk file: %v", err)
		}

		opts := testOpts()
		opts.Seed = true
		s, err := Open(path, opts)
		if err != nil {
			t.Fatalf("expected fallback, got error: %v", err)
		}
		defer s.Close()

		// Load failure must not be mistaken for a first run.
		if got := countRows(t, s, "artists"); got != 0 {
			t.Errorf("fallback store should be empty, got %d artists", got)
		}

		matches, _ := filepath.Glob(path + ".corrupt-*")
		if len(matches) != 1 {
			t.Errorf("expected the unreadable file to be moved aside, found %d backups", len(matches))
		}
	})
}

func TestExportImport(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "studio.db")

		opts := testOpts()
		opts.Seed = true
		s, err := Open(path, opts)
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer s.Close()

		data, err := s.ExportBytes()
		if err != nil {
			t.Fatalf("failed to export: %v", err)
		}
		if len(data) == 0 {
			t.Fatal("export produced no bytes")
		}

		if err := s.Clear(); err != nil {
			t.Fatalf("failed to clear: %v", err)
		}
		if got := countRows(t, s, "artists"); got != 0 {
			t.Fatalf("expected cleared store, got %d artists", got)
		}

		if err := s.ImportBytes(data); err != nil {
			t.Fatalf("failed to import: %v", err)
		}

		if got := countRows(t, s, "artists"); got != 8 {
			t.Errorf("expected 8 artists after import, got %d", got)
		}
		if got := countRows(t, s, "sessions"); got != 8 {
			t.Errorf("expected 8 sessions after import, got %d", got)
		}
	})

	t.Run("rejects malformed blob and keeps live data", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "studio.db")

		opts := testOpts()
		opts.Seed = true
		s, err := Open(path, opts)
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer s.Close()

		err = s.ImportBytes([]byte("definitely not a sqlite file"))
		if !errors.Is(err, shared.ErrImportInvalid) {
			t.Fatalf("expected ErrImportInvalid, got %v", err)
		}

		if got := countRows(t, s, "artists"); got != 8 {
			t.Errorf("live data should be untouched, got %d artists", got)
		}
	})
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.db")

	opts := testOpts()
	opts.Seed = true
	s, err := Open(path, opts)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if err := s.Clear(); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	if got := countRows(t, s, "artists"); got != 0 {
		t.Errorf("expected 0 artists after clear, got %d", got)
	}
	if got := countRows(t, s, "sessions"); got != 0 {
		t.Errorf("expected 0 sessions after clear, got %d", got)
	}
}
