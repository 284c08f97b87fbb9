package repositories

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/shared"
	"github.com/zakbeatz/studio/internal/store"
)

// SessionRepository handles session CRUD against the snapshot store.
type SessionRepository struct {
	store   *store.Store
	artists *ArtistRepository
}

// NewSessionRepository creates a new SessionRepository backed by the given store
func NewSessionRepository(s *store.Store) *SessionRepository {
	return &SessionRepository{store: s, artists: NewArtistRepository(s)}
}

// Add inserts a new session and returns it with the assigned id.
//
// The referenced artist must exist. An empty type inherits the artist's
// current category, the hourly rate is captured from the artist when unset,
// and package bookings derive hours and price from the package label. When
// both start and end times are present on a non-package session the hours
// are recomputed from the time fields.
func (r *SessionRepository) Add(session models.Session) (models.Session, error) {
	artist, err := r.artists.Get(session.ArtistID)
	if err != nil {
		return models.Session{}, err
	}

	// Sessions are the most common post-init write: make sure a store that
	// predates newer columns is migrated before the insert.
	if err := r.ensureColumns(); err != nil {
		return models.Session{}, err
	}

	if session.Type == "" {
		session.Type = artist.Type
	}
	if session.Type == "" {
		session.Type = models.TypePacoteHoras
	}
	if session.HourlyRate == 0 {
		session.HourlyRate = artist.Rate
	}

	if session.IsPackage && session.PackageType != "" {
		if session.TotalHours == 0 {
			session.TotalHours = packageHours(session.PackageType)
		}
		if session.PaidAmount == 0 {
			session.PaidAmount = models.PackageValues[session.PackageType]
		}
	} else if session.Start != "" && session.End != "" {
		session.TotalHours = shared.ElapsedHours(session.Start, session.End, session.PauseStart, session.PauseEnd)
	}

	if err := session.Validate(); err != nil {
		return models.Session{}, fmt.Errorf("validation failed: %w", err)
	}

	result, err := r.store.DB().Exec(
		`INSERT INTO sessions
		 (date, artist_id, type, start, pause_start, pause_end, end, total_hours, hourly_rate, note, paid_amount, package_type, is_package)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.Date, session.ArtistID, session.Type, session.Start, session.PauseStart, session.PauseEnd,
		session.End, session.TotalHours, session.HourlyRate, session.Note, session.PaidAmount,
		session.PackageType, boolToInt(session.IsPackage),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read assigned id: %w", err)
	}
	session.ID = id

	return session, nil
}

// Get retrieves a session by id.
func (r *SessionRepository) Get(id int64) (models.Session, error) {
	row := r.store.DB().QueryRow(selectSessions+" WHERE id = ?", id)
	s, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return models.Session{}, fmt.Errorf("%w: %d", shared.ErrSessionNotFound, id)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to scan session: %w", err)
	}
	return s, nil
}

// Update applies the non-nil fields of the patch. An unknown id affects zero
// rows and returns nil. Whenever the merged session ends up with both start
// and end times on a non-package booking, total_hours is recomputed so the
// stored hours always agree with the time fields.
func (r *SessionRepository) Update(id int64, patch models.SessionPatch) error {
	if patch.IsZero() {
		return nil
	}

	current, err := r.Get(id)
	if err != nil {
		// Lenient no-op on unknown ids, same as the other mutations.
		return nil
	}

	merged := applyPatch(current, patch)
	if !merged.IsPackage && merged.Start != "" && merged.End != "" {
		merged.TotalHours = shared.ElapsedHours(merged.Start, merged.End, merged.PauseStart, merged.PauseEnd)
	}

	if err := merged.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, err = r.store.DB().Exec(
		`UPDATE sessions
		 SET date = ?, type = ?, start = ?, pause_start = ?, pause_end = ?, end = ?,
		     total_hours = ?, hourly_rate = ?, note = ?, paid_amount = ?, package_type = ?, is_package = ?
		 WHERE id = ?`,
		merged.Date, merged.Type, merged.Start, merged.PauseStart, merged.PauseEnd, merged.End,
		merged.TotalHours, merged.HourlyRate, merged.Note, merged.PaidAmount, merged.PackageType,
		boolToInt(merged.IsPackage), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// Delete removes the session unconditionally; absent ids are a no-op.
func (r *SessionRepository) Delete(id int64) error {
	if _, err := r.store.DB().Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// List retrieves all sessions, most recent first: date descending, ties
// broken by id descending.
func (r *SessionRepository) List() ([]models.Session, error) {
	rows, err := r.store.DB().Query(selectSessions + " ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return sessions, nil
}

// ensureColumns re-runs the schema check when a structural gap is detected.
func (r *SessionRepository) ensureColumns() error {
	for _, col := range []string{"type", "hourly_rate"} {
		has, err := store.HasColumn(r.store.DB(), "sessions", col)
		if err != nil {
			return fmt.Errorf("failed to inspect sessions table: %w", err)
		}
		if !has {
			return r.store.EnsureSchema()
		}
	}
	return nil
}

const selectSessions = `
	SELECT id, date, artist_id, type, start, pause_start, pause_end, end,
	       total_hours, hourly_rate, note, paid_amount, package_type, is_package
	FROM sessions`

// scanSession scans one sessions row from either *sql.Row or *sql.Rows.
func scanSession(scan func(...any) error) (models.Session, error) {
	var (
		s          models.Session
		sessType   sql.NullString
		start      sql.NullString
		pauseStart sql.NullString
		pauseEnd   sql.NullString
		end        sql.NullString
		hours      sql.NullFloat64
		rate       sql.NullFloat64
		note       sql.NullString
		paid       sql.NullFloat64
		pkg        sql.NullString
		isPackage  int
	)

	err := scan(&s.ID, &s.Date, &s.ArtistID, &sessType, &start, &pauseStart, &pauseEnd, &end,
		&hours, &rate, &note, &paid, &pkg, &isPackage)
	if err != nil {
		return models.Session{}, err
	}

	s.Type = strOrEmpty(sessType)
	s.Start = strOrEmpty(start)
	s.PauseStart = strOrEmpty(pauseStart)
	s.PauseEnd = strOrEmpty(pauseEnd)
	s.End = strOrEmpty(end)
	s.TotalHours = floatOrZero(hours)
	s.HourlyRate = floatOrZero(rate)
	s.Note = strOrEmpty(note)
	s.PaidAmount = floatOrZero(paid)
	s.PackageType = strOrEmpty(pkg)
	s.IsPackage = isPackage != 0

	return s, nil
}

// applyPatch merges the non-nil patch fields onto the session.
func applyPatch(s models.Session, p models.SessionPatch) models.Session {
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Start != nil {
		s.Start = *p.Start
	}
	if p.PauseStart != nil {
		s.PauseStart = *p.PauseStart
	}
	if p.PauseEnd != nil {
		s.PauseEnd = *p.PauseEnd
	}
	if p.End != nil {
		s.End = *p.End
	}
	if p.TotalHours != nil {
		s.TotalHours = *p.TotalHours
	}
	if p.HourlyRate != nil {
		s.HourlyRate = *p.HourlyRate
	}
	if p.Note != nil {
		s.Note = *p.Note
	}
	if p.PaidAmount != nil {
		s.PaidAmount = *p.PaidAmount
	}
	if p.PackageType != nil {
		s.PackageType = *p.PackageType
	}
	if p.IsPackage != nil {
		s.IsPackage = *p.IsPackage
	}
	return s
}

// packageHours parses the hour count out of a package label ("8h" -> 8).
func packageHours(label string) float64 {
	digits := strings.TrimRight(label, "h")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return float64(n)
}
