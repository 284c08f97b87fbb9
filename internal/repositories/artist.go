package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/shared"
	"github.com/zakbeatz/studio/internal/store"
)

// ArtistRepository handles artist CRUD against the snapshot store.
//
// Mutations on ids that do not exist are silent no-ops across the board; the
// store is single-user and low stakes, so "affected zero rows" is not worth
// an error.
type ArtistRepository struct {
	store *store.Store
}

// NewArtistRepository creates a new ArtistRepository backed by the given store
func NewArtistRepository(s *store.Store) *ArtistRepository {
	return &ArtistRepository{store: s}
}

// Add inserts a new artist. The id is derived from the name when absent, and
// declared defaults cover an omitted rate or type. Inserting an id that
// already exists is an idempotent no-op, not an error.
func (r *ArtistRepository) Add(artist models.Artist) (models.Artist, error) {
	if artist.ID == "" {
		artist.ID = shared.Slugify(artist.Name)
	}
	if artist.Rate == 0 {
		artist.Rate = 50
	}
	if artist.Type == "" {
		artist.Type = models.TypePacoteHoras
	}

	if err := artist.Validate(); err != nil {
		return models.Artist{}, fmt.Errorf("validation failed: %w", err)
	}

	_, err := r.store.DB().Exec(
		"INSERT OR IGNORE INTO artists (id, name, rate, type) VALUES (?, ?, ?, ?)",
		artist.ID, artist.Name, artist.Rate, artist.Type,
	)
	if err != nil {
		return models.Artist{}, fmt.Errorf("failed to insert artist: %w", err)
	}

	return artist, nil
}

// Get retrieves an artist by id.
func (r *ArtistRepository) Get(id string) (models.Artist, error) {
	var a models.Artist
	err := r.store.DB().QueryRow(
		"SELECT id, name, rate, type FROM artists WHERE id = ?", id,
	).Scan(&a.ID, &a.Name, &a.Rate, &a.Type)
	if err == sql.ErrNoRows {
		return models.Artist{}, fmt.Errorf("%w: %s", shared.ErrArtistNotFound, id)
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("failed to scan artist: %w", err)
	}
	return a, nil
}

// Update applies the non-nil fields of the patch. An unknown id affects zero
// rows and returns nil.
func (r *ArtistRepository) Update(id string, patch models.ArtistPatch) error {
	if patch.IsZero() {
		return nil
	}

	sets := []string{}
	args := []any{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Rate != nil {
		if *patch.Rate < 0 {
			return fmt.Errorf("%w: rate must be non-negative", shared.ErrInvalidInput)
		}
		sets = append(sets, "rate = ?")
		args = append(args, *patch.Rate)
	}
	if patch.Type != nil {
		if !models.ValidClientType(*patch.Type) {
			return fmt.Errorf("%w: unknown client type %q", shared.ErrInvalidInput, *patch.Type)
		}
		sets = append(sets, "type = ?")
		args = append(args, *patch.Type)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE artists SET %s WHERE id = ?", strings.Join(sets, ", "))

	if _, err := r.store.DB().Exec(query, args...); err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}
	return nil
}

// Delete removes the artist and every session referencing it. Sessions go
// first so a reader never observes a dangling reference.
func (r *ArtistRepository) Delete(id string) error {
	tx, err := r.store.DB().Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions WHERE artist_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete artist sessions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM artists WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	return tx.Commit()
}

// List retrieves all artists ordered by name.
func (r *ArtistRepository) List() ([]models.Artist, error) {
	rows, err := r.store.DB().Query("SELECT id, name, rate, type FROM artists ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.Rate, &a.Type); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return artists, nil
}
