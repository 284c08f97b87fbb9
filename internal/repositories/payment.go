package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/shared"
)

// PaymentLedger is the append/remove log of payments, one JSON file per
// artist under the ledger directory.
//
// The ledger deliberately lives outside the snapshot database: a payment is
// a real-world event, so database export/import/clear and artist deletion
// leave payment history alone.
type PaymentLedger struct {
	dir string
}

// NewPaymentLedger creates a ledger rooted at dir.
func NewPaymentLedger(dir string) *PaymentLedger {
	return &PaymentLedger{dir: dir}
}

// Add appends a payment for the artist and returns the stored record.
func (l *PaymentLedger) Add(artistID string, amount float64) (models.PaymentRecord, error) {
	if err := checkLedgerID(artistID); err != nil {
		return models.PaymentRecord{}, err
	}

	record := models.PaymentRecord{
		ID:       shared.GenerateID(),
		ArtistID: artistID,
		Amount:   amount,
		Date:     time.Now(),
	}

	if err := record.Validate(); err != nil {
		return models.PaymentRecord{}, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	records, err := l.List(artistID)
	if err != nil {
		return models.PaymentRecord{}, err
	}

	records = append(records, record)
	if err := l.write(artistID, records); err != nil {
		return models.PaymentRecord{}, err
	}

	return record, nil
}

// List returns every payment for the artist in insertion order. A missing
// ledger file means no payments, not an error.
func (l *PaymentLedger) List(artistID string) ([]models.PaymentRecord, error) {
	if err := checkLedgerID(artistID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.file(artistID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger for %s: %w", artistID, err)
	}

	var records []models.PaymentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse ledger for %s: %w", artistID, err)
	}

	return records, nil
}

// Remove deletes a payment by id; absent ids are a no-op.
func (l *PaymentLedger) Remove(artistID, paymentID string) error {
	records, err := l.List(artistID)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != paymentID {
			kept = append(kept, r)
		}
	}

	if len(kept) == len(records) {
		return nil
	}

	return l.write(artistID, kept)
}

// Total sums every payment recorded for the artist.
func (l *PaymentLedger) Total(artistID string) (float64, error) {
	records, err := l.List(artistID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, r := range records {
		total += r.Amount
	}
	return total, nil
}

// Totals returns per-artist payment sums for the given artist ids.
func (l *PaymentLedger) Totals(artistIDs []string) (map[string]float64, error) {
	totals := make(map[string]float64, len(artistIDs))
	for _, id := range artistIDs {
		total, err := l.Total(id)
		if err != nil {
			return nil, err
		}
		totals[id] = total
	}
	return totals, nil
}

// file maps an artist id to its ledger path, one keyspace per artist.
func (l *PaymentLedger) file(artistID string) string {
	return filepath.Join(l.dir, fmt.Sprintf("payments_%s.json", artistID))
}

// checkLedgerID rejects artist ids that cannot name a ledger file. An id
// carrying path components would address a file outside the ledger
// directory.
func checkLedgerID(artistID string) error {
	if artistID == "" ||
		strings.ContainsAny(artistID, `/\`) ||
		artistID != filepath.Base(artistID) {
		return fmt.Errorf("%w: invalid artist id %q", shared.ErrInvalidInput, artistID)
	}
	return nil
}

func (l *PaymentLedger) write(artistID string, records []models.PaymentRecord) error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger for %s: %w", artistID, err)
	}

	if err := os.WriteFile(l.file(artistID), data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger for %s: %w", artistID, err)
	}

	return nil
}
