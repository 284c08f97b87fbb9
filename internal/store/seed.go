package store

import (
	"fmt"

	"github.com/zakbeatz/studio/internal/models"
)

// seedArtists and seedSessions are the studio's sample dataset, inserted on
// the very first run so the dashboard is not empty.
var seedArtists = []models.Artist{
	{ID: "vic", Name: "Vic Wendler", Rate: 37.5, Type: models.TypeProducaoSemanal},
	{ID: "felipe", Name: "Felipe Kaziran", Rate: 50, Type: models.TypeMixagem},
	{ID: "wild", Name: "Wild", Rate: 50, Type: models.TypePacoteHoras},
	{ID: "marina", Name: "Marina Santos", Rate: 45, Type: models.TypeProducaoQuinzenal},
	{ID: "carlos", Name: "Carlos Beat", Rate: 60, Type: models.TypeMasterizacao},
	{ID: "julia", Name: "Júlia Vocal", Rate: 55, Type: models.TypeGravacao},
	{ID: "rafael", Name: "Rafael Show", Rate: 75, Type: models.TypeMontagemShow},
	{ID: "bruno", Name: "Bruno Beats", Rate: 40, Type: models.TypeVendaBeat},
}

var seedSessions = []models.Session{
	{Date: "2025-08-01", ArtistID: "vic", Type: models.TypeProducaoSemanal, Start: "09:00", End: "13:00", TotalHours: 4, HourlyRate: 37.5, Note: "Produção"},
	{Date: "2025-08-02", ArtistID: "felipe", Type: models.TypeMixagem, Start: "14:00", PauseStart: "16:00", PauseEnd: "16:30", End: "18:00", TotalHours: 3.5, HourlyRate: 50, Note: "Mixagem", PaidAmount: 200},
	{Date: "2025-08-03", ArtistID: "marina", Type: models.TypeProducaoQuinzenal, Start: "10:00", End: "14:00", TotalHours: 4, HourlyRate: 45, Note: "Produção Quinzenal", PaidAmount: 100},
	{Date: "2025-08-04", ArtistID: "carlos", Type: models.TypeMasterizacao, Start: "15:00", End: "17:00", TotalHours: 2, HourlyRate: 60, Note: "Masterização EP"},
	{Date: "2025-08-05", ArtistID: "julia", Type: models.TypeGravacao, Start: "11:00", PauseStart: "13:00", PauseEnd: "14:00", End: "15:00", TotalHours: 3, HourlyRate: 55, Note: "Gravação Vocal", PaidAmount: 220},
	{Date: "2025-08-06", ArtistID: "rafael", Type: models.TypeMontagemShow, Start: "16:00", End: "20:00", TotalHours: 4, HourlyRate: 75, Note: "Montagem Show", PaidAmount: 150},
	{Date: "2025-08-07", ArtistID: "bruno", Type: models.TypeVendaBeat, Start: "13:00", End: "16:00", TotalHours: 3, HourlyRate: 40, Note: "Criação Beats"},
	{Date: "2025-08-08", ArtistID: "wild", Type: models.TypePacoteHoras, PackageType: "8h", TotalHours: 8, HourlyRate: 50, Note: "Pacote 8h", PaidAmount: 400, IsPackage: true},
}

// Seed inserts the sample dataset on demand.
func (s *Store) Seed() error {
	return s.seed()
}

// seed inserts the sample dataset. INSERT OR IGNORE keeps it harmless on a
// database that already carries any of the rows.
func (s *Store) seed() error {
	for _, a := range seedArtists {
		_, err := s.db.Exec(
			"INSERT OR IGNORE INTO artists (id, name, rate, type) VALUES (?, ?, ?, ?)",
			a.ID, a.Name, a.Rate, a.Type,
		)
		if err != nil {
			return fmt.Errorf("failed to seed artist %s: %w", a.ID, err)
		}
	}

	for i, sess := range seedSessions {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO sessions
			 (id, date, artist_id, type, start, pause_start, pause_end, end, total_hours, hourly_rate, note, paid_amount, package_type, is_package)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i+1, sess.Date, sess.ArtistID, sess.Type, sess.Start, sess.PauseStart, sess.PauseEnd, sess.End,
			sess.TotalHours, sess.HourlyRate, sess.Note, sess.PaidAmount, sess.PackageType, boolToInt(sess.IsPackage),
		)
		if err != nil {
			return fmt.Errorf("failed to seed session %d: %w", i+1, err)
		}
	}

	s.logger.Info("seeded sample dataset", "artists", len(seedArtists), "sessions", len(seedSessions))
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
