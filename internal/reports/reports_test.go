package reports

import (
	"testing"

	"github.com/zakbeatz/studio/internal/models"
)

func TestFilterMatchSession(t *testing.T) {
	session := models.Session{Date: "2025-08-02", ArtistID: "felipe", Type: models.TypeMixagem, TotalHours: 3.5}

	tc := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter matches", filter: Filter{}, want: true},
		{name: "all wildcards match", filter: Filter{Artist: All, Type: All, Year: All, Month: All}, want: true},
		{name: "artist match", filter: Filter{Artist: "felipe"}, want: true},
		{name: "artist mismatch", filter: Filter{Artist: "vic"}, want: false},
		{name: "type match", filter: Filter{Type: models.TypeMixagem}, want: true},
		{name: "type mismatch", filter: Filter{Type: models.TypeGravacao}, want: false},
		{name: "year match", filter: Filter{Year: "2025"}, want: true},
		{name: "year mismatch", filter: Filter{Year: "2024"}, want: false},
		{name: "month match zero padded", filter: Filter{Month: "08"}, want: true},
		{name: "month mismatch", filter: Filter{Month: "07"}, want: false},
		{name: "conjunction fails on one predicate", filter: Filter{Artist: "felipe", Month: "07"}, want: false},
		{name: "full conjunction", filter: Filter{Artist: "felipe", Type: models.TypeMixagem, Year: "2025", Month: "08"}, want: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchSession(session); got != tt.want {
				t.Errorf("MatchSession() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("hours, total, paid, remaining", func(t *testing.T) {
		artists := []models.Artist{{ID: "a", Name: "A", Rate: 10, Type: models.TypeMixagem}}
		sessions := []models.Session{{ID: 1, Date: "2025-08-01", ArtistID: "a", Type: models.TypeMixagem, TotalHours: 4}}
		paid := map[string]float64{"a": 15}

		report := Summarize(artists, sessions, paid, Filter{})

		if len(report.Summaries) != 1 {
			t.Fatalf("expected 1 summary, got %d", len(report.Summaries))
		}

		s := report.Summaries[0]
		if s.Total != 40 {
			t.Errorf("expected total 40, got %v", s.Total)
		}
		if s.Paid != 15 {
			t.Errorf("expected paid 15, got %v", s.Paid)
		}
		if s.Remaining != 25 {
			t.Errorf("expected remaining 25, got %v", s.Remaining)
		}
		if s.Status() != StatusDue {
			t.Errorf("expected status due, got %s", s.Status())
		}
	})

	t.Run("total uses the artist's current rate", func(t *testing.T) {
		// The session captured 10/h at creation; the artist has since moved
		// to 20/h and the rollup follows the current rate.
		artists := []models.Artist{{ID: "a", Name: "A", Rate: 20, Type: models.TypeMixagem}}
		sessions := []models.Session{{ID: 1, Date: "2025-08-01", ArtistID: "a", Type: models.TypeMixagem, TotalHours: 2, HourlyRate: 10}}

		report := Summarize(artists, sessions, nil, Filter{})

		if len(report.Summaries) != 1 || report.Summaries[0].Total != 40 {
			t.Fatalf("expected total 40 at the current rate, got %+v", report.Summaries)
		}
	})

	t.Run("ledger is not narrowed by date filters", func(t *testing.T) {
		artists := []models.Artist{{ID: "a", Name: "A", Rate: 10, Type: models.TypeMixagem}}
		sessions := []models.Session{
			{ID: 1, Date: "2025-08-01", ArtistID: "a", Type: models.TypeMixagem, TotalHours: 4},
			{ID: 2, Date: "2024-01-01", ArtistID: "a", Type: models.TypeMixagem, TotalHours: 6},
		}
		paid := map[string]float64{"a": 55}

		report := Summarize(artists, sessions, paid, Filter{Year: "2025"})

		s := report.Summaries[0]
		if s.Hours != 4 {
			t.Errorf("expected filtered hours 4, got %v", s.Hours)
		}
		if s.Paid != 55 {
			t.Errorf("paid must cover the whole ledger, got %v", s.Paid)
		}
	})

	t.Run("artist with zero filtered total is hidden", func(t *testing.T) {
		artists := []models.Artist{
			{ID: "a", Name: "A", Rate: 10, Type: models.TypeMixagem},
			{ID: "b", Name: "B", Rate: 10, Type: models.TypeGravacao},
		}
		sessions := []models.Session{
			{ID: 1, Date: "2025-08-01", ArtistID: "a", Type: models.TypeMixagem, TotalHours: 4},
			{ID: 2, Date: "2024-08-01", ArtistID: "b", Type: models.TypeGravacao, TotalHours: 3},
		}

		report := Summarize(artists, sessions, nil, Filter{Year: "2025"})

		if len(report.Summaries) != 1 || report.Summaries[0].Artist.ID != "a" {
			t.Fatalf("expected only artist a to be visible, got %+v", report.Summaries)
		}
	})

	t.Run("artist whose own type fails the filter is hidden", func(t *testing.T) {
		// The artist is categorized gravacao but has a mixagem session;
		// filtering by mixagem must hide the artist despite matching hours.
		artists := []models.Artist{{ID: "b", Name: "B", Rate: 10, Type: models.TypeGravacao}}
		sessions := []models.Session{{ID: 1, Date: "2025-08-01", ArtistID: "b", Type: models.TypeMixagem, TotalHours: 3}}

		report := Summarize(artists, sessions, nil, Filter{Type: models.TypeMixagem})

		if len(report.Summaries) != 0 {
			t.Fatalf("expected no visible artists, got %+v", report.Summaries)
		}
	})

	t.Run("overpayment and settlement statuses", func(t *testing.T) {
		artists := []models.Artist{
			{ID: "over", Name: "Over", Rate: 10, Type: models.TypeMixagem},
			{ID: "even", Name: "Even", Rate: 10, Type: models.TypeMixagem},
		}
		sessions := []models.Session{
			{ID: 1, Date: "2025-08-01", ArtistID: "over", Type: models.TypeMixagem, TotalHours: 1},
			{ID: 2, Date: "2025-08-01", ArtistID: "even", Type: models.TypeMixagem, TotalHours: 1},
		}
		paid := map[string]float64{"over": 50, "even": 10}

		report := Summarize(artists, sessions, paid, Filter{})

		byID := map[string]Summary{}
		for _, s := range report.Summaries {
			byID[s.Artist.ID] = s
		}

		if got := byID["over"]; got.Remaining != -40 || got.Status() != StatusOverpaid {
			t.Errorf("expected overpaid with remaining -40, got %+v status %s", got, got.Status())
		}
		if got := byID["even"]; got.Remaining != 0 || got.Status() != StatusSettled {
			t.Errorf("expected settled with remaining 0, got %+v status %s", got, got.Status())
		}
	})

	t.Run("grand total and ordering", func(t *testing.T) {
		artists := []models.Artist{
			{ID: "w", Name: "Wild", Rate: 10, Type: models.TypeMixagem},
			{ID: "b", Name: "Bruno", Rate: 10, Type: models.TypeMixagem},
		}
		sessions := []models.Session{
			{ID: 1, Date: "2025-08-01", ArtistID: "w", Type: models.TypeMixagem, TotalHours: 1},
			{ID: 2, Date: "2025-08-01", ArtistID: "b", Type: models.TypeMixagem, TotalHours: 2},
		}
		paid := map[string]float64{"w": 5, "b": 10}

		report := Summarize(artists, sessions, paid, Filter{})

		if report.TotalPaid != 15 {
			t.Errorf("expected grand total paid 15, got %v", report.TotalPaid)
		}
		if report.SessionCount != 2 {
			t.Errorf("expected 2 filtered sessions, got %d", report.SessionCount)
		}
		if report.Summaries[0].Artist.Name != "Bruno" {
			t.Errorf("expected summaries ordered by name, got %s first", report.Summaries[0].Artist.Name)
		}
	})
}
