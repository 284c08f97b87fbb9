package models

import "testing"

func TestArtistValidate(t *testing.T) {
	tc := []struct {
		name    string
		artist  Artist
		wantErr bool
	}{
		{name: "complete", artist: Artist{ID: "vic", Name: "Vic Wendler", Rate: 37.5, Type: TypeProducaoSemanal}},
		{name: "zero rate allowed", artist: Artist{ID: "x", Name: "X", Rate: 0}},
		{name: "empty name", artist: Artist{ID: "x", Name: "  "}, wantErr: true},
		{name: "negative rate", artist: Artist{ID: "x", Name: "X", Rate: -1}, wantErr: true},
		{name: "unknown type", artist: Artist{ID: "x", Name: "X", Type: "karaoke"}, wantErr: true},
		{name: "id with path separator", artist: Artist{ID: "a/../evil", Name: "X"}, wantErr: true},
		{name: "id with backslash", artist: Artist{ID: `a\evil`, Name: "X"}, wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.artist.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestSessionValidate(t *testing.T) {
	tc := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{name: "complete", session: Session{Date: "2025-08-01", ArtistID: "vic", Type: TypeMixagem, TotalHours: 4}},
		{name: "missing date", session: Session{ArtistID: "vic"}, wantErr: true},
		{name: "malformed date", session: Session{Date: "01/08/2025", ArtistID: "vic"}, wantErr: true},
		{name: "missing artist", session: Session{Date: "2025-08-01"}, wantErr: true},
		{name: "negative hours", session: Session{Date: "2025-08-01", ArtistID: "vic", TotalHours: -2}, wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestSessionDateParts(t *testing.T) {
	s := Session{Date: "2025-08-02"}
	if s.Year() != "2025" {
		t.Errorf("Year() = %q, want 2025", s.Year())
	}
	if s.Month() != "08" {
		t.Errorf("Month() = %q, want 08", s.Month())
	}

	empty := Session{}
	if empty.Year() != "" || empty.Month() != "" {
		t.Error("empty date should yield empty year and month")
	}
}

func TestPaymentValidate(t *testing.T) {
	if err := (PaymentRecord{ArtistID: "vic", Amount: 150}).Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
	if err := (PaymentRecord{ArtistID: "vic", Amount: 0}).Validate(); err == nil {
		t.Error("zero amount should not validate")
	}
	if err := (PaymentRecord{Amount: 10}).Validate(); err == nil {
		t.Error("missing artist id should not validate")
	}
}

func TestPatchIsZero(t *testing.T) {
	if !(ArtistPatch{}).IsZero() {
		t.Error("empty artist patch should be zero")
	}
	rate := 60.0
	if (ArtistPatch{Rate: &rate}).IsZero() {
		t.Error("artist patch with rate should not be zero")
	}

	if !(SessionPatch{}).IsZero() {
		t.Error("empty session patch should be zero")
	}
	note := "mix"
	if (SessionPatch{Note: &note}).IsZero() {
		t.Error("session patch with note should not be zero")
	}
}
