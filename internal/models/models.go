// package models defines the data model for the studio tracker
package models

import (
	"fmt"
	"strings"
	"time"
)

// Client types classify how an artist's work is billed. Duration-based types
// bill elapsed studio time at an hourly rate; pacote_horas bills flat-rate
// hour bundles.
const (
	TypeProducaoSemanal   = "producao_semanal"
	TypeProducaoQuinzenal = "producao_quinzenal"
	TypePacoteHoras       = "pacote_horas"
	TypeMixagem           = "mixagem"
	TypeMasterizacao      = "masterizacao"
	TypeGravacao          = "gravacao"
	TypeMontagemShow      = "montagem_show"
	TypeVendaBeat         = "venda_beat"
)

// ClientTypes lists every billing category in display order.
var ClientTypes = []string{
	TypeProducaoSemanal,
	TypeProducaoQuinzenal,
	TypePacoteHoras,
	TypeMixagem,
	TypeMasterizacao,
	TypeGravacao,
	TypeMontagemShow,
	TypeVendaBeat,
}

// ClientTypeNames maps billing categories to display labels.
var ClientTypeNames = map[string]string{
	TypeProducaoSemanal:   "Prod. Semanal",
	TypeProducaoQuinzenal: "Prod. Quinzenal",
	TypePacoteHoras:       "Pacote Horas",
	TypeMixagem:           "Mixagem",
	TypeMasterizacao:      "Masterização",
	TypeGravacao:          "Gravação",
	TypeMontagemShow:      "Show",
	TypeVendaBeat:         "Beat",
}

// PackageValues maps flat-rate package labels to their prices.
var PackageValues = map[string]float64{
	"4h":  200,
	"8h":  400,
	"12h": 600,
	"16h": 800,
	"20h": 1000,
}

// ValidClientType reports whether t names a known billing category.
func ValidClientType(t string) bool {
	_, ok := ClientTypeNames[t]
	return ok
}

// Artist is a billable client of the studio.
//
// The ID is derived from the name at creation time (lowercased, whitespace
// collapsed to underscores) and never changes afterwards.
type Artist struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
	Type string  `json:"type"`
}

// Validate checks if the artist's data is valid and returns an error if not
func (a Artist) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("artist name is required")
	}
	// The id names the artist's ledger file, so it must stay a single
	// path element.
	if strings.ContainsAny(a.ID, `/\`) {
		return fmt.Errorf("artist id must not contain path separators, got %q", a.ID)
	}
	if a.Rate < 0 {
		return fmt.Errorf("artist rate must be non-negative, got %v", a.Rate)
	}
	if a.Type != "" && !ValidClientType(a.Type) {
		return fmt.Errorf("unknown client type %q", a.Type)
	}
	return nil
}

// Session is one billable unit of work tied to an artist and a date.
//
// Time fields are "HH:MM" time-of-day strings and only carry meaning for
// duration-billed categories; package bookings record hours directly.
// HourlyRate captures the artist's rate when the session was created, so a
// later rate change does not rewrite history.
type Session struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	ArtistID    string  `json:"artistId"`
	Type        string  `json:"type"`
	Start       string  `json:"start"`
	PauseStart  string  `json:"pauseStart"`
	PauseEnd    string  `json:"pauseEnd"`
	End         string  `json:"end"`
	TotalHours  float64 `json:"totalHours"`
	HourlyRate  float64 `json:"hourlyRate"`
	Note        string  `json:"note"`
	PaidAmount  float64 `json:"paidAmount"`
	PackageType string  `json:"packageType"`
	IsPackage   bool    `json:"isPackage"`
}

// Validate checks if the session's data is valid and returns an error if not
func (s Session) Validate() error {
	if s.Date == "" {
		return fmt.Errorf("session date is required")
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("session date must be YYYY-MM-DD: %w", err)
	}
	if s.ArtistID == "" {
		return fmt.Errorf("session artist id is required")
	}
	if s.TotalHours < 0 {
		return fmt.Errorf("session hours must be non-negative, got %v", s.TotalHours)
	}
	if s.Type != "" && !ValidClientType(s.Type) {
		return fmt.Errorf("unknown client type %q", s.Type)
	}
	return nil
}

// Year returns the four-digit year of the session date, or "" when the date
// is malformed.
func (s Session) Year() string {
	if len(s.Date) >= 4 {
		return s.Date[:4]
	}
	return ""
}

// Month returns the zero-padded two-digit month of the session date, or ""
// when the date is malformed.
func (s Session) Month() string {
	if len(s.Date) >= 7 {
		return s.Date[5:7]
	}
	return ""
}

// PaymentRecord is one append-only ledger entry: a real-world payment by an
// artist, not tied to any particular session or billing period.
type PaymentRecord struct {
	ID       string    `json:"id"`
	ArtistID string    `json:"artistId"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

// Validate checks if the payment's data is valid and returns an error if not
func (p PaymentRecord) Validate() error {
	if p.ArtistID == "" {
		return fmt.Errorf("payment artist id is required")
	}
	if p.Amount <= 0 {
		return fmt.Errorf("payment amount must be positive, got %v", p.Amount)
	}
	return nil
}

// ArtistPatch is a partial update for an artist. Nil fields are left
// untouched.
type ArtistPatch struct {
	Name *string
	Rate *float64
	Type *string
}

// IsZero reports whether the patch carries no changes.
func (p ArtistPatch) IsZero() bool {
	return p.Name == nil && p.Rate == nil && p.Type == nil
}

// SessionPatch is a partial update for a session. Nil fields are left
// untouched.
type SessionPatch struct {
	Date        *string
	Type        *string
	Start       *string
	PauseStart  *string
	PauseEnd    *string
	End         *string
	TotalHours  *float64
	HourlyRate  *float64
	Note        *string
	PaidAmount  *float64
	PackageType *string
	IsPackage   *bool
}

// IsZero reports whether the patch carries no changes.
func (p SessionPatch) IsZero() bool {
	return p.Date == nil && p.Type == nil && p.Start == nil &&
		p.PauseStart == nil && p.PauseEnd == nil && p.End == nil &&
		p.TotalHours == nil && p.HourlyRate == nil && p.Note == nil &&
		p.PaidAmount == nil && p.PackageType == nil && p.IsPackage == nil
}
