// package reports derives per-artist billing figures from filtered sessions
// and the payment ledger.
package reports

import (
	"sort"

	"github.com/zakbeatz/studio/internal/models"
)

// All is the wildcard filter value; the empty string is treated the same.
const All = "all"

// Filter narrows the session view. Every populated predicate must match
// (conjunctive): artist by id, type by the session's own category, year as
// four digits and month as two zero-padded digits of the session date.
type Filter struct {
	Artist string
	Type   string
	Year   string
	Month  string
}

// matchValue reports whether a filter value accepts the given field.
func matchValue(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// MatchSession reports whether the session passes the filter.
func (f Filter) MatchSession(s models.Session) bool {
	return matchValue(f.Artist, s.ArtistID) &&
		matchValue(f.Type, s.Type) &&
		matchValue(f.Year, s.Year()) &&
		matchValue(f.Month, s.Month())
}

// MatchArtist reports whether the artist itself passes the artist and type
// predicates. Used for the visibility rule: an artist whose own category
// fails the type filter stays hidden even when some of its sessions match.
func (f Filter) MatchArtist(a models.Artist) bool {
	return matchValue(f.Artist, a.ID) && matchValue(f.Type, a.Type)
}

// FilterSessions returns the sessions passing the filter, preserving order.
func FilterSessions(sessions []models.Session, f Filter) []models.Session {
	var out []models.Session
	for _, s := range sessions {
		if f.MatchSession(s) {
			out = append(out, s)
		}
	}
	return out
}

// Summary is the per-artist rollup over a filtered session view.
//
// Total is billed at the artist's current rate; the per-session captured
// rate is kept for history but does not drive this figure. Paid sums the
// artist's entire ledger regardless of the date filters, because a payment
// is a real-world event not tied to a billing period. Remaining may go
// negative on overpayment.
type Summary struct {
	Artist    models.Artist
	Hours     float64
	Total     float64
	Paid      float64
	Remaining float64
}

// Settlement states for a summary.
const (
	StatusDue      = "due"
	StatusSettled  = "settled"
	StatusOverpaid = "overpaid"
	StatusEmpty    = "empty"
)

// Status classifies the balance: due (money outstanding), settled (paid in
// full with a non-zero total), overpaid (ledger exceeds the total) or empty.
func (s Summary) Status() string {
	switch {
	case s.Remaining > 0:
		return StatusDue
	case s.Remaining < 0:
		return StatusOverpaid
	case s.Total > 0:
		return StatusSettled
	default:
		return StatusEmpty
	}
}

// Report is the full dashboard view for one filter set.
type Report struct {
	Summaries []Summary
	// TotalPaid sums Paid across the visible artists.
	TotalPaid float64
	// SessionCount is the number of sessions passing the filter.
	SessionCount int
}

// Summarize builds the per-artist rollup for the given filter.
//
// An artist is visible only when its filtered hours yield a non-zero total
// AND the artist itself passes the artist/type predicates. Summaries come
// back ordered by artist name.
func Summarize(artists []models.Artist, sessions []models.Session, paidByArtist map[string]float64, f Filter) Report {
	filtered := FilterSessions(sessions, f)

	hoursByArtist := make(map[string]float64)
	for _, s := range filtered {
		hoursByArtist[s.ArtistID] += s.TotalHours
	}

	var report Report
	report.SessionCount = len(filtered)

	for _, artist := range artists {
		hours := hoursByArtist[artist.ID]
		total := hours * artist.Rate

		if total == 0 || !f.MatchArtist(artist) {
			continue
		}

		paid := paidByArtist[artist.ID]
		report.Summaries = append(report.Summaries, Summary{
			Artist:    artist,
			Hours:     hours,
			Total:     total,
			Paid:      paid,
			Remaining: total - paid,
		})
		report.TotalPaid += paid
	}

	sort.Slice(report.Summaries, func(i, j int) bool {
		return report.Summaries[i].Artist.Name < report.Summaries[j].Artist.Name
	})

	return report
}
