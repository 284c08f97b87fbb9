// package formatter renders session listings and billing summaries to CSV, Markdown and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/reports"
	"github.com/zakbeatz/studio/internal/shared"
)

// SessionsToCSV converts sessions to CSV with columns: ID, Date, Artist, Type, Start, PauseStart, PauseEnd, End, Hours, Note
func SessionsToCSV(sessions []models.Session, artists []models.Artist) ([]byte, error) {
	names := artistNames(artists)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Date", "Artist", "Type", "Start", "PauseStart", "PauseEnd", "End", "Hours", "Note"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, s := range sessions {
		name := names[s.ArtistID]
		if name == "" {
			name = s.ArtistID
		}
		record := []string{
			strconv.FormatInt(s.ID, 10),
			s.Date,
			name,
			s.Type,
			s.Start,
			s.PauseStart,
			s.PauseEnd,
			s.End,
			strconv.FormatFloat(s.TotalHours, 'f', 1, 64),
			s.Note,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ReportToMarkdown converts a billing report to a Markdown document
func ReportToMarkdown(report reports.Report) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Controle por Cliente\n\n")
	buf.WriteString(fmt.Sprintf("**Total Recebido**: %s\n\n", shared.FormatBRL(report.TotalPaid)))

	buf.WriteString("| Artista | Tipo | Horas | Total | Pago | Restante |\n")
	buf.WriteString("|---|---|---|---|---|---|\n")
	for _, s := range report.Summaries {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			s.Artist.Name,
			models.ClientTypeNames[s.Artist.Type],
			shared.FormatHours(s.Hours),
			shared.FormatBRL(s.Total),
			shared.FormatBRL(s.Paid),
			shared.FormatBRL(s.Remaining),
		))
	}

	return buf.Bytes()
}

// ReportToText converts a billing report to plain text, one artist per block
func ReportToText(report reports.Report) []byte {
	var buf bytes.Buffer

	for _, s := range report.Summaries {
		buf.WriteString(fmt.Sprintf("%s (%s/h)\n", s.Artist.Name, shared.FormatBRL(s.Artist.Rate)))
		buf.WriteString(fmt.Sprintf("  %s trabalhadas, %s\n", shared.FormatHours(s.Hours), shared.FormatBRL(s.Total)))

		switch s.Status() {
		case reports.StatusDue:
			buf.WriteString(fmt.Sprintf("  Restante: %s\n", shared.FormatBRL(s.Remaining)))
		case reports.StatusOverpaid:
			buf.WriteString(fmt.Sprintf("  Crédito: %s\n", shared.FormatBRL(-s.Remaining)))
		case reports.StatusSettled:
			buf.WriteString("  Pago\n")
		}
		buf.WriteString("\n")
	}

	buf.WriteString(fmt.Sprintf("Total recebido: %s\n", shared.FormatBRL(report.TotalPaid)))
	return buf.Bytes()
}

func artistNames(artists []models.Artist) map[string]string {
	names := make(map[string]string, len(artists))
	for _, a := range artists {
		names[a.ID] = a.Name
	}
	return names
}
