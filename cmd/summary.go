package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/formatter"
	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/reports"
	"github.com/zakbeatz/studio/internal/shared"
)

// Summary renders the per-artist billing rollup: hours worked, amount due
// at the artist's current rate, payments received and outstanding balance.
func (r *Runner) Summary(ctx context.Context, cmd *cli.Command) error {
	report, err := r.buildReport(reports.Filter{
		Artist: cmd.String("artist"),
		Type:   cmd.String("type"),
		Year:   cmd.String("year"),
		Month:  cmd.String("month"),
	})
	if err != nil {
		return err
	}

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(report, cmd.Bool("pretty"))
	case "markdown", "md":
		return r.writeBytes(formatter.ReportToMarkdown(report))
	case "text":
		return r.writeBytes(formatter.ReportToText(report))
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// buildReport assembles the rollup inputs. Payments come from the full
// ledger regardless of the filter; only hours are filtered.
func (r *Runner) buildReport(filter reports.Filter) (reports.Report, error) {
	artists, err := r.artists.List()
	if err != nil {
		return reports.Report{}, fmt.Errorf("failed to list artists: %w", err)
	}

	sessions, err := r.sessions.List()
	if err != nil {
		return reports.Report{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	paid, err := r.ledger.Totals(artistIDs(artists))
	if err != nil {
		return reports.Report{}, fmt.Errorf("failed to read payment ledger: %w", err)
	}

	return reports.Summarize(artists, sessions, paid, filter), nil
}

func artistIDs(artists []models.Artist) []string {
	ids := make([]string, 0, len(artists))
	for _, a := range artists {
		ids = append(ids, a.ID)
	}
	return ids
}
