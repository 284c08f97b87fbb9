package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/formatter"
	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/reports"
	"github.com/zakbeatz/studio/internal/shared"
)

// SessionAdd records a work session for an artist. Either a start/end time
// pair or an hour package label must be given; the artist's current rate and
// type are captured onto the session at insert time.
func (r *Runner) SessionAdd(ctx context.Context, cmd *cli.Command) error {
	artistID := cmd.StringArg("artist")
	if artistID == "" {
		return fmt.Errorf("%w: artist id is required", shared.ErrMissingArgument)
	}

	date := cmd.String("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	session := models.Session{
		Date:        date,
		ArtistID:    artistID,
		Type:        cmd.String("type"),
		Start:       cmd.String("start"),
		PauseStart:  cmd.String("pause-start"),
		PauseEnd:    cmd.String("pause-end"),
		End:         cmd.String("end"),
		TotalHours:  cmd.Float("hours"),
		Note:        cmd.String("note"),
		PaidAmount:  cmd.Float("paid"),
		PackageType: cmd.String("package"),
		IsPackage:   cmd.String("package") != "",
	}

	if !session.IsPackage && session.TotalHours == 0 && (session.Start == "" || session.End == "") {
		return fmt.Errorf("%w: pass --start and --end, --hours, or --package", shared.ErrMissingArgument)
	}

	created, err := r.sessions.Add(session)
	if err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}

	r.logger.Info("session added", "id", created.ID, "artist", created.ArtistID, "hours", created.TotalHours)

	if cmd.Bool("json") {
		return r.writeJSON(created, true)
	}

	return r.writePlainln("✓ session %d — %s on %s, %s", created.ID, created.ArtistID, created.Date, shared.FormatHours(created.TotalHours))
}

// SessionList prints recorded sessions, newest first, optionally filtered
// and rendered as text, CSV or JSON.
func (r *Runner) SessionList(ctx context.Context, cmd *cli.Command) error {
	sessions, err := r.sessions.List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	filter := reports.Filter{
		Artist: cmd.String("artist"),
		Type:   cmd.String("type"),
		Year:   cmd.String("year"),
		Month:  cmd.String("month"),
	}
	filtered := reports.FilterSessions(sessions, filter)

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(filtered, cmd.Bool("pretty"))
	case "csv":
		artists, err := r.artists.List()
		if err != nil {
			return fmt.Errorf("failed to list artists: %w", err)
		}
		out, err := formatter.SessionsToCSV(filtered, artists)
		if err != nil {
			return fmt.Errorf("failed to render CSV: %w", err)
		}
		return r.writeBytes(out)
	case "text":
		if len(filtered) == 0 {
			return r.writePlainln("No sessions found.")
		}
		for _, s := range filtered {
			line := fmt.Sprintf("#%-4d %s  %-20s %8s", s.ID, s.Date, s.ArtistID, shared.FormatHours(s.TotalHours))
			if s.IsPackage {
				line += fmt.Sprintf("  [pacote %s]", s.PackageType)
			}
			if s.Note != "" {
				line += "  " + s.Note
			}
			if err := r.writePlainln("%s", line); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// SessionUpdate applies the provided flags to a recorded session. Hours are
// recomputed when any of the time fields change; an unknown id is a no-op.
func (r *Runner) SessionUpdate(ctx context.Context, cmd *cli.Command) error {
	id, err := sessionID(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	patch := models.SessionPatch{}
	if cmd.IsSet("date") {
		date := cmd.String("date")
		patch.Date = &date
	}
	if cmd.IsSet("start") {
		start := cmd.String("start")
		patch.Start = &start
	}
	if cmd.IsSet("end") {
		end := cmd.String("end")
		patch.End = &end
	}
	if cmd.IsSet("pause-start") {
		pauseStart := cmd.String("pause-start")
		patch.PauseStart = &pauseStart
	}
	if cmd.IsSet("pause-end") {
		pauseEnd := cmd.String("pause-end")
		patch.PauseEnd = &pauseEnd
	}
	if cmd.IsSet("hours") {
		hours := cmd.Float("hours")
		patch.TotalHours = &hours
	}
	if cmd.IsSet("type") {
		sessType := cmd.String("type")
		patch.Type = &sessType
	}
	if cmd.IsSet("paid") {
		paid := cmd.Float("paid")
		patch.PaidAmount = &paid
	}
	if cmd.IsSet("note") {
		note := cmd.String("note")
		patch.Note = &note
	}

	if err := r.sessions.Update(id, patch); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	r.logger.Info("session updated", "id", id)
	return r.writePlainln("✓ updated session %d", id)
}

// SessionRemove deletes a recorded session.
func (r *Runner) SessionRemove(ctx context.Context, cmd *cli.Command) error {
	id, err := sessionID(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	if err := r.sessions.Delete(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	r.logger.Info("session deleted", "id", id)
	return r.writePlainln("✓ removed session %d", id)
}

func sessionID(arg string) (int64, error) {
	if arg == "" {
		return 0, fmt.Errorf("%w: session id is required", shared.ErrMissingArgument)
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: session id must be a number, got %q", shared.ErrInvalidArgument, arg)
	}
	return id, nil
}
