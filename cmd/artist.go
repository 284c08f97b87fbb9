package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/shared"
)

// ArtistAdd registers a new artist on the roster.
func (r *Runner) ArtistAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: artist name is required", shared.ErrMissingArgument)
	}

	artist := models.Artist{
		ID:   cmd.String("id"),
		Name: name,
		Rate: cmd.Float("rate"),
		Type: cmd.String("type"),
	}

	if artist.Rate == 0 {
		artist.Rate = r.config.Studio.DefaultRate
	}
	if artist.Type == "" {
		artist.Type = r.config.Studio.DefaultType
	}

	created, err := r.artists.Add(artist)
	if err != nil {
		return fmt.Errorf("failed to add artist: %w", err)
	}

	r.logger.Info("artist added", "id", created.ID, "name", created.Name)

	if cmd.Bool("json") {
		return r.writeJSON(created, true)
	}

	return r.writePlainln("✓ %s (%s) — %s/h, %s", created.Name, created.ID, shared.FormatBRL(created.Rate), models.ClientTypeNames[created.Type])
}

// ArtistList prints the roster ordered by name.
func (r *Runner) ArtistList(ctx context.Context, cmd *cli.Command) error {
	artists, err := r.artists.List()
	if err != nil {
		return fmt.Errorf("failed to list artists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(artists, cmd.Bool("pretty"))
	}

	if len(artists) == 0 {
		return r.writePlainln("No artists registered.")
	}

	for _, a := range artists {
		if err := r.writePlainln("%-20s %-22s %10s/h  %s", a.ID, a.Name, shared.FormatBRL(a.Rate), models.ClientTypeNames[a.Type]); err != nil {
			return err
		}
	}

	return nil
}

// ArtistUpdate applies the provided flags to an existing artist. Flags that
// were not set are left untouched; an unknown id is a no-op.
func (r *Runner) ArtistUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id is required", shared.ErrMissingArgument)
	}

	patch := models.ArtistPatch{}
	if cmd.IsSet("name") {
		name := cmd.String("name")
		patch.Name = &name
	}
	if cmd.IsSet("rate") {
		rate := cmd.Float("rate")
		patch.Rate = &rate
	}
	if cmd.IsSet("type") {
		clientType := cmd.String("type")
		patch.Type = &clientType
	}

	if patch.IsZero() {
		return fmt.Errorf("%w: nothing to update, pass --name, --rate or --type", shared.ErrMissingArgument)
	}

	if err := r.artists.Update(id, patch); err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	r.logger.Info("artist updated", "id", id)
	return r.writePlainln("✓ updated %s", id)
}

// ArtistRemove deletes an artist and their sessions. Payment history is
// kept in the ledger.
func (r *Runner) ArtistRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id is required", shared.ErrMissingArgument)
	}

	if err := r.artists.Delete(id); err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}

	r.logger.Info("artist deleted", "id", id)
	return r.writePlainln("✓ removed %s and their sessions", id)
}
