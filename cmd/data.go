package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/shared"
)

// DataExport writes a snapshot of the database to a file. The snapshot is a
// plain SQLite file and can be opened with any SQLite tooling.
func (r *Runner) DataExport(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")

	data, err := r.store.ExportBytes()
	if err != nil {
		return fmt.Errorf("failed to export database: %w", err)
	}

	if err := os.WriteFile(output, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	r.logger.Info("database exported", "path", output, "bytes", len(data))
	return r.writePlainln("✓ exported %d bytes to %s", len(data), output)
}

// DataImport replaces the database with a previously exported snapshot. The
// snapshot is validated before the live database is touched; payment ledger
// files are not part of the snapshot and are left as they are.
func (r *Runner) DataImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: snapshot path is required", shared.ErrMissingArgument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := r.store.ImportBytes(data); err != nil {
		return fmt.Errorf("failed to import snapshot: %w", err)
	}

	r.logger.Info("database imported", "path", path, "bytes", len(data))
	return r.writePlainln("✓ imported %s", path)
}

// DataClear deletes every artist and session. Payment ledger files are kept.
func (r *Runner) DataClear(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("yes") {
		return fmt.Errorf("%w: pass --yes to confirm clearing all artists and sessions", shared.ErrMissingArgument)
	}

	if err := r.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}

	r.logger.Info("database cleared")
	return r.writePlainln("✓ cleared all artists and sessions (payments kept)")
}

// DataSeed inserts the sample dataset. Rows that already exist are skipped.
func (r *Runner) DataSeed(ctx context.Context, cmd *cli.Command) error {
	if err := r.store.Seed(); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return r.writePlainln("✓ sample dataset inserted")
}
