package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/shared"
)

// Setup creates the config file from the embedded template if it does not
// exist and makes sure the database schema is in place.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
	} else {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		r.logger.Info("config file created", "path", configPath)
	}

	r.logger.Info("ensuring database schema", "path", r.store.Path())
	if err := r.store.EnsureSchema(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return r.writePlainln("✓ setup complete, database at %s", r.store.Path())
}
