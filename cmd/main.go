package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/zakbeatz/studio/internal/shared"
	"github.com/zakbeatz/studio/internal/store"
)

func main() {
	logger := shared.NewLogger(nil)
	if os.Getenv("STUDIO_DEBUG") != "" {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	st, err := store.Open(config.Database.Path, store.Opts{
		Seed:   config.Studio.Seed,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer st.Close()

	runner := NewRunner(RunnerOpts{
		Config: config,
		Store:  st,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "studio",
		Usage:    "Track recording sessions, hour packages and artist payments",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
