// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// artistCommand handles artist roster operations
func artistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "artist",
		Aliases: []string{"client"},
		Usage:   "Manage the artist roster",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Register a new artist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "Artist ID (defaults to a slug of the name)",
					},
					&cli.FloatFlag{
						Name:    "rate",
						Aliases: []string{"r"},
						Usage:   "Hourly rate in BRL",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Client type (producao_semanal, producao_quinzenal, pacote_horas, mixagem, masterizacao, gravacao, montagem_show, venda_beat)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the created artist as JSON",
					},
				},
				Action: r.ArtistAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List registered artists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ArtistList,
			},
			{
				Name:  "update",
				Usage: "Update an artist's name, rate or type",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New display name",
					},
					&cli.FloatFlag{
						Name:    "rate",
						Aliases: []string{"r"},
						Usage:   "New hourly rate in BRL",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "New client type",
					},
				},
				Action: r.ArtistUpdate,
			},
			{
				Name:    "rm",
				Aliases: []string{"remove", "delete"},
				Usage:   "Delete an artist and all of their sessions",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.ArtistRemove,
			},
		},
	}
}

// sessionCommand handles work session operations
func sessionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "session",
		Aliases: []string{"sess"},
		Usage:   "Record and manage work sessions",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Record a work session for an artist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "artist",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "date",
						Aliases: []string{"d"},
						Usage:   "Session date (YYYY-MM-DD, defaults to today)",
					},
					&cli.StringFlag{
						Name:  "start",
						Usage: "Start time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "end",
						Usage: "End time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "pause-start",
						Usage: "Pause start time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "pause-end",
						Usage: "Pause end time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "package",
						Usage: "Hour package label (4h, 8h, 12h, 16h, 20h)",
					},
					&cli.FloatFlag{
						Name:  "hours",
						Usage: "Enter worked hours directly instead of start/end times",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Billing category (defaults to the artist's)",
					},
					&cli.FloatFlag{
						Name:  "paid",
						Usage: "Amount already paid for this session, in BRL",
					},
					&cli.StringFlag{
						Name:    "note",
						Aliases: []string{"n"},
						Usage:   "Free-form note",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the created session as JSON",
					},
				},
				Action: r.SessionAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List recorded sessions, newest first",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "artist",
						Aliases: []string{"a"},
						Usage:   "Filter by artist ID",
						Value:   "all",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Filter by client type",
						Value:   "all",
					},
					&cli.StringFlag{
						Name:    "year",
						Aliases: []string{"y"},
						Usage:   "Filter by year (YYYY)",
						Value:   "all",
					},
					&cli.StringFlag{
						Name:    "month",
						Aliases: []string{"m"},
						Usage:   "Filter by month (MM)",
						Value:   "all",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (text, csv, json)",
						Value:   "text",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.SessionList,
			},
			{
				Name:  "update",
				Usage: "Update a recorded session",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "date",
						Aliases: []string{"d"},
						Usage:   "New session date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "start",
						Usage: "New start time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "end",
						Usage: "New end time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "pause-start",
						Usage: "New pause start time (HH:MM)",
					},
					&cli.StringFlag{
						Name:  "pause-end",
						Usage: "New pause end time (HH:MM)",
					},
					&cli.FloatFlag{
						Name:  "hours",
						Usage: "New worked hours (recomputed from times when both are set)",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "New billing category",
					},
					&cli.FloatFlag{
						Name:  "paid",
						Usage: "New paid amount in BRL",
					},
					&cli.StringFlag{
						Name:    "note",
						Aliases: []string{"n"},
						Usage:   "New note",
					},
				},
				Action: r.SessionUpdate,
			},
			{
				Name:    "rm",
				Aliases: []string{"remove", "delete"},
				Usage:   "Delete a recorded session",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.SessionRemove,
			},
		},
	}
}

// paymentCommand handles the payment ledger
func paymentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "payment",
		Aliases: []string{"pay"},
		Usage:   "Record and inspect artist payments",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Record a payment from an artist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "artist",
					},
					&cli.StringArg{
						Name: "amount",
					},
				},
				Action: r.PaymentAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List payments recorded for an artist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "artist",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PaymentList,
			},
			{
				Name:    "rm",
				Aliases: []string{"remove", "delete"},
				Usage:   "Remove a recorded payment",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "artist",
					},
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.PaymentRemove,
			},
		},
	}
}

// summaryCommand renders the per-artist billing rollup
func summaryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "summary",
		Aliases: []string{"report"},
		Usage:   "Per-artist hours, totals and outstanding balances",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "artist",
				Aliases: []string{"a"},
				Usage:   "Filter by artist ID",
				Value:   "all",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Filter by client type",
				Value:   "all",
			},
			&cli.StringFlag{
				Name:    "year",
				Aliases: []string{"y"},
				Usage:   "Filter by year (YYYY)",
				Value:   "all",
			},
			&cli.StringFlag{
				Name:    "month",
				Aliases: []string{"m"},
				Usage:   "Filter by month (MM)",
				Value:   "all",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, markdown, json)",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.Summary,
	}
}

// dataCommand handles database export, import and reset
func dataCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "data",
		Usage: "Export, import and reset the database",
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Write a snapshot of the database to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "studio-backup.db",
					},
				},
				Action: r.DataExport,
			},
			{
				Name:  "import",
				Usage: "Replace the database with a previously exported snapshot",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Action: r.DataImport,
			},
			{
				Name:  "clear",
				Usage: "Delete every artist and session (payments are kept)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				},
				Action: r.DataClear,
			},
			{
				Name:   "seed",
				Usage:  "Insert the sample dataset (existing rows are kept)",
				Action: r.DataSeed,
			},
		},
	}
}

// setupCommand initializes the config file and database schema.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file and initialize the database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for the studio dashboard.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive studio dashboard",
		Action:  r.TUI,
	}
}
