// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// generateCommand creates the day's clip from a mood description.
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate today's clip from a mood description",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "mood",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   "Mood preset ID (chill, energetic, melancholic, focus, party, dreamy)",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Accent color as a hex value",
			},
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "Stability API key (overrides config.toml)",
			},
		},
		Action: r.Generate,
	}
}

// mixCommand fuses the completed week into the weekly mix.
func mixCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "mix",
		Usage: "Fuse all seven entries into a weekly mix",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "Stability API key (overrides config.toml)",
			},
		},
		Action: r.Mix,
	}
}

// libraryCommand lists the week's entries.
func libraryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "library",
		Aliases: []string{"lib", "ls"},
		Usage:   "List this week's entries",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Library,
	}
}

// statusCommand shows week progression.
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show week progression and mix eligibility",
		Action: r.Status,
	}
}

// playCommand plays a stored clip through the speaker.
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Play a day's clip (1-7) or the weekly mix",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "day",
			},
		},
		Action: r.Play,
	}
}

// promptCommand prints an entry's enhanced prompt.
func promptCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Show the enhanced prompt behind a day's clip",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "day",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Copy the prompt to the clipboard",
			},
		},
		Action: r.Prompt,
	}
}

// exportCommand writes the journal to a file.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the journal as CSV or Markdown",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (csv or markdown)",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
			},
		},
		Action: r.Export,
	}
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Create a config.toml from the bundled template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Where to write the config file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// keysCommand opens the Stability dashboard for API key management.
func keysCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "keys",
		Usage:  "Open the Stability AI dashboard to manage API keys",
		Action: r.Keys,
	}
}

// tuiCommand returns the top-level TUI command for the interactive journal.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive mood journal",
		Action:  r.TUI,
	}
}
