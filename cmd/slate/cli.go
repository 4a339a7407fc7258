package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ewinters/slate/internal/config"
	"github.com/ewinters/slate/internal/errors"
	"github.com/ewinters/slate/internal/ops"
	"github.com/ewinters/slate/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "slate",
		Usage:   "Regroup a Fountain screenplay by camera setup",
		Version: Version,
		Commands: []*cli.Command{
			scheduleCmd(db, cfg),
			screenplayCmd(db, cfg),
			shotlistCmd(db, cfg),
			setupsCmd(),
			checkCmd(),
			historyCmd(db),
			previewCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// scheduleCmd creates the schedule command.
func scheduleCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "schedule",
		Usage:     "Write the shooting schedule view (segments grouped by setup)",
		ArgsUsage: "<input.fountain>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output path (default: SCHEDULE_<input>)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ScheduleInput{
				InputPath:  c.Args().First(),
				OutputPath: c.String("output"),
			}

			output, err := ops.Schedule(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// screenplayCmd creates the screenplay command.
func screenplayCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "screenplay",
		Usage:     "Write the annotated screenplay view (chronological, with setup headers)",
		ArgsUsage: "<input.fountain>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output path (default: SETUPSCREENPLAY_<input>)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ScreenplayInput{
				InputPath:  c.Args().First(),
				OutputPath: c.String("output"),
			}

			output, err := ops.Screenplay(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// shotlistCmd creates the shotlist command.
func shotlistCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "shotlist",
		Usage:     "Write both views in one pass (SHOTLIST_ schedule + annotated screenplay)",
		ArgsUsage: "<input.fountain>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Schedule output path (default: SHOTLIST_<input>)"},
			&cli.StringFlag{Name: "screenplay-output", Usage: "Screenplay output path (default: SETUPSCREENPLAY_<input>)"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ShotlistInput{
				InputPath:      c.Args().First(),
				ScheduleOutput: c.String("output"),
				ScreenplayOut:  c.String("screenplay-output"),
			}

			output, err := ops.Shotlist(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// setupsCmd creates the setups command.
func setupsCmd() *cli.Command {
	return &cli.Command{
		Name:      "setups",
		Usage:     "List the camera setups found in the input",
		ArgsUsage: "<input.fountain>",
		Action: func(c *cli.Context) error {
			output, err := ops.Setups(ops.SetupsInput{InputPath: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// checkCmd creates the check command.
func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report dropped content and malformed setup markers",
		ArgsUsage: "<input.fountain>",
		Action: func(c *cli.Context) error {
			output, err := ops.Check(ops.CheckInput{InputPath: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// historyCmd creates the history command.
func historyCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List past reorganize runs",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultHistoryLimit, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.History(db, ops.HistoryInput{
				Limit:  c.Int("limit"),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// previewCmd creates the preview command.
func previewCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Serve both rendered views over local HTTP, re-reading the input per request",
		ArgsUsage: "<input.fountain>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Bind address (default from config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port (default from config)"},
		},
		Action: func(c *cli.Context) error {
			inputPath := c.Args().First()
			if inputPath == "" {
				return outputError(errors.NewInvalidRequest("input path is required"))
			}

			bind := c.String("bind")
			if bind == "" {
				bind = cfg.PreviewBind
			}
			port := c.Int("port")
			if port == 0 {
				port = cfg.PreviewPort
			}

			srv := web.NewServer(inputPath, Version, bind, port)
			if err := web.Run(srv); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SlateError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
