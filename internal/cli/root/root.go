// Package root defines the follow command line.
package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/aemsenhuber/follow/internal/config"
	"github.com/aemsenhuber/follow/internal/identity"
	"github.com/aemsenhuber/follow/internal/runenv"
	"github.com/aemsenhuber/follow/internal/runner"
	"github.com/aemsenhuber/follow/internal/tui/app"
)

// Dependencies carries everything the command needs; the TUI launch and the
// terminal preflight are injectable for tests.
type Dependencies struct {
	Version string
	Config  *config.Config
	Stdout  io.Writer
	Stderr  io.Writer

	CheckTTY func() error
	RunTUI   func(app.Options) error
}

// New builds the CLI command. Config file values become flag defaults, so
// flags always win.
func New(deps Dependencies) *cli.Command {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	checkTTY := deps.CheckTTY
	if checkTTY == nil {
		checkTTY = checkInteractive
	}
	runTUI := deps.RunTUI
	if runTUI == nil {
		runTUI = launchTUI
	}

	return &cli.Command{
		Name:      identity.CLIName,
		Usage:     "periodically run a command and page through its output",
		UsageText: identity.CLIName + " [options] -- <command> [arg...]",
		Version:   deps.Version,
		Writer:    deps.Stdout,
		ErrWriter: deps.Stderr,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:    "interval",
				Aliases: []string{"n"},
				Usage:   "refresh the command every `SECONDS` (fractions allowed)",
				Value:   cfg.IntervalDuration().Seconds(),
			},
			&cli.BoolFlag{
				Name:    "shell",
				Aliases: []string{"s"},
				Usage:   "run the command through a shell",
				Value:   cfg.Shell != nil && *cfg.Shell,
			},
			&cli.BoolFlag{
				Name:    "no-title",
				Aliases: []string{"t"},
				Usage:   "do not show the header line",
				Value:   cfg.NoTitle != nil && *cfg.NoTitle,
			},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return cli.Exit(err.Error(), 2)
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			opts, err := optionsFromCommand(cmd)
			if err != nil {
				return err
			}
			if err := checkTTY(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return runTUI(opts)
		},
	}
}

func optionsFromCommand(cmd *cli.Command) (app.Options, error) {
	interval := cmd.Float("interval")
	if interval <= 0 {
		return app.Options{}, cli.Exit(fmt.Sprintf("interval must be positive, got %v", interval), 2)
	}
	argv := cmd.Args().Slice()
	if len(argv) == 0 {
		return app.Options{}, cli.Exit("missing command to run", 2)
	}
	return app.Options{
		Command: runner.Command{
			Argv:  argv,
			Shell: cmd.Bool("shell"),
		},
		Interval:        time.Duration(float64(time.Second) * interval),
		NoTitle:         cmd.Bool("no-title"),
		CaptureMaxBytes: runenv.CaptureMaxBytes(),
	}, nil
}
