package entry

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aemsenhuber/follow/internal/appdirs"
	"github.com/aemsenhuber/follow/internal/cli/root"
	"github.com/aemsenhuber/follow/internal/config"
	"github.com/aemsenhuber/follow/internal/identity"
	"github.com/aemsenhuber/follow/internal/logging"
)

// Run starts the CLI and returns the process exit code.
func Run(args []string, version string) int {
	appName := identity.CLIName

	cfg := &config.Config{}
	if path, err := appdirs.ConfigFilePath(); err == nil && path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		cfg = loaded
	}

	closeLogger, err := logging.Init(cfg.Logging, logging.InitOptions{
		App:     identity.AppSlug,
		Version: version,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	cmd := root.New(root.Dependencies{
		Version: version,
		Config:  cfg,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	if err := cmd.Run(context.Background(), args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}
