// Package entry owns process startup: logging first, then the command
// tree, then exit-code mapping.
package entry

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/docktree/internal/cli/app"
	"github.com/regenrek/docktree/internal/cli/root"
	"github.com/regenrek/docktree/internal/identity"
	"github.com/regenrek/docktree/internal/logging"
)

// Run starts the CLI and returns the process exit code.
func Run(args []string, version string) int {
	appName := identity.CLIName
	mode := logging.ModeFromArgs(args)
	closeLogger, err := logging.Init(logging.Config{}, logging.InitOptions{
		App:     identity.AppSlug,
		Version: version,
		Mode:    mode,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	deps := root.DefaultDependencies(version)
	deps.AppName = appName
	cmd := app.New(deps)
	if err := cmd.Run(context.Background(), args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}
