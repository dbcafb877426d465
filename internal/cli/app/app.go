// Package app assembles the docktree command tree.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/docktree/internal/cli/layoutcmd"
	"github.com/regenrek/docktree/internal/cli/presetscmd"
	"github.com/regenrek/docktree/internal/cli/root"
	"github.com/regenrek/docktree/internal/cli/viewcmd"
	"github.com/regenrek/docktree/internal/identity"
)

// New builds the top-level CLI command.
func New(deps root.Dependencies) *cli.Command {
	app := &cli.Command{
		Name:      identity.CLIName,
		Usage:     "Inspect, rewrite, and interactively edit docking layouts",
		Writer:    deps.Stdout,
		ErrWriter: deps.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "version", Aliases: []string{"v"}, Usage: "print the version"},
		},
		Commands: []*cli.Command{
			layoutcmd.ValidateCommand(deps),
			layoutcmd.InspectCommand(deps),
			layoutcmd.ApplyCommand(deps),
			presetscmd.Command(deps),
			viewcmd.Command(deps),
		},
	}
	app.Before = func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd != nil && cmd.Bool("version") {
			out := deps.Stdout
			if out == nil {
				out = io.Discard
			}
			_, _ = fmt.Fprintf(out, "%s %s\n", identity.CLIName, deps.Version)
			return ctx, cli.Exit("", 0)
		}
		return ctx, nil
	}
	return app
}
