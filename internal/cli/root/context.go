package root

import (
	"context"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/docktree/internal/cli/output"
)

// Handler executes one command invocation.
type Handler func(ctx CommandContext) error

// CommandContext carries everything a handler needs.
type CommandContext struct {
	Context context.Context
	Cmd     *cli.Command
	Deps    Dependencies
	JSON    bool
	Out     io.Writer
	ErrOut  io.Writer
	Stdin   io.Reader
}

// Action adapts a handler to an urfave/cli action. On failure with --json
// the error is emitted as an envelope and the process exits nonzero
// without a second stderr line.
func Action(id string, deps Dependencies, handler Handler) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cmdCtx := CommandContext{
			Context: ctx,
			Cmd:     cmd,
			Deps:    deps,
			JSON:    cmd.Bool("json"),
			Out:     deps.Stdout,
			ErrOut:  deps.Stderr,
			Stdin:   deps.Stdin,
		}
		start := time.Now()
		if err := handler(cmdCtx); err != nil {
			if !cmdCtx.JSON {
				return err
			}
			meta := output.WithDuration(output.NewMeta(id, deps.Version), start)
			_ = output.WriteError(cmdCtx.Out, meta, "command_failed", err.Error(), nil)
			return cli.Exit("", 1)
		}
		return nil
	}
}
