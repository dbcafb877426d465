package layoutcmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/docktree/internal/atomicfile"
	"github.com/regenrek/docktree/internal/cli/output"
	"github.com/regenrek/docktree/internal/cli/root"
	"github.com/regenrek/docktree/pkg/dock"
)

// ApplyCommand replays an action log against a layout document and writes
// the result back atomically.
func ApplyCommand(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Apply a JSON action log to a layout document",
		ArgsUsage: "FILE ACTIONS",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit a JSON envelope"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the result here instead of FILE"},
			&cli.BoolFlag{Name: "dry-run", Usage: "replay without writing"},
		},
		Action: root.Action("apply", deps, runApply),
	}
}

func runApply(ctx root.CommandContext) error {
	start := time.Now()
	path, err := layoutArg(ctx)
	if err != nil {
		return err
	}
	actionsPath := strings.TrimSpace(ctx.Cmd.Args().Get(1))
	if actionsPath == "" {
		return fmt.Errorf("actions file is required")
	}

	m, err := loadLayout(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	actions, err := loadActions(actionsPath)
	if err != nil {
		return fmt.Errorf("%s: %w", actionsPath, err)
	}
	for i, action := range actions {
		if action.Type == "" {
			return fmt.Errorf("action %d has no type", i)
		}
		m.DoAction(action)
	}

	outPath := ctx.Cmd.String("out")
	if outPath == "" {
		outPath = path
	}
	if !ctx.Cmd.Bool("dry-run") {
		data, err := m.ToJSON()
		if err != nil {
			return err
		}
		if err := atomicfile.Save(outPath, data, 0o644); err != nil {
			return err
		}
	}

	if ctx.JSON {
		meta := output.WithDuration(output.NewMeta("apply", ctx.Deps.Version), start)
		return output.WriteSuccess(ctx.Out, meta, output.ApplyReport{
			File:    path,
			Out:     outPath,
			Applied: len(actions),
		})
	}
	_, err = fmt.Fprintf(ctx.Out, "Applied %d actions to %s -> %s\n", len(actions), path, outPath)
	return err
}

// loadActions accepts either a JSON array of actions or newline-delimited
// action objects.
func loadActions(path string) ([]dock.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var actions []dock.Action
		if err := json.Unmarshal(trimmed, &actions); err != nil {
			return nil, fmt.Errorf("parse action log: %w", err)
		}
		return actions, nil
	}
	var actions []dock.Action
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var action dock.Action
		if err := json.Unmarshal([]byte(line), &action); err != nil {
			return nil, fmt.Errorf("parse action log line %d: %w", len(actions)+1, err)
		}
		actions = append(actions, action)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return actions, nil
}
