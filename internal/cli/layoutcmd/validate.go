// Package layoutcmd implements the commands that read and rewrite layout
// documents: validate, inspect, and apply.
package layoutcmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/docktree/internal/cli/output"
	"github.com/regenrek/docktree/internal/cli/root"
	"github.com/regenrek/docktree/pkg/dock"
)

// ValidateCommand checks that a layout document parses and reports its
// shape.
func ValidateCommand(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check a layout document for errors",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit a JSON envelope"},
		},
		Action: root.Action("validate", deps, runValidate),
	}
}

func runValidate(ctx root.CommandContext) error {
	start := time.Now()
	path, err := layoutArg(ctx)
	if err != nil {
		return err
	}
	meta := output.NewMeta("validate", ctx.Deps.Version)

	m, loadErr := loadLayout(path)
	report := output.ValidationReport{Valid: loadErr == nil, File: path}
	if loadErr != nil {
		report.Problem = loadErr.Error()
	} else {
		report.Tabs, report.TabSets, report.Borders = countNodes(m)
	}

	if ctx.JSON {
		return output.WriteSuccess(ctx.Out, output.WithDuration(meta, start), report)
	}
	if loadErr != nil {
		return fmt.Errorf("%s: %w", path, loadErr)
	}
	_, err = fmt.Fprintf(ctx.Out, "%s: OK (%d tabs in %d tabsets, %d borders)\n",
		path, report.Tabs, report.TabSets, report.Borders)
	return err
}

func countNodes(m *dock.Model) (tabs, tabsets, borders int) {
	m.VisitNodes(func(n dock.Node) {
		switch n.Kind() {
		case dock.KindTab:
			tabs++
		case dock.KindTabSet:
			tabsets++
		case dock.KindBorder:
			borders++
		}
	})
	return tabs, tabsets, borders
}

func loadLayout(path string) (*dock.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dock.FromJSON(data)
}

func layoutArg(ctx root.CommandContext) (string, error) {
	path := strings.TrimSpace(ctx.Cmd.Args().First())
	if path == "" {
		return "", fmt.Errorf("layout file is required")
	}
	return path, nil
}
