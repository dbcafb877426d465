// Package viewcmd opens a layout in the interactive viewer.
package viewcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/docktree/internal/cli/root"
	"github.com/regenrek/docktree/internal/identity"
	"github.com/regenrek/docktree/internal/preset"
	"github.com/regenrek/docktree/internal/tui"
	"github.com/regenrek/docktree/pkg/dock"
)

// Command opens the TUI on a layout file or a compiled preset.
func Command(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Aliases:   []string{"edit"},
		Usage:     "View and edit a layout interactively",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Usage: "start from a preset instead of a file"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "save target (defaults to FILE)"},
		},
		Action: root.Action("view", deps, runView),
	}
}

func runView(ctx root.CommandContext) error {
	path := strings.TrimSpace(ctx.Cmd.Args().First())
	presetName := ctx.Cmd.String("preset")
	if path != "" && presetName != "" {
		return fmt.Errorf("pass a file or --preset, not both")
	}

	var (
		m     *dock.Model
		title string
		err   error
	)
	switch {
	case path != "":
		m, err = loadFile(path)
		title = fmt.Sprintf("%s: %s", identity.BrandName, filepath.Base(path))
	default:
		// No file: fall back to the preset resolution chain, which picks
		// the project preset (or the builtin default) for an empty name.
		m, title, err = loadPreset(ctx, presetName)
	}
	if err != nil {
		return err
	}

	savePath := ctx.Cmd.String("out")
	if savePath == "" {
		savePath = path
	}
	return tui.Run(m, tui.Options{Title: title, SavePath: savePath})
}

func loadFile(path string) (*dock.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := dock.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func loadPreset(ctx root.CommandContext, name string) (*dock.Model, string, error) {
	dir, err := ctx.Deps.ResolveWorkDir()
	if err != nil {
		return nil, "", err
	}
	l := preset.NewLoader()
	if err := l.LoadAll(dir); err != nil {
		return nil, "", err
	}
	e, ok := l.Get(name)
	if !ok {
		return nil, "", fmt.Errorf("preset %q not found", name)
	}
	m, err := preset.Compile(e.Preset)
	if err != nil {
		return nil, "", fmt.Errorf("preset %q: %w", e.Preset.Name, err)
	}
	title := fmt.Sprintf("%s: preset %s", identity.BrandName, e.Preset.Name)
	return m, title, nil
}
