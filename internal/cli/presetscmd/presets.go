// Package presetscmd lists and exports layout presets.
package presetscmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/regenrek/docktree/internal/atomicfile"
	"github.com/regenrek/docktree/internal/cli/output"
	"github.com/regenrek/docktree/internal/cli/root"
	"github.com/regenrek/docktree/internal/identity"
	"github.com/regenrek/docktree/internal/preset"
)

// Command is the `presets` command group.
func Command(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "Manage layout presets",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List presets visible from the current project",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "emit a JSON envelope"},
				},
				Action: root.Action("presets.list", deps, runList),
			},
			{
				Name:      "export",
				Usage:     "Print a preset as YAML, or compiled to a layout document",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "emit a JSON envelope"},
					&cli.BoolFlag{Name: "compile", Usage: "emit the compiled layout JSON instead of YAML"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write to a file instead of stdout"},
				},
				Action: root.Action("presets.export", deps, runExport),
			},
		},
	}
}

func loadAll(ctx root.CommandContext) (*preset.Loader, error) {
	dir, err := ctx.Deps.ResolveWorkDir()
	if err != nil {
		return nil, err
	}
	l := preset.NewLoader()
	if err := l.LoadAll(dir); err != nil {
		return nil, err
	}
	return l, nil
}

func runList(ctx root.CommandContext) error {
	start := time.Now()
	l, err := loadAll(ctx)
	if err != nil {
		return err
	}
	entries := l.List()

	if ctx.JSON {
		items := make([]output.PresetSummary, 0, len(entries))
		for _, e := range entries {
			items = append(items, output.PresetSummary{
				Name:        e.Preset.Name,
				Source:      string(e.Source),
				Description: e.Preset.Description,
				Path:        e.Path,
			})
		}
		meta := output.WithDuration(output.NewMeta("presets.list", ctx.Deps.Version), start)
		return output.WriteSuccess(ctx.Out, meta, output.PresetList{Presets: items, Total: len(items)})
	}
	return writeListTable(ctx, entries)
}

func writeListTable(ctx root.CommandContext, entries []preset.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(ctx.Out, "No presets found.")
		return err
	}
	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "NAME\tSOURCE\tDESCRIPTION"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.Preset.Name, e.Source, truncate(e.Preset.Description)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(ctx.Out, "\nUse '%s presets export <name>' to view the preset YAML\n", identity.CLIName)
	return err
}

func truncate(desc string) string {
	if len(desc) > 50 {
		return desc[:47] + "..."
	}
	return desc
}

func runExport(ctx root.CommandContext) error {
	start := time.Now()
	name := strings.TrimSpace(ctx.Cmd.Args().First())
	if name == "" {
		return fmt.Errorf("preset name is required")
	}
	l, err := loadAll(ctx)
	if err != nil {
		return err
	}
	e, ok := l.Get(name)
	if !ok {
		return fmt.Errorf("preset %q not found", name)
	}

	format := "yaml"
	var content []byte
	if ctx.Cmd.Bool("compile") {
		format = "json"
		content, err = preset.CompileJSON(e.Preset)
	} else {
		content, err = yaml.Marshal(e.Preset)
	}
	if err != nil {
		return err
	}

	if out := ctx.Cmd.String("out"); out != "" {
		if err := atomicfile.Save(out, content, 0o644); err != nil {
			return err
		}
		if ctx.JSON {
			meta := output.WithDuration(output.NewMeta("presets.export", ctx.Deps.Version), start)
			return output.WriteSuccess(ctx.Out, meta, output.PresetExport{Name: name, Format: format, Content: out})
		}
		_, err := fmt.Fprintf(ctx.Out, "Wrote %s preset %q to %s\n", format, name, out)
		return err
	}

	if ctx.JSON {
		meta := output.WithDuration(output.NewMeta("presets.export", ctx.Deps.Version), start)
		return output.WriteSuccess(ctx.Out, meta, output.PresetExport{Name: name, Format: format, Content: string(content)})
	}
	if format == "yaml" {
		if _, err := fmt.Fprintf(ctx.Out, "# %s preset: %s\n", identity.BrandName, name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(ctx.Out, "# Save as %s in your project root\n\n", identity.ProjectPresetFileYML); err != nil {
			return err
		}
	}
	_, err = ctx.Out.Write(content)
	return err
}
