package layoutcmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/docktree/internal/cli/output"
	"github.com/regenrek/docktree/internal/cli/root"
	"github.com/regenrek/docktree/internal/render"
	"github.com/regenrek/docktree/pkg/dock"
)

// InspectCommand lays a document out at a given size and dumps the node
// tree with the resulting geometry.
func InspectCommand(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Dump the node tree of a layout document",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit a JSON envelope"},
			&cli.FloatFlag{Name: "width", Value: 1200, Usage: "frame width for geometry"},
			&cli.FloatFlag{Name: "height", Value: 800, Usage: "frame height for geometry"},
		},
		Action: root.Action("inspect", deps, runInspect),
	}
}

func runInspect(ctx root.CommandContext) error {
	start := time.Now()
	path, err := layoutArg(ctx)
	if err != nil {
		return err
	}
	m, err := loadLayout(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	render.Apply(m, dock.Rect{
		Width:  ctx.Cmd.Float("width"),
		Height: ctx.Cmd.Float("height"),
	})

	nodes := collectNodes(m)
	if ctx.JSON {
		meta := output.WithDuration(output.NewMeta("inspect", ctx.Deps.Version), start)
		return output.WriteSuccess(ctx.Out, meta, output.InspectReport{
			File:  path,
			Nodes: nodes,
			Total: len(nodes),
		})
	}
	return writeInspectTable(ctx, nodes)
}

func collectNodes(m *dock.Model) []output.NodeInfo {
	var nodes []output.NodeInfo
	m.VisitNodes(func(n dock.Node) {
		info := output.NodeInfo{
			ID:   n.ID(),
			Kind: string(n.Kind()),
			Path: n.Path(),
			Rect: rectDTO(n.Rect()),
		}
		switch node := n.(type) {
		case *dock.RowNode:
			info.Weight = node.Weight()
		case *dock.TabSetNode:
			info.Name = node.Name()
			info.Weight = node.Weight()
			sel := node.Selected()
			info.Selected = &sel
		case *dock.TabNode:
			info.Name = node.Name()
			info.Component = node.Component()
		case *dock.BorderNode:
			info.Name = node.Location().String()
			sel := node.Selected()
			info.Selected = &sel
		}
		nodes = append(nodes, info)
	})
	return nodes
}

func rectDTO(r dock.Rect) output.RectDTO {
	return output.RectDTO{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func writeInspectTable(ctx root.CommandContext, nodes []output.NodeInfo) error {
	w := tabwriter.NewWriter(ctx.Out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "PATH\tKIND\tID\tNAME\tRECT"); err != nil {
		return err
	}
	for _, n := range nodes {
		name := n.Name
		if n.Component != "" {
			name = fmt.Sprintf("%s (%s)", n.Name, n.Component)
		}
		rect := fmt.Sprintf("%.0f,%.0f %.0fx%.0f", n.Rect.X, n.Rect.Y, n.Rect.Width, n.Rect.Height)
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", n.Path, n.Kind, displayID(n.ID), name, rect); err != nil {
			return err
		}
	}
	return w.Flush()
}

// displayID hides generated ids; they are not stable across loads.
func displayID(id string) string {
	if strings.HasPrefix(id, "#") {
		return "-"
	}
	return id
}
