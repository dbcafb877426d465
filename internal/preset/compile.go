package preset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/regenrek/docktree/pkg/dock"
)

// Compile turns a preset into a live dock model.
func Compile(p *Preset) (*dock.Model, error) {
	data, err := CompileJSON(p)
	if err != nil {
		return nil, err
	}
	return dock.FromJSON(data)
}

// CompileJSON turns a preset into a layout document ready for dock.FromJSON.
func CompileJSON(p *Preset) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	doc := map[string]any{}
	if len(p.Global) > 0 {
		doc["global"] = p.Global
	}

	layout, err := compileLayout(p)
	if err != nil {
		return nil, err
	}
	doc["layout"] = layout

	if len(p.Borders) > 0 {
		borders := make([]any, 0, len(p.Borders))
		for _, b := range p.Borders {
			borders = append(borders, compileBorder(b))
		}
		doc["borders"] = borders
	}
	return json.Marshal(doc)
}

func compileLayout(p *Preset) (map[string]any, error) {
	if p.Layout != nil {
		return compileNode(*p.Layout)
	}
	grid := p.Grid
	if grid == "" {
		grid = "1x1"
	}
	rows, cols, err := parseGrid(grid)
	if err != nil {
		return nil, err
	}
	return compileGrid(p, rows, cols), nil
}

// compileGrid builds a row of columns. With a single grid row each column
// is a tabset; with more, each column nests a run of tabsets which the
// model lays out perpendicular to the root.
func compileGrid(p *Preset, rows, cols int) map[string]any {
	columns := make([]any, 0, cols)
	for c := 0; c < cols; c++ {
		if rows == 1 {
			columns = append(columns, gridTabSet(p, 0, c, cols))
			continue
		}
		cells := make([]any, 0, rows)
		for r := 0; r < rows; r++ {
			cells = append(cells, gridTabSet(p, r, c, cols))
		}
		columns = append(columns, map[string]any{
			"type":     string(dock.KindRow),
			"children": cells,
		})
	}
	return map[string]any{
		"type":     string(dock.KindRow),
		"children": columns,
	}
}

func gridTabSet(p *Preset, r, c, cols int) map[string]any {
	i := r*cols + c
	tab := map[string]any{
		"type":      string(dock.KindTab),
		"name":      paneTitle(p, i),
		"component": paneComponent(p, i),
	}
	return map[string]any{
		"type":     string(dock.KindTabSet),
		"children": []any{tab},
	}
}

// paneComponent resolves the component for grid pane i: the per-pane list
// wins, then the preset-wide default.
func paneComponent(p *Preset, i int) string {
	if i < len(p.Components) && strings.TrimSpace(p.Components[i]) != "" {
		return strings.TrimSpace(p.Components[i])
	}
	return p.Component
}

func paneTitle(p *Preset, i int) string {
	if i < len(p.Titles) && strings.TrimSpace(p.Titles[i]) != "" {
		return strings.TrimSpace(p.Titles[i])
	}
	if comp := paneComponent(p, i); comp != "" {
		return comp
	}
	return fmt.Sprintf("Pane %d", i+1)
}

func compileNode(def NodeDef) (map[string]any, error) {
	if len(def.Tabs) > 0 && len(def.Children) > 0 {
		return nil, fmt.Errorf("layout node %q has both tabs and children", def.Name)
	}
	if len(def.Tabs) > 0 {
		node := map[string]any{
			"type":     string(dock.KindTabSet),
			"children": compileTabs(def.Tabs),
		}
		if def.Name != "" {
			node["name"] = def.Name
		}
		if def.Weight > 0 {
			node["weight"] = def.Weight
		}
		return node, nil
	}
	children := make([]any, 0, len(def.Children))
	for _, c := range def.Children {
		node, err := compileNode(c)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	node := map[string]any{
		"type":     string(dock.KindRow),
		"children": children,
	}
	if def.Weight > 0 {
		node["weight"] = def.Weight
	}
	return node, nil
}

func compileTabs(tabs []TabDef) []any {
	out := make([]any, 0, len(tabs))
	for i, t := range tabs {
		name := t.Name
		if name == "" {
			if t.Component != "" {
				name = t.Component
			} else {
				name = fmt.Sprintf("Tab %d", i+1)
			}
		}
		tab := map[string]any{
			"type":      string(dock.KindTab),
			"name":      name,
			"component": t.Component,
		}
		if len(t.Config) > 0 {
			tab["config"] = t.Config
		}
		out = append(out, tab)
	}
	return out
}

func compileBorder(b BorderDef) map[string]any {
	node := map[string]any{
		"type":     string(dock.KindBorder),
		"location": strings.ToLower(strings.TrimSpace(b.Location)),
		"children": compileTabs(b.Tabs),
	}
	if b.Size > 0 {
		node["size"] = b.Size
	}
	if b.Selected != nil {
		node["selected"] = *b.Selected
	}
	return node
}
