// Package preset loads named layout presets from YAML and compiles them
// into dock models. Presets come from three sources with project-local
// winning over global winning over builtin.
package preset

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TabDef declares one pane: the component string is opaque to the layout
// and resolved by the consuming application.
type TabDef struct {
	Name      string         `yaml:"name,omitempty"`
	Component string         `yaml:"component,omitempty"`
	Config    map[string]any `yaml:"config,omitempty"`
}

// NodeDef is one node of an explicit layout tree. A def carrying tabs is a
// tabset; anything else is a row of children.
type NodeDef struct {
	Name     string    `yaml:"name,omitempty"`
	Weight   float64   `yaml:"weight,omitempty"`
	Children []NodeDef `yaml:"children,omitempty"`
	Tabs     []TabDef  `yaml:"tabs,omitempty"`
}

// BorderDef pins a set of tabs to one frame edge.
type BorderDef struct {
	Location string   `yaml:"location"`
	Size     float64  `yaml:"size,omitempty"`
	Selected *int     `yaml:"selected,omitempty"`
	Tabs     []TabDef `yaml:"tabs,omitempty"`
}

// Preset is a complete layout definition. Either Grid or Layout describes
// the main tree; Grid is the shorthand ("2x3" = 2 rows by 3 columns, one
// pane each, components assigned row-major).
type Preset struct {
	Name        string         `yaml:"name,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Global      map[string]any `yaml:"global,omitempty"`

	// Component is the default for every grid pane; Components and Titles
	// override per pane, row-major.
	Grid       string   `yaml:"grid,omitempty"`
	Component  string   `yaml:"component,omitempty"`
	Components []string `yaml:"components,omitempty"`
	Titles     []string `yaml:"titles,omitempty"`

	Layout  *NodeDef    `yaml:"layout,omitempty"`
	Borders []BorderDef `yaml:"borders,omitempty"`
}

// Validate checks the parts of a preset that cannot be caught later by the
// model loader: the grid shape and border locations.
func (p *Preset) Validate() error {
	if p.Grid != "" {
		if _, _, err := parseGrid(p.Grid); err != nil {
			return err
		}
		if p.Layout != nil {
			return fmt.Errorf("preset %q: grid and layout are mutually exclusive", p.Name)
		}
	}
	seen := make(map[string]bool)
	for _, b := range p.Borders {
		loc := strings.ToLower(strings.TrimSpace(b.Location))
		switch loc {
		case "top", "bottom", "left", "right":
		default:
			return fmt.Errorf("preset %q: invalid border location %q", p.Name, b.Location)
		}
		if seen[loc] {
			return fmt.Errorf("preset %q: duplicate border %q", p.Name, loc)
		}
		seen[loc] = true
	}
	return nil
}

// parseGrid splits a "RxC" shape into rows and columns.
func parseGrid(grid string) (rows, cols int, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(grid)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid grid %q, want ROWSxCOLS", grid)
	}
	rows, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid rows in %q", grid)
	}
	cols, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid columns in %q", grid)
	}
	if rows < 1 || cols < 1 || rows > 16 || cols > 16 {
		return 0, 0, fmt.Errorf("grid %q out of range", grid)
	}
	return rows, cols, nil
}

// LoadFile reads and validates a single preset file.
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes preset YAML and validates it.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
