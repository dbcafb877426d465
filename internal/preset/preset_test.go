package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/regenrek/docktree/pkg/dock"
)

func mustCompile(t *testing.T, p *Preset) *dock.Model {
	t.Helper()
	m, err := Compile(p)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return m
}

func soleTab(t *testing.T, n dock.Node) *dock.TabNode {
	t.Helper()
	ts, ok := n.(*dock.TabSetNode)
	if !ok {
		t.Fatalf("node %s is %T, want tabset", n.ID(), n)
	}
	if len(ts.Children()) != 1 {
		t.Fatalf("tabset %s has %d tabs, want 1", ts.ID(), len(ts.Children()))
	}
	return ts.Children()[0].(*dock.TabNode)
}

func TestParseGrid(t *testing.T) {
	cases := []struct {
		grid       string
		rows, cols int
		ok         bool
	}{
		{"2x3", 2, 3, true},
		{" 1X1 ", 1, 1, true},
		{"4", 0, 0, false},
		{"0x2", 0, 0, false},
		{"2x99", 0, 0, false},
		{"axb", 0, 0, false},
	}
	for _, tc := range cases {
		rows, cols, err := parseGrid(tc.grid)
		if tc.ok != (err == nil) {
			t.Fatalf("parseGrid(%q) err = %v, want ok=%v", tc.grid, err, tc.ok)
		}
		if tc.ok && (rows != tc.rows || cols != tc.cols) {
			t.Fatalf("parseGrid(%q) = %dx%d, want %dx%d", tc.grid, rows, cols, tc.rows, tc.cols)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := (&Preset{Grid: "2x2", Layout: &NodeDef{}}).Validate(); err == nil {
		t.Fatalf("expected error for grid with explicit layout")
	}
	if err := (&Preset{Borders: []BorderDef{{Location: "middle"}}}).Validate(); err == nil {
		t.Fatalf("expected error for bad border location")
	}
	dup := []BorderDef{{Location: "bottom"}, {Location: "Bottom"}}
	if err := (&Preset{Borders: dup}).Validate(); err == nil {
		t.Fatalf("expected error for duplicate border location")
	}
	if err := (&Preset{Grid: "3x3", Borders: []BorderDef{{Location: "left"}}}).Validate(); err != nil {
		t.Fatalf("valid preset rejected: %v", err)
	}
}

func TestCompileEmptyPresetMakesSinglePane(t *testing.T) {
	m := mustCompile(t, &Preset{Name: "empty"})

	root := m.Root()
	if len(root.Children()) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children()))
	}
	tab := soleTab(t, root.Children()[0])
	if tab.Name() != "Pane 1" {
		t.Fatalf("tab name = %q, want %q", tab.Name(), "Pane 1")
	}
}

func TestCompileGridRowMajorComponents(t *testing.T) {
	p := &Preset{
		Grid:       "2x2",
		Components: []string{"a", "b", "c", "d"},
	}
	m := mustCompile(t, p)

	root := m.Root()
	if len(root.Children()) != 2 {
		t.Fatalf("root has %d columns, want 2", len(root.Children()))
	}
	// Column c holds panes c, c+cols, ... top to bottom.
	want := [2][2]string{{"a", "c"}, {"b", "d"}}
	for c, colNode := range root.Children() {
		col, ok := colNode.(*dock.RowNode)
		if !ok {
			t.Fatalf("column %d is %T, want row", c, colNode)
		}
		if len(col.Children()) != 2 {
			t.Fatalf("column %d has %d cells, want 2", c, len(col.Children()))
		}
		for r, cell := range col.Children() {
			tab := soleTab(t, cell)
			if tab.Component() != want[c][r] {
				t.Fatalf("pane (%d,%d) component = %q, want %q", r, c, tab.Component(), want[c][r])
			}
		}
	}
}

func TestCompileGridSingleRowFlattens(t *testing.T) {
	p := &Preset{Grid: "1x3", Component: "shell", Titles: []string{"one", "", "three"}}
	m := mustCompile(t, p)

	root := m.Root()
	if len(root.Children()) != 3 {
		t.Fatalf("root has %d children, want 3", len(root.Children()))
	}
	names := []string{"one", "shell", "three"}
	for i, child := range root.Children() {
		tab := soleTab(t, child)
		if tab.Component() != "shell" {
			t.Fatalf("pane %d component = %q, want shell", i, tab.Component())
		}
		if tab.Name() != names[i] {
			t.Fatalf("pane %d name = %q, want %q", i, tab.Name(), names[i])
		}
	}
}

func TestCompileExplicitLayout(t *testing.T) {
	sel := 0
	p := &Preset{
		Name:   "ide",
		Global: map[string]any{"tabSetEnableMaximize": false},
		Layout: &NodeDef{
			Children: []NodeDef{
				{Weight: 25, Tabs: []TabDef{{Name: "Explorer", Component: "explorer"}}},
				{Weight: 75, Tabs: []TabDef{
					{Component: "editor", Config: map[string]any{"path": "main.go"}},
				}},
			},
		},
		Borders: []BorderDef{
			{Location: "bottom", Size: 160, Selected: &sel, Tabs: []TabDef{{Component: "terminal"}}},
		},
	}
	m := mustCompile(t, p)

	root := m.Root()
	if len(root.Children()) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children()))
	}
	side := root.Children()[0].(*dock.TabSetNode)
	if side.Weight() != 25 {
		t.Fatalf("sidebar weight = %v, want 25", side.Weight())
	}
	if side.EnableMaximize() {
		t.Fatalf("global tabSetEnableMaximize=false not applied")
	}
	editor := soleTab(t, root.Children()[1])
	if editor.Name() != "editor" {
		t.Fatalf("editor tab name = %q, want component fallback", editor.Name())
	}
	cfg, ok := editor.Config().(map[string]any)
	if !ok || cfg["path"] != "main.go" {
		t.Fatalf("editor config = %#v", editor.Config())
	}

	border := m.Borders().Border(dock.DockBottom)
	if border == nil {
		t.Fatalf("bottom border missing")
	}
	if border.Size() != 160 || border.Selected() != 0 {
		t.Fatalf("border size=%v selected=%d, want 160/0", border.Size(), border.Selected())
	}
}

func TestCompileRejectsMixedNode(t *testing.T) {
	p := &Preset{Layout: &NodeDef{
		Tabs:     []TabDef{{Component: "a"}},
		Children: []NodeDef{{Tabs: []TabDef{{Component: "b"}}}},
	}}
	if _, err := Compile(p); err == nil {
		t.Fatalf("expected error for node with both tabs and children")
	}
}

func TestBuiltinsLoadAndCompile(t *testing.T) {
	l := NewLoader()
	if err := l.LoadBuiltins(); err != nil {
		t.Fatalf("LoadBuiltins: %v", err)
	}
	for _, name := range []string{"default", "ide", "grid"} {
		e, ok := l.Get(name)
		if !ok {
			t.Fatalf("builtin %q missing", name)
		}
		if e.Source != SourceBuiltin {
			t.Fatalf("builtin %q source = %q", name, e.Source)
		}
		if _, err := Compile(e.Preset); err != nil {
			t.Fatalf("builtin %q does not compile: %v", name, err)
		}
	}
}

func TestLoaderPrecedence(t *testing.T) {
	globalDir := t.TempDir()
	globalPreset := "name: default\ndescription: user default\ngrid: 1x2\n"
	if err := os.WriteFile(filepath.Join(globalDir, "default.yml"), []byte(globalPreset), 0o600); err != nil {
		t.Fatalf("write global preset: %v", err)
	}

	projectDir := t.TempDir()
	projectPreset := "name: myproject\ngrid: 2x1\ncomponent: editor\n"
	if err := os.WriteFile(filepath.Join(projectDir, ".docktree.yml"), []byte(projectPreset), 0o600); err != nil {
		t.Fatalf("write project preset: %v", err)
	}

	l := NewLoader()
	if err := l.LoadBuiltins(); err != nil {
		t.Fatalf("LoadBuiltins: %v", err)
	}
	if err := l.LoadGlobalDir(globalDir); err != nil {
		t.Fatalf("LoadGlobalDir: %v", err)
	}
	if err := l.LoadProject(projectDir); err != nil {
		t.Fatalf("LoadProject: %v", err)
	}

	// The empty name resolves to the project preset when one is loaded.
	e, ok := l.Get("")
	if !ok || e.Source != SourceProject || e.Preset.Name != "myproject" {
		t.Fatalf("Get(\"\") = %+v, %v", e, ok)
	}
	// Global shadows the builtin of the same name.
	e, ok = l.Get("default")
	if !ok || e.Source != SourceGlobal || e.Preset.Description != "user default" {
		t.Fatalf("Get(default) = %+v, %v", e, ok)
	}
	if _, ok := l.Get("nope"); ok {
		t.Fatalf("unknown preset resolved")
	}

	seen := make(map[string]Source)
	for _, entry := range l.List() {
		if prev, dup := seen[entry.Preset.Name]; dup {
			t.Fatalf("List has duplicate %q (%q and %q)", entry.Preset.Name, prev, entry.Source)
		}
		seen[entry.Preset.Name] = entry.Source
	}
	if seen["default"] != SourceGlobal || seen["myproject"] != SourceProject || seen["ide"] != SourceBuiltin {
		t.Fatalf("List precedence wrong: %v", seen)
	}
}

func TestLoadGlobalConfigInlinePresets(t *testing.T) {
	dir := t.TempDir()
	cfg := `
presets:
  review:
    description: inline review layout
    grid: 1x2
    components: [diff, notes]
  shadowed:
    grid: 1x1
`
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	l := NewLoader()
	// A directory preset of the same name wins over the inline declaration.
	l.globals["shadowed"] = &Entry{Preset: &Preset{Name: "shadowed", Grid: "3x1"}, Source: SourceGlobal}
	if err := l.LoadGlobalConfig(path); err != nil {
		t.Fatalf("LoadGlobalConfig: %v", err)
	}

	e, ok := l.Get("review")
	if !ok || e.Preset.Description != "inline review layout" {
		t.Fatalf("inline preset missing: %+v, %v", e, ok)
	}
	if e, _ := l.Get("shadowed"); e.Preset.Grid != "3x1" {
		t.Fatalf("inline preset shadowed the directory preset")
	}
	if err := l.LoadGlobalConfig(filepath.Join(dir, "absent.yml")); err != nil {
		t.Fatalf("missing config file should be fine: %v", err)
	}
}

func TestLoadProjectUsesDirNameWhenUnnamed(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "webapp")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".docktree.yaml"), []byte("grid: 1x1\n"), 0o600); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	l := NewLoader()
	if err := l.LoadProject(dir); err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	e, ok := l.Get("")
	if !ok || e.Preset.Name != "webapp" {
		t.Fatalf("project preset name = %+v, %v", e, ok)
	}
}
