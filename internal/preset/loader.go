package preset

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/regenrek/docktree/internal/appdirs"
	"github.com/regenrek/docktree/internal/identity"
)

//go:embed defaults/*.yml
var builtinFS embed.FS

// DefaultName is the preset used when nothing else is asked for.
const DefaultName = "default"

// Source tells where a preset was found.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceGlobal  Source = "global"
	SourceProject Source = "project"
)

// Entry is one resolved preset together with its provenance.
type Entry struct {
	Preset *Preset
	Source Source
	Path   string // empty for builtins and config-file presets
}

// globalConfig is the shape of the optional global config.yml; presets can
// be declared inline there next to the presets directory.
type globalConfig struct {
	Presets map[string]Preset `yaml:"presets,omitempty"`
}

// Loader accumulates presets from all sources and resolves names with
// project beating global beating builtin.
type Loader struct {
	builtins map[string]*Entry
	globals  map[string]*Entry
	project  *Entry
}

func NewLoader() *Loader {
	return &Loader{
		builtins: make(map[string]*Entry),
		globals:  make(map[string]*Entry),
	}
}

// LoadAll loads builtins, the user-wide presets, and the project preset in
// projectDir (usually the working directory). Missing sources are fine;
// builtins failing to parse is a bug and reported.
func (l *Loader) LoadAll(projectDir string) error {
	if err := l.LoadBuiltins(); err != nil {
		return err
	}
	if dir, err := appdirs.GlobalPresetsDirPath(); err == nil {
		_ = l.LoadGlobalDir(dir)
	}
	if dir, err := appdirs.ConfigDirPath(); err == nil {
		_ = l.LoadGlobalConfig(filepath.Join(dir, identity.GlobalConfigFile))
	}
	_ = l.LoadProject(projectDir)
	return nil
}

// LoadBuiltins parses the embedded presets.
func (l *Loader) LoadBuiltins() error {
	entries, err := builtinFS.ReadDir("defaults")
	if err != nil {
		return fmt.Errorf("read builtin presets: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !isPresetFileName(e.Name()) {
			continue
		}
		data, err := builtinFS.ReadFile("defaults/" + e.Name())
		if err != nil {
			return fmt.Errorf("read builtin preset %s: %w", e.Name(), err)
		}
		p, err := Parse(data)
		if err != nil {
			return fmt.Errorf("builtin preset %s: %w", e.Name(), err)
		}
		name := presetName(p, e.Name())
		p.Name = name
		l.builtins[name] = &Entry{Preset: p, Source: SourceBuiltin}
	}
	return nil
}

// LoadGlobalDir loads every preset file in dir. Unparseable files are
// skipped so one broken preset does not hide the rest.
func (l *Loader) LoadGlobalDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !isPresetFileName(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := LoadFile(path)
		if err != nil {
			continue
		}
		name := presetName(p, e.Name())
		p.Name = name
		l.globals[name] = &Entry{Preset: p, Source: SourceGlobal, Path: path}
	}
	return nil
}

// LoadGlobalConfig merges presets declared inline in the global config
// file. Directory files win over inline declarations of the same name.
func (l *Loader) LoadGlobalConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var cfg globalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for name, p := range cfg.Presets {
		if _, exists := l.globals[name]; exists {
			continue
		}
		cp := p
		cp.Name = name
		if err := cp.Validate(); err != nil {
			continue
		}
		l.globals[name] = &Entry{Preset: &cp, Source: SourceGlobal, Path: path}
	}
	return nil
}

// LoadProject looks for the project preset file in dir.
func (l *Loader) LoadProject(dir string) error {
	for _, base := range []string{identity.ProjectPresetFileYML, identity.ProjectPresetFileYAML} {
		path := filepath.Join(dir, base)
		p, err := LoadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("project preset %s: %w", path, err)
		}
		if p.Name == "" {
			p.Name = filepath.Base(dir)
		}
		l.project = &Entry{Preset: p, Source: SourceProject, Path: path}
		return nil
	}
	return nil
}

// Get resolves a preset name. The empty name means "whatever applies
// here": the project preset when present, otherwise the builtin default.
func (l *Loader) Get(name string) (*Entry, bool) {
	if name == "" {
		if l.project != nil {
			return l.project, true
		}
		name = DefaultName
	}
	if l.project != nil && l.project.Preset.Name == name {
		return l.project, true
	}
	if e, ok := l.globals[name]; ok {
		return e, true
	}
	if e, ok := l.builtins[name]; ok {
		return e, true
	}
	return nil, false
}

// List returns every visible preset, precedence applied, sorted by name.
func (l *Loader) List() []Entry {
	seen := make(map[string]bool)
	var out []Entry
	if l.project != nil {
		seen[l.project.Preset.Name] = true
		out = append(out, *l.project)
	}
	for name, e := range l.globals {
		if !seen[name] {
			seen[name] = true
			out = append(out, *e)
		}
	}
	for name, e := range l.builtins {
		if !seen[name] {
			seen[name] = true
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Preset.Name < out[j].Preset.Name })
	return out
}

func presetName(p *Preset, fileName string) string {
	if p.Name != "" {
		return p.Name
	}
	return strings.TrimSuffix(strings.TrimSuffix(fileName, ".yaml"), ".yml")
}

func isPresetFileName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}
