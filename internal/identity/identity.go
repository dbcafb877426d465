package identity

const (
	BrandName = "DockTree"
	// AppSlug is the canonical identifier for user-facing and on-disk state.
	// It intentionally matches the only supported CLI binary name.
	AppSlug = "docktree"
	CLIName = "docktree"

	ProjectPresetFileYML  = ".docktree.yml"
	ProjectPresetFileYAML = ".docktree.yaml"

	GlobalConfigFile = "config.yml"
	GlobalPresetsDir = "presets"
)
