// Package appdirs resolves the per-user directories docktree reads and
// writes: the config dir for global settings and presets, and the data dir
// for logs and saved layouts. Environment overrides take precedence so
// tests and sandboxed installs can redirect all on-disk state.
package appdirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/regenrek/docktree/internal/identity"
)

const (
	EnvConfigDir = "DOCKTREE_CONFIG_DIR"
	EnvDataDir   = "DOCKTREE_DATA_DIR"
)

// ConfigDir returns the directory holding config.yml and the presets
// subdirectory, creating it when missing.
func ConfigDir() (string, error) {
	dir, err := ConfigDirPath()
	if err != nil {
		return "", err
	}
	return ensureDir(dir)
}

// ConfigDirPath resolves the config directory without creating it.
func ConfigDirPath() (string, error) {
	if override := os.Getenv(EnvConfigDir); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// DataDir returns the directory for logs and saved layout documents,
// creating it when missing.
func DataDir() (string, error) {
	dir, err := DataDirPath()
	if err != nil {
		return "", err
	}
	return ensureDir(dir)
}

// DataDirPath resolves the data directory without creating it.
func DataDirPath() (string, error) {
	if override := os.Getenv(EnvDataDir); override != "" {
		return override, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// GlobalPresetsDir returns the presets directory under the config dir,
// creating the chain when missing.
func GlobalPresetsDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(dir, identity.GlobalPresetsDir))
}

// GlobalPresetsDirPath resolves the presets directory without creating it.
func GlobalPresetsDirPath() (string, error) {
	dir, err := ConfigDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalPresetsDir), nil
}

func ensureDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory path is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create dir: %w", err)
		}
		return dir, nil
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}
	return dir, nil
}
