// Package atomicfile writes files via a temp-file-and-rename sequence so a
// crash mid-write never leaves a truncated layout or preset on disk.
package atomicfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes data to path atomically, creating parent directories as
// needed. A zero perm defaults to 0600: layout documents may embed
// project-specific configuration not meant to be world-readable.
func Save(path string, data []byte, perm os.FileMode) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("atomicfile: path is required")
	}
	if perm == 0 {
		perm = 0o600
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("atomicfile: create dir: %w", err)
	}

	name, err := writeTemp(dir, data, perm)
	if err != nil {
		return err
	}
	if err := replace(name, path); err != nil {
		_ = os.Remove(name)
		return err
	}
	_ = os.Chmod(path, perm)
	return nil
}

// writeTemp writes data to a temp file in dir, synced and closed, and
// returns its name. The caller owns cleanup on failure.
func writeTemp(dir string, data []byte, perm os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(dir, "docktree-*.tmp")
	if err != nil {
		return "", fmt.Errorf("atomicfile: create temp: %w", err)
	}
	name := tmp.Name()
	fail := func(step string, err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("atomicfile: %s temp: %w", step, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("chmod", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("atomicfile: close temp: %w", err)
	}
	return name, nil
}

// replace renames the temp file over the target. On platforms where rename
// cannot replace an existing file, the target is removed and the rename
// retried once.
func replace(name, path string) error {
	err := os.Rename(name, path)
	if err == nil {
		return nil
	}
	if removeErr := os.Remove(path); removeErr == nil || os.IsNotExist(removeErr) {
		if retryErr := os.Rename(name, path); retryErr == nil {
			return nil
		} else {
			err = retryErr
		}
	}
	return fmt.Errorf("atomicfile: replace file: %w", err)
}
