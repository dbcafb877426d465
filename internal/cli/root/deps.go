// Package root holds the shared plumbing of the command tree: handler
// dependencies, the per-invocation context, and the envelope-aware runner.
package root

import (
	"io"
	"os"

	"github.com/regenrek/docktree/internal/identity"
)

// Dependencies provides external services for CLI handlers.
type Dependencies struct {
	Version string
	AppName string
	WorkDir string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// DefaultDependencies returns dependencies wired to the real process.
func DefaultDependencies(version string) Dependencies {
	return Dependencies{
		Version: version,
		AppName: identity.CLIName,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}

// ResolveWorkDir returns the configured working directory, falling back to
// the process one.
func (d Dependencies) ResolveWorkDir() (string, error) {
	if d.WorkDir != "" {
		return d.WorkDir, nil
	}
	return os.Getwd()
}
