package logging

import "strings"

// Mode selects the logging defaults: plain CLI commands log errors to
// stderr, the interactive viewer redirects to a file.
type Mode uint8

const (
	ModeCLI Mode = iota + 1
	ModeView
)

// ModeFromArgs inspects the command line before flag parsing so logging can
// initialize ahead of the CLI framework.
func ModeFromArgs(args []string) Mode {
	if len(args) < 2 {
		return ModeCLI
	}
	cmd := strings.ToLower(strings.TrimSpace(args[1]))
	if cmd == "view" || cmd == "edit" {
		return ModeView
	}
	return ModeCLI
}

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	default:
		return "cli"
	}
}
