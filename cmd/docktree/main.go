package main

import (
	"os"

	"github.com/regenrek/docktree/internal/cli/entry"
)

var version = "dev"

func main() {
	os.Exit(entry.Run(os.Args, version))
}
