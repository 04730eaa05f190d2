// plume is a local-first CLI for planning a single wedding production.
package main

import (
	"os"

	"github.com/plume-labs/plume-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
