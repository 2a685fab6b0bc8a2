// Command galleria is a terminal client for browsing a remotely
// paginated art catalogue with cross-page selection.
package main

import (
	"os"

	"github.com/galleria-labs/galleria-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
