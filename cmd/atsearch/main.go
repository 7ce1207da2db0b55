// Command atsearch opens site-scoped job searches across applicant
// tracking systems.
package main

import (
	"os"

	"github.com/custodia-labs/atsearch/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
