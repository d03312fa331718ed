// Command paginator is the CLI front end for the pagination state engine.
package main

import (
	"os"

	"github.com/rshade/paginator/internal/cli"
	"github.com/rshade/paginator/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		// Cobra already printed the error; just set the exit code.
		return 1
	}
	return 0
}
