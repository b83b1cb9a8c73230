package main

import (
	"fmt"
	"os"

	"github.com/carbonfocus/carbonfocus/internal/cli"
	"github.com/carbonfocus/carbonfocus/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
// Kept separate from main so tests can reference it.
func run() int {
	if err := cli.NewRootCmd(version.GetVersion()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
