// Package main holds the terminal interface of treport. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business
// logic itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	// Logging is expected to take place in `internal/cli`, as text output is the primary way of
	// communicating to a user on the terminal. The error here mainly signals the exit code.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
