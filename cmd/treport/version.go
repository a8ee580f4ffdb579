package main

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of this CLI",
	Run: func(_ *cobra.Command, _ []string) {
		treport.Version()
	},
}
