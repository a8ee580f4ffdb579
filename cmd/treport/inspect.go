package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/testplan-tools/treport/internal/cli"
	"github.com/testplan-tools/treport/internal/errors"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [--output=<path>] <report-file>",
	Short: "Print a summary of a report: case counts, per-status totals & tags",
	Long:  descriptionInspect,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := treport.Inspect(cmd.Context(), cli.InspectConfig{
			ReportPath:     args[0],
			StructurePath:  viper.GetString("structure"),
			AssertionGlobs: viper.GetStringSlice("assertions"),
			OutputPath:     viper.GetString("output"),
		})
		return errors.WithStack(err)
	},
}
