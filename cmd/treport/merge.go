package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/testplan-tools/treport/internal/cli"
	"github.com/testplan-tools/treport/internal/errors"
)

var mergeCmd = &cobra.Command{
	Use:   "merge --structure=<path> --assertions=<glob> [--output=<path>] <report-file>",
	Short: "Reassemble a report that was exported as split payloads",
	Long:  descriptionMerge,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := treport.Merge(cmd.Context(), cli.MergeConfig{
			ReportPath:     args[0],
			StructurePath:  viper.GetString("structure"),
			AssertionGlobs: viper.GetStringSlice("assertions"),
			OutputPath:     viper.GetString("output"),
		})
		return errors.WithStack(err)
	},
}
