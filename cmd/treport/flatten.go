package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/testplan-tools/treport/internal/cli"
	"github.com/testplan-tools/treport/internal/errors"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [--output=<path>] <report-file>",
	Short: "Merge the shards of part-based multitests into single entries",
	Long:  descriptionFlatten,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := treport.Flatten(cmd.Context(), cli.FlattenConfig{
			ReportPath:     args[0],
			StructurePath:  viper.GetString("structure"),
			AssertionGlobs: viper.GetStringSlice("assertions"),
			OutputPath:     viper.GetString("output"),
		})
		return errors.WithStack(err)
	},
}
