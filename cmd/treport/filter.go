package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/testplan-tools/treport/internal/cli"
	"github.com/testplan-tools/treport/internal/errors"
)

var filterCmd = &cobra.Command{
	Use:   "filter [--search=<query>] [--output=<path>] <report-file>",
	Short: "Prune a report down to the entries matching a search query",
	Long:  descriptionFilter,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := treport.Filter(cmd.Context(), cli.FilterConfig{
			ReportPath:     args[0],
			StructurePath:  viper.GetString("structure"),
			AssertionGlobs: viper.GetStringSlice("assertions"),
			Search:         viper.GetString("search"),
			OutputPath:     viper.GetString("output"),
		})
		return errors.WithStack(err)
	},
}

func init() {
	filterCmd.Flags().String("search", "", "the search query to filter the report with")

	if err := viper.BindPFlag("search", filterCmd.Flags().Lookup("search")); err != nil {
		initializationErrors = append(initializationErrors, err)
	}
}
