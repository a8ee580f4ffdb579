package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/testplan-tools/treport/internal/cli"
	"github.com/testplan-tools/treport/internal/errors"
	"github.com/testplan-tools/treport/internal/fs"
	"github.com/testplan-tools/treport/internal/logging"
)

var (
	treport cli.Service

	// initializationErrors collects failures during flag setup; they are surfaced once the CLI runs.
	initializationErrors []error

	rootCmd = &cobra.Command{
		Use:               "treport",
		Short:             "treport inspects, filters & merges Testplan report payloads",
		Long:              descriptionTreport,
		PersistentPreRunE: initCLIService,
		SilenceErrors:     true, // Errors are manually printed in 'main'
		SilenceUsage:      true, // Disables usage text on error
	}
)

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", "", "write the result to a file instead of stdout")
	rootCmd.PersistentFlags().String(
		"structure", "", "the structure file of a split report (version 2 payloads)",
	)
	rootCmd.PersistentFlags().StringSlice(
		"assertions", nil, "glob(s) matching the assertion files of a split report",
	)

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		initializationErrors = append(initializationErrors, err)
	}

	viper.SetEnvPrefix("TREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initCLIService(_ *cobra.Command, _ []string) error {
	if len(initializationErrors) > 0 {
		return errors.NewInternalError("unable to configure CLI: %s", initializationErrors[0])
	}

	logger := logging.NewProductionLogger()
	if viper.GetBool("debug") {
		logger = logging.NewDebugLogger()
	}

	treport = cli.Service{
		Log:        logger,
		FileSystem: fs.Local{},
	}

	return nil
}
