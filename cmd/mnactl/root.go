package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	questionnaireID string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "mnactl",
	Short: "Score, report and export MNA assessments from the command line",
	Long: `mnactl scores Mini Nutritional Assessment answers offline and reads the
assessment store to print reports or write the CSV export.

Store access uses the same MONGODB_* and APP_* environment variables as the
HTTP service.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&questionnaireID, "questionnaire", "q", "", "Questionnaire id (mna-full|mna-sf), empty for all or the default")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log usecase activity to stderr")
}

func newCLILogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
