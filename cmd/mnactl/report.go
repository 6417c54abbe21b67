package main

import (
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/dto/requests"
)

var reportAsJSON bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the summary of stored assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		usecase, closeFn := openAssessmentUsecase()
		defer closeFn()
		return runReport(cmd.Context(), cmd.OutOrStdout(), usecase, questionnaireID, reportAsJSON)
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportAsJSON, "json", false, "Print the summary as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(ctx context.Context, out io.Writer, usecase contracts.AssessmentUsecase, questionnaire string, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	report, err := usecase.GetReport(ctx, &requests.FindAllAssessment{Questionnaire: questionnaire})
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
	renderReport(out, report)
	return nil
}
