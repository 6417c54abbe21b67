package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/dto/requests"
)

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write stored assessments to a CSV file",
	Long: `Writes the same CSV the HTTP export serves: UTF-8 with a byte order mark,
every field quoted, dates rendered in the configured timezone. Nothing is
written when no assessment matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		usecase, closeFn := openAssessmentUsecase()
		defer closeFn()
		return runExport(cmd.Context(), cmd.ErrOrStderr(), usecase, questionnaireID, exportPath)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "mna-assessment-report.csv", "Destination file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(ctx context.Context, out io.Writer, usecase contracts.AssessmentUsecase, questionnaire, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	export, err := usecase.ExportCSV(ctx, &requests.FindAllAssessment{Questionnaire: questionnaire})
	if err != nil {
		return err
	}

	err = os.WriteFile(path, export.Content, 0o644)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %d rows to %s\n", newPrintStyles().dim.Render("wrote"), export.Rows, path)
	return nil
}
