package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"mna-assessment-service/internal/pkg/scoring"
)

var (
	answersPath string
	scoreAsJSON bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a JSON file of answers without storing it",
	Long: `Reads a JSON object mapping answer keys to codes, for example
{"appetite":"none","ac":"23","cc":"32"}, and prints the total, the status and
the points of every item. Answers the questionnaire cannot interpret score 0
and are listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScore(cmd.OutOrStdout(), questionnaireID, answersPath, scoreAsJSON)
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&answersPath, "answers", "a", "", "Path to the answers JSON file, - for stdin")
	scoreCmd.Flags().BoolVar(&scoreAsJSON, "json", false, "Print the result as JSON")
	scoreCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(out io.Writer, questionnaire, path string, asJSON bool) error {
	def, ok := scoring.Resolve(questionnaire)
	if !ok {
		return fmt.Errorf("unknown questionnaire %q", questionnaire)
	}

	raw, err := readAnswers(path)
	if err != nil {
		return err
	}

	var answers scoring.Answers
	err = json.Unmarshal(raw, &answers)
	if err != nil {
		return fmt.Errorf("answers must be a JSON object of strings: %w", err)
	}

	result := def.Score(answers)
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	renderResult(out, def, result)
	return nil
}

func readAnswers(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
