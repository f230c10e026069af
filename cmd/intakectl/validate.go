package main

import (
	"errors"
	"fmt"
	"intakeflow/internal/model"
	"intakeflow/internal/service"

	"github.com/spf13/cobra"
)

var errIncomplete = errors.New("intake is not complete")

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an answers file question by question",
	Long: `Validate every answer in the file against its question.

States:
  valid          long enough and carries a metric where one is required
  needs-metrics  long enough but no percentage, amount or count was found
  incomplete     shorter than the question's minimum

Examples:
  intakectl validate -f answers.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Answers file (YAML)")
	validateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := loadAnswers(validateFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	checks, complete := service.CheckAnswers(f.answerSet())
	for _, c := range checks {
		fmt.Fprintln(out, styleColumn.Render(c.QuestionID)+renderState(c.State))
	}

	if !complete {
		fmt.Fprintln(out, styleWarning.Render("Some answers need more work"))
		return errIncomplete
	}
	fmt.Fprintln(out, styleSuccess.Render("All answers are valid"))
	return nil
}

func renderState(s model.ValidationState) string {
	switch s {
	case model.ValidationValid:
		return styleSuccess.Render(string(s))
	case model.ValidationNeedsMetrics:
		return styleWarning.Render(string(s))
	default:
		return styleError.Render(string(s))
	}
}
