package main

import (
	"fmt"
	"intakeflow/internal/catalog"
	"strings"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the intake questions",
	Args:  cobra.NoArgs,
	RunE:  runQuestions,
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, q := range catalog.Questions() {
		var b strings.Builder
		fmt.Fprintf(&b, "%s  %s\n", styleTitle.Render(fmt.Sprintf("%d. %s", i+1, q.ID)), q.Title)
		fmt.Fprintf(&b, "%s\n", q.Description)

		rules := fmt.Sprintf("min %d characters", q.MinCharacters)
		if q.RequiresMetrics {
			rules += ", needs a metric"
		}
		b.WriteString(styleMuted.Render(rules))
		for _, prompt := range q.SubPrompts {
			fmt.Fprintf(&b, "\n  - %s", prompt)
		}
		for _, ex := range q.Examples {
			fmt.Fprintf(&b, "\n%s %s", styleSuccess.Render("example:"), ex.Content)
		}
		fmt.Fprintln(out, styleBox.Render(b.String()))
	}
	return nil
}
