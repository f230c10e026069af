package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intakectl",
	Short: "intakectl - project intake from the command line",
	Long: `intakectl lists the intake questions, checks an answers file against
them, and submits a finished intake to the configured store.

Commands:
  questions   List the intake questions
  validate    Check an answers file question by question
  submit      Submit an answers file as a new intake

Answers file (YAML):
  projectName: CRM Autopilot
  status: completed
  answers:
    q1-business-impact: |
      Our sales team loses 5 hours per week ...

Run "intakectl questions" for every question id.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
