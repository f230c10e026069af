package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"intakeflow/internal/app"
	"intakeflow/internal/config"
	"intakeflow/internal/model"
	"intakeflow/internal/service"
	"os"

	"github.com/spf13/cobra"
)

var errSubmitFailed = errors.New("submission failed")

var (
	submitFile    string
	submitProject string
	submitStatus  string
	submitToken   string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an answers file as a new intake",
	Long: `Submit the answers file to the store selected by STORE_BACKEND and print
the result envelope as JSON. Every call creates a new intake.

Examples:
  intakectl submit -f answers.yaml
  intakectl submit -f answers.yaml --project "CRM Autopilot" --status draft
  INTAKE_ACCESS_TOKEN=eyJ... intakectl submit -f answers.yaml`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "Answers file (YAML)")
	submitCmd.Flags().StringVar(&submitProject, "project", "", "Project name (overrides the file)")
	submitCmd.Flags().StringVar(&submitStatus, "status", "", "Intake status: draft, in-progress or completed")
	submitCmd.Flags().StringVar(&submitToken, "token", "", "Access token (default $INTAKE_ACCESS_TOKEN)")
	submitCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	f, err := loadAnswers(submitFile)
	if err != nil {
		return err
	}

	cfg := config.Load()
	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	return submitAnswers(ctx, cmd, service.NewIntakeService(store.Repo, store.Auth, logger), f)
}

func submitAnswers(ctx context.Context, cmd *cobra.Command, svc *service.IntakeService, f *answersFile) error {
	in := service.SubmitInput{
		Answers:     f.answerSet(),
		ProjectName: f.ProjectName,
		Status:      f.Status,
		AccessToken: submitToken,
	}
	if submitProject != "" {
		in.ProjectName = &submitProject
	}
	if submitStatus != "" {
		status := model.IntakeStatus(submitStatus)
		in.Status = &status
	}
	if in.AccessToken == "" {
		in.AccessToken = os.Getenv("INTAKE_ACCESS_TOKEN")
	}

	res := svc.Submit(ctx, in)

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if !res.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), styleError.Render(res.Err().UserMessage))
		return errSubmitFailed
	}
	return nil
}
