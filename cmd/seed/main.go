package main

import (
	"context"
	"intakeflow/internal/apierr"
	"intakeflow/internal/app"
	"intakeflow/internal/catalog"
	"intakeflow/internal/config"
	"intakeflow/internal/model"
	"intakeflow/internal/service"
	"log"
	"time"

	"go.uber.org/zap"
)

// demoAnswers is a complete intake for a sales tooling project
var demoAnswers = model.AnswerSet{
	catalog.BusinessImpact: "Our sales team spends 5 hours per week manually updating deal stages across the CRM and " +
		"the forecasting sheet. Stale stages cause the weekly forecast to miss by 15% and leadership " +
		"loses trust in the pipeline numbers.",
	catalog.UserValue: "Enterprise Account Executives handling complex multi-stakeholder deals, about 75 users. " +
		"Today they copy notes between three tools after every call; with this they would save 10 minutes " +
		"per meeting and keep the pipeline current.",
	catalog.TechnicalScope: "Capture call outcomes from the calendar integration, suggest the next deal stage, " +
		"and write approved changes back to the CRM. Includes an approval queue, an audit log, and a nightly " +
		"reconciliation job with the forecast sheet.",
	catalog.SuccessMetrics: "Forecast accuracy improves from 85% to 95% within two quarters, and manual stage " +
		"updates drop by 80% for the pilot team. Reps rate the suggestions useful in at least 70% of calls.",
	catalog.Dependencies: "Requires CRM API write access and the calendar integration scopes. Must respect SSO and " +
		"the data retention policy for call notes, and the finance team must sign off on forecast sheet changes.",
	catalog.UserExperience: "Suggestions appear inline in the deal view. One click to accept, nothing changes " +
		"without the rep approving it, and every change can be undone from the audit log.",
	catalog.AdoptionPlan: "Pilot with one enterprise pod for four weeks, review accuracy weekly, then roll out " +
		"region by region with a short enablement session and office hours for the first month.",
}

func main() {
	cfg := config.Load()

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close(ctx)

	name := "Deal Stage Autopilot"
	res := service.NewIntakeService(store.Repo, store.Auth, logger).Submit(ctx, service.SubmitInput{
		Answers:     demoAnswers,
		ProjectName: &name,
	})

	res.Match(func(ok service.SubmitSuccess) {
		logger.Info("Seeded demo intake", zap.String("intakeId", ok.IntakeID), zap.String("backend", store.Backend))
	}, func(e *apierr.Error) {
		logger.Fatal("Failed to seed demo intake", zap.String("code", string(e.Code)), zap.String("message", e.Message))
	})
}
