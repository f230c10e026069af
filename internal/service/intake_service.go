package service

import (
	"context"
	"intakeflow/internal/apierr"
	"intakeflow/internal/model"
	"intakeflow/internal/repository"

	"go.uber.org/zap"
)

// SubmitInput is a finished answer set handed to the submission pipeline
type SubmitInput struct {
	Answers     model.AnswerSet
	ProjectName *string
	Status      *model.IntakeStatus
	AccessToken string
}

// SubmitSuccess is the payload of a successful submission
type SubmitSuccess struct {
	IntakeID string `json:"intakeId"`
}

// IntakeService validates, shapes and persists completed intakes
type IntakeService struct {
	repo   repository.IntakeRepo
	auth   IdentityResolver
	logger *zap.Logger
}

// NewIntakeService creates a new intake service
func NewIntakeService(repo repository.IntakeRepo, auth IdentityResolver, logger *zap.Logger) *IntakeService {
	if auth == nil {
		auth = AnonymousAuth{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{
		repo:   repo,
		auth:   auth,
		logger: logger,
	}
}

// Submit maps an answer set to an intake record and persists it
func (s *IntakeService) Submit(ctx context.Context, in SubmitInput) apierr.Result[SubmitSuccess] {
	rec := ToRecord(in.Answers, in.ProjectName, in.Status)
	return s.SubmitRecord(ctx, rec, in.AccessToken)
}

// SubmitRecord persists an already-mapped record. Local validation runs
// before any network call; identity is resolved before the insert. Every
// failure, including a panic in a collaborator, comes back as a failed
// Result.
func (s *IntakeService) SubmitRecord(ctx context.Context, rec model.SubmissionRecord, accessToken string) (res apierr.Result[SubmitSuccess]) {
	defer func() {
		if r := recover(); r != nil {
			apiErr := apierr.From(r)
			s.logger.Error("intake submission panicked", zap.Any("panic", r))
			res = apierr.Fail[SubmitSuccess](apiErr)
		}
	}()

	if !rec.Status.Valid() {
		return s.fail(apierr.New(apierr.CodeValidationFailed,
			apierr.WithMessagef("invalid status %q", rec.Status),
			apierr.WithUserMessage("The intake status is not valid.")))
	}
	if apiErr := ValidateRecord(rec); apiErr != nil {
		return s.fail(apiErr)
	}

	// Once the network is involved the submission runs to completion; the
	// transport timeout bounds it.
	ctx = context.WithoutCancel(ctx)

	identity, err := s.auth.Resolve(ctx, accessToken)
	if err != nil {
		return s.fail(apierr.New(apierr.CodeAuthFailed,
			apierr.WithMessage(err.Error()),
			apierr.WithUserMessage("We could not verify your sign-in information."),
			apierr.WithCause(err)))
	}
	rec.UserID = nil
	if identity != nil && identity.ID != "" {
		uid := identity.ID
		rec.UserID = &uid
	}

	id, err := s.repo.Insert(ctx, &rec, accessToken)
	if err != nil {
		return s.fail(translateStoreError(err))
	}
	if id == "" {
		return s.fail(apierr.New(apierr.CodeDBInsertFailed,
			apierr.WithMessage("No id returned from insert"),
			apierr.WithUserMessage("We could not confirm that your intake was saved.")))
	}

	s.logger.Info("intake submitted",
		zap.String("intakeId", id),
		zap.String("status", string(rec.Status)),
		zap.Bool("anonymous", rec.UserID == nil))
	return apierr.Ok(SubmitSuccess{IntakeID: id})
}

func (s *IntakeService) fail(apiErr *apierr.Error) apierr.Result[SubmitSuccess] {
	s.logger.Warn("intake submission failed",
		zap.String("code", string(apiErr.Code)),
		zap.String("message", apiErr.Message),
		zap.NamedError("cause", apiErr.Cause))
	return apierr.Fail[SubmitSuccess](apiErr)
}

func translateStoreError(err error) *apierr.Error {
	if apiErr, ok := apierr.As(err); ok {
		return apiErr
	}
	if code, ok := repository.BackendCodeOf(err); ok {
		return apierr.FromBackend(code, err.Error(), err)
	}
	return apierr.FromBackend("", err.Error(), err)
}
