package service

import (
	"context"
	"errors"
	"fmt"
	"intakeflow/internal/apierr"
	"intakeflow/internal/cache"
	"intakeflow/internal/catalog"
	"intakeflow/internal/model"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// submitLockTTL outlives the transport timeout of one submission
const submitLockTTL = 2 * time.Minute

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session already submitted")
	ErrSubmitInFlight  = errors.New("submission already in progress")
	ErrUnknownQuestion = errors.New("unknown question")
)

// SessionView is a session plus the data a client needs to render it
type SessionView struct {
	Session  *model.Session           `json:"session"`
	Question model.QuestionDefinition `json:"question"`
	Progress int                      `json:"progress"`
}

// AnswerOutcome is the result of storing one answer
type AnswerOutcome struct {
	QuestionID string                `json:"questionId"`
	State      model.ValidationState `json:"state"`
	Progress   int                   `json:"progress"`
}

// SubmitOptions are the caller-supplied parts of a session submission
type SubmitOptions struct {
	ProjectName *string
	Status      *model.IntakeStatus
	AccessToken string
}

// WizardService drives intake sessions through
// collecting -> submitting -> submitted | failed, with failed returning to
// collecting on the next edit or submission.
type WizardService struct {
	sessions    cache.SessionCache
	intakes     *IntakeService
	broadcaster Broadcaster
	logger      *zap.Logger
	now         func() time.Time
}

// NewWizardService creates a new wizard service
func NewWizardService(sessions cache.SessionCache, intakes *IntakeService, logger *zap.Logger) *WizardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardService{
		sessions: sessions,
		intakes:  intakes,
		logger:   logger,
		now:      time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *WizardService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates an empty session positioned on the first question
func (s *WizardService) Start(ctx context.Context, projectName string) (*SessionView, error) {
	now := s.now()
	sess := &model.Session{
		ID:          uuid.New().String(),
		ProjectName: strings.TrimSpace(projectName),
		Answers:     model.AnswerSet{},
		State:       model.SessionCollecting,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	s.logger.Info("session started", zap.String("sessionId", sess.ID))
	return s.view(sess), nil
}

// Get loads a session
func (s *WizardService) Get(ctx context.Context, id string) (*SessionView, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// SetAnswer stores an answer and classifies it against its question
func (s *WizardService) SetAnswer(ctx context.Context, id, questionID, text string) (*AnswerOutcome, error) {
	def, ok := catalog.ByID(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	sess, err := s.loadEditable(ctx, id, false)
	if err != nil {
		return nil, err
	}

	c := collectorFor(sess)
	c.SetAnswer(questionID, text)
	sess.Answers = c.Answers()

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	out := &AnswerOutcome{
		QuestionID: questionID,
		State:      ValidateResponse(text, def),
		Progress:   c.Progress(catalog.IDs()),
	}
	s.broadcast(sess.ID, EventAnswerValidated, out)
	return out, nil
}

// Advance moves the session cursor to the next question
func (s *WizardService) Advance(ctx context.Context, id string) (*SessionView, bool, error) {
	return s.move(ctx, id, (*Collector).Advance)
}

// Retreat moves the session cursor to the previous question
func (s *WizardService) Retreat(ctx context.Context, id string) (*SessionView, bool, error) {
	return s.move(ctx, id, (*Collector).Retreat)
}

func (s *WizardService) move(ctx context.Context, id string, step func(*Collector) bool) (*SessionView, bool, error) {
	sess, err := s.loadEditable(ctx, id, false)
	if err != nil {
		return nil, false, err
	}

	c := collectorFor(sess)
	moved := step(c)
	if moved {
		sess.Cursor = c.Cursor()
		if err := s.save(ctx, sess); err != nil {
			return nil, false, err
		}
		s.broadcast(sess.ID, EventCursorMoved, map[string]int{"cursor": sess.Cursor})
	}
	return s.view(sess), moved, nil
}

// Submit hands the session's answers to the intake pipeline. Session-level
// problems (missing, closed, in flight) are returned as err; everything
// about the submission itself is in the Result.
func (s *WizardService) Submit(ctx context.Context, id string, opts SubmitOptions) (apierr.Result[SubmitSuccess], error) {
	var none apierr.Result[SubmitSuccess]

	locked, err := s.sessions.AcquireSubmit(ctx, id, submitLockTTL)
	if err != nil {
		return none, fmt.Errorf("failed to take submit lock: %w", err)
	}
	if !locked {
		return none, ErrSubmitInFlight
	}
	defer func() {
		if err := s.sessions.ReleaseSubmit(context.WithoutCancel(ctx), id); err != nil {
			s.logger.Error("failed to release submit lock", zap.String("sessionId", id), zap.Error(err))
		}
	}()

	sess, err := s.loadEditable(ctx, id, true)
	if err != nil {
		return none, err
	}

	projectName := opts.ProjectName
	if projectName == nil && sess.ProjectName != "" {
		name := sess.ProjectName
		projectName = &name
	}

	sess.State = model.SessionSubmitting
	if err := s.save(ctx, sess); err != nil {
		return none, err
	}

	res := s.intakes.Submit(ctx, SubmitInput{
		Answers:     sess.Answers,
		ProjectName: projectName,
		Status:      opts.Status,
		AccessToken: opts.AccessToken,
	})

	res.Match(func(ok SubmitSuccess) {
		sess.State = model.SessionSubmitted
		sess.IntakeID = ok.IntakeID
		sess.LastError = nil
	}, func(e *apierr.Error) {
		sess.State = model.SessionFailed
		sess.LastError = &model.SessionError{Code: string(e.Code), UserMessage: e.UserMessage}
	})

	// The submission outcome is final even if the session write fails.
	if err := s.save(context.WithoutCancel(ctx), sess); err != nil {
		s.logger.Error("failed to save session after submit", zap.String("sessionId", sess.ID), zap.Error(err))
	}

	if res.OK() {
		s.broadcast(sess.ID, EventSessionSubmitted, res)
	} else {
		s.broadcast(sess.ID, EventSessionFailed, res)
	}
	return res, nil
}

func (s *WizardService) load(ctx context.Context, id string) (*model.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// loadEditable loads a session that may still change, moving a failed
// session back to collecting. Unless the caller holds the submit lock, a
// held lock means a submission is in flight. A submitting session with no
// lock was left behind by a submission that never recorded its outcome.
func (s *WizardService) loadEditable(ctx context.Context, id string, lockHeld bool) (*model.Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.State == model.SessionSubmitted {
		return nil, ErrSessionClosed
	}
	if !lockHeld {
		busy, err := s.sessions.SubmitInFlight(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check submit lock: %w", err)
		}
		if busy {
			return nil, ErrSubmitInFlight
		}
	}
	switch sess.State {
	case model.SessionSubmitting:
		s.logger.Warn("recovering session stuck in submitting", zap.String("sessionId", id))
		sess.State = model.SessionCollecting
	case model.SessionFailed:
		sess.State = model.SessionCollecting
	}
	return sess, nil
}

func (s *WizardService) save(ctx context.Context, sess *model.Session) error {
	sess.UpdatedAt = s.now()
	if err := s.sessions.Set(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *WizardService) view(sess *model.Session) *SessionView {
	c := collectorFor(sess)
	q, _ := catalog.At(c.Cursor())
	return &SessionView{
		Session:  sess,
		Question: q,
		Progress: c.Progress(catalog.IDs()),
	}
}

func (s *WizardService) broadcast(sessionID, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, msgType, payload)
	}
}

func collectorFor(sess *model.Session) *Collector {
	return RestoreCollector(catalog.Len(), sess.Answers, sess.Cursor)
}
