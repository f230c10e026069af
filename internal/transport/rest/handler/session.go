package handler

import (
	"encoding/json"
	"errors"
	"intakeflow/internal/model"
	"intakeflow/internal/service"
	"intakeflow/internal/transport/rest/middleware"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SessionHandler drives wizard sessions over HTTP
type SessionHandler struct {
	wizardSvc *service.WizardService
	logger    *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(wizardSvc *service.WizardService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		wizardSvc: wizardSvc,
		logger:    logger,
	}
}

// StartSessionRequest is the request body for POST /v1/sessions
type StartSessionRequest struct {
	ProjectName string `json:"projectName"`
}

// AnswerRequest is the request body for PUT /v1/sessions/{id}/answers/{questionId}
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// SubmitSessionRequest is the request body for POST /v1/sessions/{id}/submit
type SubmitSessionRequest struct {
	ProjectName *string             `json:"projectName,omitempty"`
	Status      *model.IntakeStatus `json:"status,omitempty"`
}

// MoveResponse is returned by advance and retreat
type MoveResponse struct {
	*service.SessionView
	Moved bool `json:"moved"`
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.wizardSvc.Start(r.Context(), req.ProjectName)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.wizardSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SetAnswer handles PUT /v1/sessions/{id}/answers/{questionId}
func (h *SessionHandler) SetAnswer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.wizardSvc.SetAnswer(r.Context(), vars["id"], vars["questionId"], req.Answer)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Advance handles POST /v1/sessions/{id}/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	view, moved, err := h.wizardSvc.Advance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MoveResponse{SessionView: view, Moved: moved})
}

// Retreat handles POST /v1/sessions/{id}/retreat
func (h *SessionHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	view, moved, err := h.wizardSvc.Retreat(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MoveResponse{SessionView: view, Moved: moved})
}

// Submit handles POST /v1/sessions/{id}/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.wizardSvc.Submit(r.Context(), mux.Vars(r)["id"], service.SubmitOptions{
		ProjectName: req.ProjectName,
		Status:      req.Status,
		AccessToken: middleware.GetAccessToken(r.Context()),
	})
	if err != nil {
		h.writeSessionError(w, err)
		return
	}
	writeResult(w, http.StatusCreated, res)
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionClosed), errors.Is(err, service.ErrSubmitInFlight):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownQuestion):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("session request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeOptional decodes a JSON body, accepting an empty one
func decodeOptional(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
