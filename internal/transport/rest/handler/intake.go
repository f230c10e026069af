package handler

import (
	"encoding/json"
	"intakeflow/internal/apierr"
	"intakeflow/internal/model"
	"intakeflow/internal/service"
	"intakeflow/internal/transport/rest/middleware"
	"net/http"
)

// IntakeHandler handles one-shot validation and submission
type IntakeHandler struct {
	intakeSvc *service.IntakeService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeSvc *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeSvc: intakeSvc}
}

// ValidateRequest is the request body for POST /v1/validate
type ValidateRequest struct {
	Answers model.AnswerSet `json:"answers"`
}

// ValidateResponse reports the state of every catalog question
type ValidateResponse struct {
	Results  []service.AnswerCheck `json:"results"`
	Complete bool                  `json:"complete"`
}

// SubmitIntakeRequest is the request body for POST /v1/intakes
type SubmitIntakeRequest struct {
	Answers     model.AnswerSet     `json:"answers"`
	ProjectName *string             `json:"projectName,omitempty"`
	Status      *model.IntakeStatus `json:"status,omitempty"`
}

// Validate handles POST /v1/validate
func (h *IntakeHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, complete := service.CheckAnswers(req.Answers)
	writeJSON(w, http.StatusOK, ValidateResponse{Results: results, Complete: complete})
}

// Submit handles POST /v1/intakes
func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResult(w, http.StatusCreated, apierr.Fail[service.SubmitSuccess](
			apierr.New(apierr.CodeValidationFailed, apierr.WithMessagef("invalid request body: %v", err))))
		return
	}

	res := h.intakeSvc.Submit(r.Context(), service.SubmitInput{
		Answers:     req.Answers,
		ProjectName: req.ProjectName,
		Status:      req.Status,
		AccessToken: middleware.GetAccessToken(r.Context()),
	})
	writeResult(w, http.StatusCreated, res)
}
