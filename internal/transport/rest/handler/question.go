package handler

import (
	"intakeflow/internal/catalog"
	"net/http"

	"github.com/gorilla/mux"
)

// QuestionHandler serves the question catalog
type QuestionHandler struct{}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

// List handles GET /v1/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": catalog.Questions()})
}

// Get handles GET /v1/questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, ok := catalog.ByID(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	writeJSON(w, http.StatusOK, q)
}
