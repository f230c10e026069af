package handler

import (
	"encoding/json"
	"intakeflow/internal/apierr"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeResult writes a Result envelope with the status implied by its code
func writeResult[T any](w http.ResponseWriter, okStatus int, res apierr.Result[T]) {
	status := okStatus
	if !res.OK() {
		status = res.Err().Code.HTTPStatus()
	}
	writeJSON(w, status, res)
}
