package handlers

import (
	"encoding/json"
	"net/http"

	"taskboard/pkg/validator"
)

// Every API failure is a JSON object with a human-readable message;
// the report endpoint is the one plain-text exception.

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeValidationErrors(w http.ResponseWriter, message string, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"message": message,
		"fields":  errs,
	})
}
