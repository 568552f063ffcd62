package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"corretoraBack/internal/models"
	"corretoraBack/internal/services"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrUnknownField), errors.Is(err, models.ErrInvalidPropertyType):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrNotAnImage):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error()}

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		resp.Error = models.RequiredFieldsMessage
		resp.Fields = verr.Fields
	}
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		resp.Error = http.StatusText(status)
	}
	writeJSON(w, status, resp)
}
