package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handler: failed to write response: %v", err)
	}
}

type errorResponse struct {
	Error    string `json:"error"`
	Existing any    `json:"existing,omitempty"`
}

// writeError maps the domain error taxonomy onto HTTP statuses. Reader
// failures are retryable and say so; a binding conflict includes the
// existing holder so the admin can decide whether to force.
func writeError(w http.ResponseWriter, err error) {
	var bound *domain.CardBoundError
	switch {
	case errors.As(err, &bound):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: "card already bound to an active pass",
			Existing: map[string]any{
				"name":   bound.HolderName,
				"kind":   bound.Kind,
				"type":   bound.PassType,
				"expiry": bound.Expiry,
			},
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrReadTimeout):
		writeJSON(w, http.StatusRequestTimeout, errorResponse{
			Error: "no card detected; place the card near the reader and retry",
		})
	case errors.Is(err, domain.ErrDeviceError):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "card reader unavailable; check the device and retry",
		})
	default:
		log.Printf("handler: internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
