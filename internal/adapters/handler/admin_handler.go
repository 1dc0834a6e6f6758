package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
)

// AdminHandler holds odds and ends of the admin panel that are not pass
// lifecycle actions. Currently that is the date override used to exercise
// expiry behavior without waiting out a validity window.
type AdminHandler struct {
	clock *domain.OverrideClock
}

func NewAdminHandler(clock *domain.OverrideClock) *AdminHandler {
	return &AdminHandler{clock: clock}
}

type clockOverrideRequest struct {
	// Date in RFC3339; null or empty clears the override.
	Date *string `json:"date"`
}

func (h *AdminHandler) ClockOverride(w http.ResponseWriter, r *http.Request) {
	var req clockOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == nil || *req.Date == "" {
		h.clock.Clear()
		writeJSON(w, http.StatusOK, map[string]any{"overridden": false, "now": h.clock.Now()})
		return
	}

	t, err := time.Parse(time.RFC3339, *req.Date)
	if err != nil {
		http.Error(w, "date must be RFC3339", http.StatusBadRequest)
		return
	}
	h.clock.Set(t)
	writeJSON(w, http.StatusOK, map[string]any{"overridden": true, "now": h.clock.Now()})
}
