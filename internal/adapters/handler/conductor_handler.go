package handler

import (
	"net/http"

	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

// ConductorHandler backs the conductor panel: one endpoint that blocks
// until a card taps or the read window closes.
type ConductorHandler struct {
	validationService ports.ValidationService
}

func NewConductorHandler(validation ports.ValidationService) *ConductorHandler {
	return &ConductorHandler{validationService: validation}
}

func (h *ConductorHandler) Scan(w http.ResponseWriter, r *http.Request) {
	result, err := h.validationService.ScanAndValidate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
