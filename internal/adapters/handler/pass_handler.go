package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/harshangowda84/Harish-sub000/internal/core/domain"
	"github.com/harshangowda84/Harish-sub000/internal/core/ports"
)

// PassHandler exposes the admin lifecycle actions: approve (with card
// tap), decline, erase card, hide, and holder-side renewal requests.
type PassHandler struct {
	lifecycle ports.LifecycleService
	passes    ports.PassRepository
}

func NewPassHandler(lifecycle ports.LifecycleService, passes ports.PassRepository) *PassHandler {
	return &PassHandler{lifecycle: lifecycle, passes: passes}
}

type passActionRequest struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Reason   string `json:"reason,omitempty"`
	Simulate bool   `json:"simulate,omitempty"`
	Force    bool   `json:"force,omitempty"`
}

func (req *passActionRequest) kind() (domain.Kind, error) {
	switch domain.Kind(req.Kind) {
	case domain.KindStudent:
		return domain.KindStudent, nil
	case domain.KindPassenger:
		return domain.KindPassenger, nil
	default:
		return "", fmt.Errorf("%w: kind must be student or passenger", domain.ErrValidation)
	}
}

func decodeAction(w http.ResponseWriter, r *http.Request) (*passActionRequest, domain.Kind, bool) {
	var req passActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil, "", false
	}
	kind, err := req.kind()
	if err != nil {
		writeError(w, err)
		return nil, "", false
	}
	return &req, kind, true
}

func (h *PassHandler) Approve(w http.ResponseWriter, r *http.Request) {
	req, kind, ok := decodeAction(w, r)
	if !ok {
		return
	}

	result, err := h.lifecycle.Approve(r.Context(), kind, req.ID, ports.ApproveOptions{
		Simulate: req.Simulate,
		Force:    req.Force,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PassHandler) Decline(w http.ResponseWriter, r *http.Request) {
	req, kind, ok := decodeAction(w, r)
	if !ok {
		return
	}

	pass, err := h.lifecycle.Decline(r.Context(), kind, req.ID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pass)
}

func (h *PassHandler) EraseCard(w http.ResponseWriter, r *http.Request) {
	req, kind, ok := decodeAction(w, r)
	if !ok {
		return
	}

	pass, err := h.lifecycle.EraseCard(r.Context(), kind, req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pass)
}

func (h *PassHandler) Hide(w http.ResponseWriter, r *http.Request) {
	req, kind, ok := decodeAction(w, r)
	if !ok {
		return
	}

	pass, err := h.lifecycle.Hide(r.Context(), kind, req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pass)
}

func (h *PassHandler) RequestRenewal(w http.ResponseWriter, r *http.Request) {
	req, kind, ok := decodeAction(w, r)
	if !ok {
		return
	}

	pass, err := h.lifecycle.RequestRenewal(r.Context(), kind, req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pass)
}

// List serves the admin dashboards: ?kind=student&status=pending.
func (h *PassHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.Kind(r.URL.Query().Get("kind"))
	if kind != domain.KindStudent && kind != domain.KindPassenger {
		http.Error(w, "kind must be student or passenger", http.StatusBadRequest)
		return
	}
	status := domain.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.StatusPending
	}

	passes, err := h.passes.ListByStatus(r.Context(), kind, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"passes": passes})
}
