package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type createOwnerRequest struct {
	DisplayName string `json:"display_name"`
}

// handleCreateOwner provisions a new owner. The returned ID is what callers
// pass as X-Owner-ID on every subsequent request; compute requests for an
// unprovisioned owner are rejected by the registry.
func (h *Handler) handleCreateOwner(w http.ResponseWriter, r *http.Request) {
	var req createOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.DisplayName == "" {
		writeError(w, http.StatusBadRequest, "display_name is required")
		return
	}

	owner, err := h.registry.CreateOwner(r.Context(), req.DisplayName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("creating owner: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, owner)
}

func (h *Handler) handleGetOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := h.registry.GetOwner(r.Context(), r.PathValue("ownerID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "owner not found")
		return
	}
	writeJSON(w, http.StatusOK, owner)
}
