package http

import (
	"net/http"
	"strconv"

	"github.com/ncastillo/eserbisyo/internal/utils"
)

// auditTrail pages through the audit log, newest first.
func (h *Handler) auditTrail(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.ParseUint(query.Get("limit"), 10, 64)
	offset, _ := strconv.ParseUint(query.Get("offset"), 10, 64)

	entries, err := h.services.AuditService.Trail(r.Context(), actor, limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
