// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package http

import (
	"net/http"

	"github.com/ncastillo/eserbisyo/internal/utils"
)

// getResident returns one resident record. Officials use it to reach the
// requester of a document, so the contact number arrives decrypted.
func (h *Handler) getResident(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	residentID, ok := pathID(w, r)
	if !ok {
		return
	}

	resident, err := h.services.ResidentService.GetResident(r.Context(), actor, residentID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, resident, http.StatusOK)
}
