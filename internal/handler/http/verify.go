package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ncastillo/eserbisyo/internal/utils"
)

// verify answers the public QR lookup. It is deliberately unauthenticated
// and the payload never carries more than the certified facts.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	result, err := h.services.VerifyService.Verify(r.Context(), token)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
