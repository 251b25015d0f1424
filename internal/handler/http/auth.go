package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/utils"
	"github.com/ncastillo/eserbisyo/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.LoginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	official, token, err := h.services.AuthService.LoginOfficial(ctx, body.Username, body.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Str("username", official.Username).Msg("official successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		FullName: official.FullName,
		Role:     official.Role,
		Position: official.Position,
	}, http.StatusOK)
}
