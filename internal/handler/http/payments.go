package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/utils"
	"github.com/ncastillo/eserbisyo/models"
)

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	var body models.RecordPaymentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	payment, err := h.services.PaymentService.RecordPayment(r.Context(), actor, requestID, body)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, payment, http.StatusCreated)
}

func (h *Handler) refundPayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	paymentID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.PaymentService.Refund(r.Context(), actor, paymentID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRequestPayments(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	payments, err := h.services.PaymentService.ListByRequest(r.Context(), actor, requestID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, payments, http.StatusOK)
}

func (h *Handler) paymentHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.ParseUint(query.Get("limit"), 10, 64)
	offset, _ := strconv.ParseUint(query.Get("offset"), 10, 64)

	payments, err := h.services.PaymentService.History(r.Context(), actor, limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, payments, http.StatusOK)
}
