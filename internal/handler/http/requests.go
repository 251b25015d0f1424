// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/service"
	"github.com/ncastillo/eserbisyo/internal/utils"
	"github.com/ncastillo/eserbisyo/models"
)

// actorFromRequest reads the authenticated actor placed in the context by
// the auth middleware. A missing actor means the route was wired outside the
// authenticated group; the request is rejected.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no actor in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.Actor{}, false
	}
	return actor, true
}

// pathID parses the {id} route parameter.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) submitRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var body models.SubmitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	submission := service.SubmitRequest{
		DocumentTypeID: body.DocumentTypeID,
		Purpose:        body.Purpose,
		AttachmentName: body.AttachmentName,
		AttachmentType: body.AttachmentType,
	}

	if body.AttachmentData != "" {
		content, err := base64.StdEncoding.DecodeString(body.AttachmentData)
		if err != nil {
			log.Err(err).Msg("attachment is not valid base64")
			http.Error(w, "attachment is not valid base64", http.StatusBadRequest)
			return
		}
		submission.AttachmentContent = content
	}

	request, err := h.services.RequestService.Submit(ctx, actor, submission)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, request, http.StatusCreated)
}

func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	request, err := h.services.RequestService.GetRequest(r.Context(), actor, requestID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, request, http.StatusOK)
}

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := requestFilterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	requests, err := h.services.RequestService.ListRequests(r.Context(), actor, filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) approveRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.RequestService.Approve(r.Context(), actor, requestID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rejectRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	var body models.RejectRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RequestService.Reject(r.Context(), actor, requestID, body.Reason); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) issueRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.RequestService.Issue(r.Context(), actor, requestID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAttachment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	filename, content, err := h.services.RequestService.GetAttachment(r.Context(), actor, requestID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// renderDocument produces the signed PDF for a request and streams it back.
// A render from Processing advances the request to ReadyForPickup; repeated
// calls on later states reprint the same document.
func (h *Handler) renderDocument(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r)
	if !ok {
		return
	}

	document, err := h.services.RenderService.RenderDocument(r.Context(), actor, requestID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if document.UsedBlankFallback {
		w.Header().Set("X-Template-Fallback", "true")
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+document.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(document.PDF)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.services.RequestService.DashboardStats(r.Context(), actor)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) listDocumentTypes(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	types, err := h.services.RequestService.ListDocumentTypes(r.Context(), actor)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, types, http.StatusOK)
}

// requestFilterFromQuery builds a listing filter from the query string.
// Supported parameters: status, document_type_id, limit, offset.
func requestFilterFromQuery(r *http.Request) (models.RequestFilter, error) {
	var filter models.RequestFilter
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		status := models.RequestStatus(raw)
		filter.Status = &status
	}

	if raw := query.Get("document_type_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.RequestFilter{}, err
		}
		filter.DocumentTypeID = &id
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.RequestFilter{}, err
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.RequestFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
