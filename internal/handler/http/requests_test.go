// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastillo/eserbisyo/internal/service"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
)

var testResident = models.Actor{ID: 7, Type: models.ActorResident}

func TestSubmitRequest_Created(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testResident)

	attachment := []byte("fake image bytes")
	stubs.requests.submitFn = func(_ context.Context, actor models.Actor, submission service.SubmitRequest) (models.Request, error) {
		assert.Equal(t, testResident, actor)
		assert.Equal(t, int64(2), submission.DocumentTypeID)
		assert.Equal(t, "employment", submission.Purpose)
		assert.Equal(t, "id-front.jpg", submission.AttachmentName)
		assert.Equal(t, "image/jpeg", submission.AttachmentType)
		assert.Equal(t, attachment, submission.AttachmentContent)

		return models.Request{
			RequestID:      11,
			ResidentID:     actor.ID,
			DocumentTypeID: submission.DocumentTypeID,
			ReferenceNo:    "REQ-20260831-4F2A",
			Purpose:        submission.Purpose,
			Status:         models.StatusPending,
		}, nil
	}
	router := handler.Init()

	body := map[string]any{
		"document_type_id": 2,
		"purpose":          "employment",
		"attachment_name":  "id-front.jpg",
		"attachment_type":  "image/jpeg",
		"attachment_data":  base64.StdEncoding.EncodeToString(attachment),
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/api/requests", strings.NewReader(string(payload)))
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Request
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
	assert.Equal(t, "REQ-20260831-4F2A", created.ReferenceNo)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestSubmitRequest_BadBase64(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testResident)
	router := handler.Init()

	body := strings.NewReader(`{"document_type_id":2,"purpose":"x","attachment_data":"@@not-base64@@"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/requests", body)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "attachment is not valid base64")
}

func TestSubmitRequest_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "validation", err: service.ErrValidation, wantStatus: http.StatusBadRequest, wantKind: "validation"},
		{name: "unavailable type", err: service.ErrDocumentTypeUnavailable, wantStatus: http.StatusConflict, wantKind: "conflict"},
		{name: "attachment required", err: service.ErrAttachmentRequired, wantStatus: http.StatusBadRequest, wantKind: "validation"},
		{name: "attachment too large", err: service.ErrAttachmentTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantKind: "too_large"},
		{name: "attachment type", err: service.ErrAttachmentType, wantStatus: http.StatusUnsupportedMediaType, wantKind: "unsupported_type"},
		{name: "duplicate active", err: store.ErrDuplicateActiveRequest, wantStatus: http.StatusConflict, wantKind: "conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, stubs := newTestHandler()
			stubs.authAs(testResident)
			stubs.requests.submitFn = func(_ context.Context, _ models.Actor, _ service.SubmitRequest) (models.Request, error) {
				return models.Request{}, tt.err
			}
			router := handler.Init()

			body := strings.NewReader(`{"document_type_id":2,"purpose":"x"}`)
			request := httptest.NewRequest(http.MethodPost, "/api/requests", body)
			request.Header.Set("Authorization", "Bearer any")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var response models.ErrorResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
			assert.Equal(t, tt.wantKind, response.Kind)
			assert.Equal(t, tt.err.Error(), response.Message)
		})
	}
}

func TestGetRequest_NotFound(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testResident)
	stubs.requests.getFn = func(_ context.Context, _ models.Actor, _ int64) (models.Request, error) {
		return models.Request{}, store.ErrRequestNotFound
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/requests/99", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetRequest_InvalidID(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testResident)
	router := handler.Init()

	for _, path := range []string{"/api/requests/abc", "/api/requests/0", "/api/requests/-4"} {
		request := httptest.NewRequest(http.MethodGet, path, nil)
		request.Header.Set("Authorization", "Bearer any")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "path %s", path)
	}
}

func TestListRequests_QueryFilter(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(models.Actor{ID: 3, Type: models.ActorOfficial, Role: models.RoleSecretary})

	var gotFilter models.RequestFilter
	stubs.requests.listFn = func(_ context.Context, _ models.Actor, filter models.RequestFilter) ([]models.Request, error) {
		gotFilter = filter
		return []models.Request{{RequestID: 1}}, nil
	}
	router := handler.Init()

	target := "/api/requests?status=ForPayment&document_type_id=5&limit=20&offset=40"
	request := httptest.NewRequest(http.MethodGet, target, nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, models.StatusForPayment, *gotFilter.Status)
	require.NotNil(t, gotFilter.DocumentTypeID)
	assert.Equal(t, int64(5), *gotFilter.DocumentTypeID)
	assert.Equal(t, uint64(20), gotFilter.Limit)
	assert.Equal(t, uint64(40), gotFilter.Offset)
}

func TestListRequests_BadFilterValue(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testResident)
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/requests?document_type_id=nope", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestApproveRequest_NoContent(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(models.Actor{ID: 3, Type: models.ActorOfficial, Role: models.RoleSecretary})

	var approved int64
	stubs.requests.approveFn = func(_ context.Context, _ models.Actor, requestID int64) error {
		approved = requestID
		return nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/requests/12/approve", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, int64(12), approved)
}

func TestRejectRequest_PassesReason(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(models.Actor{ID: 3, Type: models.ActorOfficial, Role: models.RoleSecretary})

	var gotReason string
	stubs.requests.rejectFn = func(_ context.Context, _ models.Actor, _ int64, reason string) error {
		gotReason = reason
		return nil
	}
	router := handler.Init()

	body := strings.NewReader(`{"reason":"requirements incomplete"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/requests/12/reject", body)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "requirements incomplete", gotReason)
}

func TestRejectRequest_InvalidTransition(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(models.Actor{ID: 3, Type: models.ActorOfficial, Role: models.RoleSecretary})
	stubs.requests.rejectFn = func(_ context.Context, _ models.Actor, _ int64, _ string) error {
		return store.ErrInvalidTransition
	}
	router := handler.Init()

	body := strings.NewReader(`{"reason":"too late"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/requests/12/reject", body)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetAttachment_StreamsContent(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testResident)
	stubs.requests.getAttachmentFn = func(_ context.Context, _ models.Actor, _ int64) (string, []byte, error) {
		return "id-front.jpg", []byte("decrypted bytes"), nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/requests/11/attachment", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/octet-stream", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), `filename="id-front.jpg"`)
	assert.Equal(t, "decrypted bytes", recorder.Body.String())
}

func TestRenderDocument_StreamsPDF(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(models.Actor{ID: 3, Type: models.ActorOfficial, Role: models.RoleSecretary})
	stubs.renders.renderFn = func(_ context.Context, _ models.Actor, requestID int64) (service.RenderedDocument, error) {
		assert.Equal(t, int64(11), requestID)
		return service.RenderedDocument{
			FileName: "REQ-20260831-4F2A.pdf",
			PDF:      []byte("%PDF-1.4 test"),
		}, nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/requests/11/document", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "REQ-20260831-4F2A.pdf")
	assert.Empty(t, recorder.Header().Get("X-Template-Fallback"))
	assert.Equal(t, "%PDF-1.4 test", recorder.Body.String())
}

func TestRenderDocument_FallbackHeader(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(models.Actor{ID: 3, Type: models.ActorOfficial, Role: models.RoleSecretary})
	stubs.renders.renderFn = func(_ context.Context, _ models.Actor, _ int64) (service.RenderedDocument, error) {
		return service.RenderedDocument{FileName: "x.pdf", PDF: []byte("%PDF"), UsedBlankFallback: true}, nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/requests/11/document", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "true", recorder.Header().Get("X-Template-Fallback"))
}

func TestDashboard_ReturnsStats(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(models.Actor{ID: 3, Type: models.ActorOfficial, Role: models.RoleCaptain})
	stubs.requests.statsFn = func(_ context.Context, _ models.Actor) (models.DashboardStats, error) {
		return models.DashboardStats{Pending: 4, Processing: 2, Completed: 19}, nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var stats models.DashboardStats
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&stats))
	assert.Equal(t, int64(4), stats.Pending)
	assert.Equal(t, int64(19), stats.Completed)
}

func TestDashboard_Forbidden(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testResident)
	stubs.requests.statsFn = func(_ context.Context, _ models.Actor) (models.DashboardStats, error) {
		return models.DashboardStats{}, service.ErrForbidden
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
