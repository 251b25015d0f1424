package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastillo/eserbisyo/models"
)

func TestVerify_ValidDocument(t *testing.T) {
	handler, stubs := newTestHandler()

	issuedAt := time.Date(2026, time.March, 12, 9, 30, 0, 0, time.UTC)
	stubs.verifies.verifyFn = func(_ context.Context, token string) (models.VerificationResult, error) {
		assert.Equal(t, "a1b2c3d4", token)
		return models.VerificationResult{
			Status: models.VerificationValid,
			Details: &models.VerificationDetails{
				ReferenceNo:  "REQ-2026-000123",
				DocumentType: "Barangay Clearance",
				HolderName:   "Juan Dela Cruz",
				IssuedAt:     &issuedAt,
			},
		}, nil
	}
	router := handler.Init()

	// no Authorization header: the verify route is public
	request := httptest.NewRequest(http.MethodGet, "/api/verify/a1b2c3d4", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var result models.VerificationResult
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
	assert.Equal(t, models.VerificationValid, result.Status)
	require.NotNil(t, result.Details)
	assert.Equal(t, "REQ-2026-000123", result.Details.ReferenceNo)
	assert.Equal(t, "Juan Dela Cruz", result.Details.HolderName)
}

func TestVerify_UnknownToken(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.verifies.verifyFn = func(_ context.Context, _ string) (models.VerificationResult, error) {
		return models.VerificationResult{Status: models.VerificationUnknown}, nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/verify/never-issued", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var result models.VerificationResult
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
	assert.Equal(t, models.VerificationUnknown, result.Status)
	assert.Nil(t, result.Details)
}
