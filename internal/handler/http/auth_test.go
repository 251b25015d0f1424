package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncastillo/eserbisyo/internal/service"
	"github.com/ncastillo/eserbisyo/models"
)

func TestLogin_Success(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.auth.loginFn = func(_ context.Context, username, password string) (models.Official, models.Token, error) {
		assert.Equal(t, "sec.reyes", username)
		assert.Equal(t, "s3cret", password)

		official := models.Official{
			OfficialID: 3,
			Username:   "sec.reyes",
			FullName:   "Maria Reyes",
			Role:       models.RoleSecretary,
			Position:   "Barangay Secretary",
		}
		return official, models.Token{SignedString: "signed.jwt.token"}, nil
	}
	router := handler.Init()

	body := strings.NewReader(`{"username":"sec.reyes","password":"s3cret"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/login", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer signed.jwt.token", recorder.Header().Get("Authorization"))

	var response models.LoginResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "signed.jwt.token", response.Token)
	assert.Equal(t, "Maria Reyes", response.FullName)
	assert.Equal(t, models.RoleSecretary, response.Role)
	assert.Equal(t, "Barangay Secretary", response.Position)
}

func TestLogin_InvalidJSON(t *testing.T) {
	handler, _ := newTestHandler()
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid JSON was passed")
}

func TestLogin_WrongPassword(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.auth.loginFn = func(_ context.Context, _, _ string) (models.Official, models.Token, error) {
		return models.Official{}, models.Token{}, service.ErrWrongPassword
	}
	router := handler.Init()

	body := strings.NewReader(`{"username":"sec.reyes","password":"wrong"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/login", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var response models.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "unauthorized", response.Kind)
}
