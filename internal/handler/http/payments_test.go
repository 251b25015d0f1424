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

	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
)

var testTreasurer = models.Actor{ID: 4, Type: models.ActorOfficial, Role: models.RoleTreasurer}

func TestRecordPayment_Created(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testTreasurer)

	stubs.payments.recordFn = func(_ context.Context, actor models.Actor, requestID int64, body models.RecordPaymentBody) (models.Payment, error) {
		assert.Equal(t, testTreasurer, actor)
		assert.Equal(t, int64(11), requestID)
		assert.Equal(t, 130.00, body.Amount)
		assert.Equal(t, "OR-2026-5521", body.ReceiptNo)
		assert.Equal(t, "Juan Dela Cruz", body.PayerName)
		assert.Equal(t, models.PaymentPaid, body.Mode)

		return models.Payment{
			PaymentID: 77,
			RequestID: requestID,
			Amount:    body.Amount,
			ReceiptNo: body.ReceiptNo,
			PayerName: body.PayerName,
			Status:    models.PaymentPaid,
			OfficerID: actor.ID,
		}, nil
	}
	router := handler.Init()

	body := strings.NewReader(`{"amount":130.00,"receipt_no":"OR-2026-5521","payer_name":"Juan Dela Cruz","mode":"Paid"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/requests/11/payments", body)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var payment models.Payment
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&payment))
	assert.Equal(t, int64(77), payment.PaymentID)
	assert.Equal(t, models.PaymentPaid, payment.Status)
}

func TestRecordPayment_DuplicateReceipt(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testTreasurer)
	stubs.payments.recordFn = func(_ context.Context, _ models.Actor, _ int64, _ models.RecordPaymentBody) (models.Payment, error) {
		return models.Payment{}, store.ErrDuplicateReceipt
	}
	router := handler.Init()

	body := strings.NewReader(`{"amount":130.00,"receipt_no":"OR-2026-5521","payer_name":"Juan Dela Cruz","mode":"Paid"}`)
	request := httptest.NewRequest(http.MethodPost, "/api/requests/11/payments", body)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)

	var response models.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "conflict", response.Kind)
}

func TestRecordPayment_InvalidJSON(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testTreasurer)
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/requests/11/payments", strings.NewReader("{broken"))
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRefundPayment_NoContent(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testTreasurer)

	var refunded int64
	stubs.payments.refundFn = func(_ context.Context, _ models.Actor, paymentID int64) error {
		refunded = paymentID
		return nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/payments/77/refund", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, int64(77), refunded)
}

func TestRefundPayment_NotFound(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testTreasurer)
	stubs.payments.refundFn = func(_ context.Context, _ models.Actor, _ int64) error {
		return store.ErrPaymentNotFound
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/payments/404/refund", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListRequestPayments(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testTreasurer)
	stubs.payments.listFn = func(_ context.Context, _ models.Actor, requestID int64) ([]models.Payment, error) {
		assert.Equal(t, int64(11), requestID)
		return []models.Payment{{PaymentID: 77, RequestID: 11}}, nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/requests/11/payments", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var payments []models.Payment
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&payments))
	require.Len(t, payments, 1)
	assert.Equal(t, int64(77), payments[0].PaymentID)
}

func TestPaymentHistory_Paging(t *testing.T) {
	handler, stubs := newTestHandler()
	stubs.authAs(testTreasurer)

	var gotLimit, gotOffset uint64
	stubs.payments.historyFn = func(_ context.Context, _ models.Actor, limit, offset uint64) ([]models.Payment, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}
	router := handler.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/payments?limit=25&offset=50", nil)
	request.Header.Set("Authorization", "Bearer any")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, uint64(25), gotLimit)
	assert.Equal(t, uint64(50), gotOffset)
}
