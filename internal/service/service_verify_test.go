package service

import (
	"context"
	"testing"
	"time"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/mock"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestVerifySvc(t *testing.T, ctrl *gomock.Controller) (*verifyService, *mock.MockRequestRepository, *mock.MockDocumentTypeRepository, *mock.MockResidentRepository) {
	t.Helper()

	requests := mock.NewMockRequestRepository(ctrl)
	docTypes := mock.NewMockDocumentTypeRepository(ctrl)
	residents := mock.NewMockResidentRepository(ctrl)

	svc := NewVerifyService(requests, docTypes, residents, logger.NewLogger("test")).(*verifyService)

	return svc, requests, docTypes, residents
}

func TestVerifyService_Verify_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, requests, docTypes, residents := newTestVerifySvc(t, ctrl)
	ctx := context.Background()

	issuedAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	requests.EXPECT().GetRequestByToken(ctx, "abc123").Return(models.Request{
		RequestID:      5,
		ResidentID:     7,
		DocumentTypeID: 1,
		ReferenceNo:    "REQ-20260831-4F2A",
		Status:         models.StatusIssued,
		IssuedAt:       &issuedAt,
	}, nil)
	docTypes.EXPECT().GetDocumentType(ctx, int64(1)).Return(models.DocumentType{Name: "Barangay Clearance"}, nil)
	residents.EXPECT().GetResident(ctx, int64(7)).Return(models.Resident{FirstName: "Juan", LastName: "Dela Cruz"}, nil)

	result, err := svc.Verify(ctx, "abc123")
	require.NoError(t, err)

	assert.Equal(t, models.VerificationValid, result.Status)
	require.NotNil(t, result.Details)
	assert.Equal(t, "REQ-20260831-4F2A", result.Details.ReferenceNo)
	assert.Equal(t, "Barangay Clearance", result.Details.DocumentType)
	assert.Equal(t, "Juan Dela Cruz", result.Details.HolderName)
	require.NotNil(t, result.Details.IssuedAt)
	assert.Equal(t, issuedAt, *result.Details.IssuedAt)
}

func TestVerifyService_Verify_RevokedBeforeIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, requests, docTypes, residents := newTestVerifySvc(t, ctrl)
	ctx := context.Background()

	requests.EXPECT().GetRequestByToken(ctx, "abc123").Return(models.Request{
		RequestID:      5,
		ResidentID:     7,
		DocumentTypeID: 1,
		ReferenceNo:    "REQ-20260831-4F2A",
		Status:         models.StatusReadyForPickup,
	}, nil)
	docTypes.EXPECT().GetDocumentType(ctx, int64(1)).Return(models.DocumentType{Name: "Barangay Clearance"}, nil)
	residents.EXPECT().GetResident(ctx, int64(7)).Return(models.Resident{FirstName: "Juan", LastName: "Dela Cruz"}, nil)

	result, err := svc.Verify(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRevoked, result.Status)
}

func TestVerifyService_Verify_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, requests, _, _ := newTestVerifySvc(t, ctrl)
	ctx := context.Background()

	requests.EXPECT().GetRequestByToken(ctx, "never-issued").Return(models.Request{}, store.ErrRequestNotFound)

	result, err := svc.Verify(ctx, "never-issued")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationUnknown, result.Status)
	assert.Nil(t, result.Details)
}

func TestVerifyService_Verify_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestVerifySvc(t, ctrl)

	_, err := svc.Verify(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrValidation)
}
