package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
)

// verifyService is the concrete implementation of VerifyService. It is the
// only read path with no actor: anyone holding a token may ask, and the
// answer is restricted to the certified facts.
type verifyService struct {
	requestRepository      store.RequestRepository
	documentTypeRepository store.DocumentTypeRepository
	residentRepository     store.ResidentRepository

	logger *logger.Logger
}

// NewVerifyService constructs a [VerifyService].
func NewVerifyService(
	requestRepository store.RequestRepository,
	documentTypeRepository store.DocumentTypeRepository,
	residentRepository store.ResidentRepository,
	logger *logger.Logger,
) VerifyService {
	return &verifyService{
		requestRepository:      requestRepository,
		documentTypeRepository: documentTypeRepository,
		residentRepository:     residentRepository,
		logger:                 logger,
	}
}

// Verify implements [VerifyService].
//
// A token that matches no request answers Unknown. A matched request answers
// Valid only while Issued; any other status answers Revoked. Both matched
// outcomes carry the restricted public details.
func (v *verifyService) Verify(ctx context.Context, token string) (models.VerificationResult, error) {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return models.VerificationResult{}, ErrValidation
	}

	request, err := v.requestRepository.GetRequestByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrRequestNotFound) {
			return models.VerificationResult{Status: models.VerificationUnknown}, nil
		}
		return models.VerificationResult{}, fmt.Errorf("looking up verification token: %w", err)
	}

	details, err := v.publicDetails(ctx, request)
	if err != nil {
		return models.VerificationResult{}, err
	}

	status := models.VerificationRevoked
	if request.Status == models.StatusIssued {
		status = models.VerificationValid
	}

	log.Info().
		Str("func", "verifyService.Verify").
		Str("reference_no", request.ReferenceNo).
		Str("status", string(status)).
		Msg("verification lookup answered")

	return models.VerificationResult{Status: status, Details: details}, nil
}

// publicDetails resolves the few fields the public endpoint may expose.
func (v *verifyService) publicDetails(ctx context.Context, request models.Request) (*models.VerificationDetails, error) {
	docType, err := v.documentTypeRepository.GetDocumentType(ctx, request.DocumentTypeID)
	if err != nil {
		return nil, fmt.Errorf("loading document type: %w", err)
	}

	resident, err := v.residentRepository.GetResident(ctx, request.ResidentID)
	if err != nil {
		return nil, fmt.Errorf("loading resident: %w", err)
	}

	return &models.VerificationDetails{
		ReferenceNo:  request.ReferenceNo,
		DocumentType: docType.Name,
		HolderName:   resident.FirstName + " " + resident.LastName,
		IssuedAt:     request.IssuedAt,
	}, nil
}
