// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
)

// attachmentSubDir is the vault subdirectory for resident requirement
// uploads.
const attachmentSubDir = "requests"

// allowedAttachmentTypes is the upload allow-list.
var allowedAttachmentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

// requestService is the concrete implementation of RequestService. It
// enforces the access rules in front of the repositories and records every
// state change in the audit trail.
type requestService struct {
	requestRepository      store.RequestRepository
	documentTypeRepository store.DocumentTypeRepository
	vault                  AttachmentVault
	audit                  AuditRecorder

	// maxUploadBytes caps decoded attachment sizes.
	maxUploadBytes int64

	logger *logger.Logger
}

// NewRequestService constructs a [RequestService].
func NewRequestService(
	requestRepository store.RequestRepository,
	documentTypeRepository store.DocumentTypeRepository,
	attachmentVault AttachmentVault,
	audit AuditRecorder,
	maxUploadBytes int64,
	logger *logger.Logger,
) RequestService {
	return &requestService{
		requestRepository:      requestRepository,
		documentTypeRepository: documentTypeRepository,
		vault:                  attachmentVault,
		audit:                  audit,
		maxUploadBytes:         maxUploadBytes,
		logger:                 logger,
	}
}

// Submit files a new document request for the acting resident.
//
// The attachment, when present, is size- and type-checked and written to
// the vault before the row is inserted. Reference numbers carry random
// entropy; a collision on the unique index is regenerated and retried, a
// duplicate-active conflict is returned to the caller.
func (s *requestService) Submit(ctx context.Context, actor models.Actor, submission SubmitRequest) (models.Request, error) {
	log := logger.FromContext(ctx)

	if !isResident(actor) {
		return models.Request{}, ErrForbidden
	}

	purpose := strings.TrimSpace(submission.Purpose)
	if purpose == "" || submission.DocumentTypeID <= 0 {
		log.Error().Str("func", "requestService.Submit").Msg("invalid submission data provided")
		return models.Request{}, ErrValidation
	}

	docType, err := s.documentTypeRepository.GetDocumentType(ctx, submission.DocumentTypeID)
	if err != nil {
		return models.Request{}, fmt.Errorf("loading document type: %w", err)
	}
	if !docType.Available {
		return models.Request{}, ErrDocumentTypeUnavailable
	}

	if err := s.checkAttachment(docType, submission); err != nil {
		return models.Request{}, err
	}

	// Retry on the unlikely reference collision only; every attempt mints a
	// fresh reference.
	for attempt := 0; attempt < 3; attempt++ {
		request := models.Request{
			ResidentID:     actor.ID,
			DocumentTypeID: submission.DocumentTypeID,
			ReferenceNo:    newReferenceNo(),
			Purpose:        purpose,
			Status:         models.StatusPending,
		}

		if len(submission.AttachmentContent) > 0 {
			result, storeErr := s.vault.Store(submission.AttachmentContent, submission.AttachmentName, request.ReferenceNo, attachmentSubDir)
			if storeErr != nil {
				log.Err(storeErr).
					Str("func", "requestService.Submit").
					Str("reference_no", request.ReferenceNo).
					Msg("failed to store attachment")
				return models.Request{}, fmt.Errorf("storing attachment: %w", storeErr)
			}
			if result.FellBack {
				log.Warn().
					Str("func", "requestService.Submit").
					Str("reference_no", request.ReferenceNo).
					Msg("attachment written to vault root, subdirectory unavailable")
			}
			request.AttachmentFile = &result.StoredName
		}

		createErr := s.requestRepository.CreateRequest(ctx, &request)
		if createErr != nil {
			if errors.Is(createErr, store.ErrDuplicateReference) {
				continue
			}
			return models.Request{}, fmt.Errorf("creating request: %w", createErr)
		}

		s.audit.Record(ctx, models.AuditLogEntry{
			ActorID:       actor.ID,
			ActorType:     actor.Type,
			Action:        models.AuditActionCreate,
			TableAffected: request.TableName(),
			RecordID:      request.RequestID,
			NewValue:      statusSnapshot(request.Status),
		})

		return request, nil
	}

	return models.Request{}, fmt.Errorf("creating request: %w", store.ErrDuplicateReference)
}

// GetRequest returns one request. Residents may read only their own.
func (s *requestService) GetRequest(ctx context.Context, actor models.Actor, requestID int64) (models.Request, error) {
	request, err := s.requestRepository.GetRequest(ctx, requestID)
	if err != nil {
		return models.Request{}, fmt.Errorf("loading request: %w", err)
	}

	if !isOfficial(actor) && request.ResidentID != actor.ID {
		return models.Request{}, ErrForbidden
	}

	return request, nil
}

// ListRequests returns requests matching the filter. For residents the
// filter is forced onto their own records regardless of what was asked.
func (s *requestService) ListRequests(ctx context.Context, actor models.Actor, filter models.RequestFilter) ([]models.Request, error) {
	if isResident(actor) {
		residentID := actor.ID
		filter.ResidentID = &residentID
	} else if !isOfficial(actor) {
		return nil, ErrForbidden
	}

	requests, err := s.requestRepository.ListRequests(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}

	return requests, nil
}

// Approve moves a Pending request to ForPayment.
func (s *requestService) Approve(ctx context.Context, actor models.Actor, requestID int64) error {
	if !canProcessRequests(actor) {
		return ErrForbidden
	}

	officerID := actor.ID
	if err := s.requestRepository.Transition(ctx, requestID, models.StatusPending, models.StatusForPayment, &officerID); err != nil {
		return fmt.Errorf("approving request: %w", err)
	}

	s.recordStatusChange(ctx, actor, requestID, models.StatusPending, models.StatusForPayment)
	return nil
}

// Reject moves a Pending request to Rejected with the given reason.
func (s *requestService) Reject(ctx context.Context, actor models.Actor, requestID int64, reason string) error {
	log := logger.FromContext(ctx)

	if !canProcessRequests(actor) {
		return ErrForbidden
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		log.Error().Str("func", "requestService.Reject").Int64("request_id", requestID).Msg("rejection without reason")
		return ErrValidation
	}

	if err := s.requestRepository.RejectRequest(ctx, requestID, reason, actor.ID); err != nil {
		return fmt.Errorf("rejecting request: %w", err)
	}

	s.recordStatusChange(ctx, actor, requestID, models.StatusPending, models.StatusRejected)
	return nil
}

// Issue releases a rendered document to the resident.
func (s *requestService) Issue(ctx context.Context, actor models.Actor, requestID int64) error {
	if !canProcessRequests(actor) {
		return ErrForbidden
	}

	if err := s.requestRepository.IssueRequest(ctx, requestID, actor.ID); err != nil {
		return fmt.Errorf("issuing request: %w", err)
	}

	s.recordStatusChange(ctx, actor, requestID, models.StatusReadyForPickup, models.StatusIssued)
	return nil
}

// GetAttachment decrypts and returns the requirement upload of a request.
// Access follows the same ownership rule as GetRequest.
func (s *requestService) GetAttachment(ctx context.Context, actor models.Actor, requestID int64) (string, []byte, error) {
	request, err := s.GetRequest(ctx, actor, requestID)
	if err != nil {
		return "", nil, err
	}

	if request.AttachmentFile == nil {
		return "", nil, ErrNoAttachment
	}

	content, err := s.vault.Retrieve(*request.AttachmentFile)
	if err != nil {
		return "", nil, fmt.Errorf("retrieving attachment: %w", err)
	}

	return *request.AttachmentFile, content, nil
}

// DashboardStats aggregates the staff dashboard counters.
func (s *requestService) DashboardStats(ctx context.Context, actor models.Actor) (models.DashboardStats, error) {
	if !isOfficial(actor) {
		return models.DashboardStats{}, ErrForbidden
	}

	stats, err := s.requestRepository.CountByStatus(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("aggregating dashboard stats: %w", err)
	}

	return stats, nil
}

// ListDocumentTypes returns the catalogue; residents see available types
// only.
func (s *requestService) ListDocumentTypes(ctx context.Context, actor models.Actor) ([]models.DocumentType, error) {
	types, err := s.documentTypeRepository.ListDocumentTypes(ctx, !isOfficial(actor))
	if err != nil {
		return nil, fmt.Errorf("listing document types: %w", err)
	}

	return types, nil
}

// checkAttachment validates the optional upload against the size limit, the
// type allow-list, and the document type's requirements.
func (s *requestService) checkAttachment(docType models.DocumentType, submission SubmitRequest) error {
	if len(submission.AttachmentContent) == 0 {
		if len(docType.Requirements) > 0 {
			return ErrAttachmentRequired
		}
		return nil
	}

	if int64(len(submission.AttachmentContent)) > s.maxUploadBytes {
		return ErrAttachmentTooLarge
	}
	if _, ok := allowedAttachmentTypes[submission.AttachmentType]; !ok {
		return ErrAttachmentType
	}

	return nil
}

func (s *requestService) recordStatusChange(ctx context.Context, actor models.Actor, requestID int64, from, to models.RequestStatus) {
	s.audit.Record(ctx, models.AuditLogEntry{
		ActorID:       actor.ID,
		ActorType:     actor.Type,
		Action:        models.AuditActionStatusChange,
		TableAffected: models.Request{}.TableName(),
		RecordID:      requestID,
		OldValue:      statusSnapshot(from),
		NewValue:      statusSnapshot(to),
	})
}

// statusSnapshot serialises a status for the audit trail's old/new columns.
func statusSnapshot(status models.RequestStatus) json.RawMessage {
	snapshot, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return nil
	}
	return snapshot
}

// newReferenceNo mints "REQ-<yyyymmdd>-<4 hex>". Uniqueness is enforced by
// the database; the caller retries on a collision.
func newReferenceNo() string {
	entropy := make([]byte, 2)
	_, _ = rand.Read(entropy)

	return fmt.Sprintf("REQ-%s-%s", time.Now().Format("20060102"), strings.ToUpper(hex.EncodeToString(entropy)))
}
