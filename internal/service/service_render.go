// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncastillo/eserbisyo/internal/config"
	"github.com/ncastillo/eserbisyo/internal/crypto"
	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/render"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/internal/vault"
	"github.com/ncastillo/eserbisyo/models"
)

// renderService is the concrete implementation of RenderService. It gathers
// everything one document needs (request, catalogue entry, resident record,
// signature and template blobs), mints the verification token, and hands
// composition to the renderer.
//
// A first render advances the request from Processing to ReadyForPickup.
// Re-rendering a ReadyForPickup or Issued request reprints the same
// document: the token is deterministic, so the QR stays stable.
type renderService struct {
	requestRepository      store.RequestRepository
	documentTypeRepository store.DocumentTypeRepository
	residentRepository     store.ResidentRepository
	signatureRepository    store.SignatureRepository

	vault    AttachmentVault
	renderer render.DocumentRenderer
	crypto   crypto.Service
	audit    AuditRecorder

	verifyBaseURL string
	renderTimeout time.Duration

	logger *logger.Logger
}

// NewRenderService constructs a [RenderService].
func NewRenderService(
	storages *store.Storages,
	attachmentVault AttachmentVault,
	renderer render.DocumentRenderer,
	cryptoService crypto.Service,
	audit AuditRecorder,
	cfg config.Documents,
	logger *logger.Logger,
) RenderService {
	return &renderService{
		requestRepository:      storages.RequestRepository,
		documentTypeRepository: storages.DocumentTypeRepository,
		residentRepository:     storages.ResidentRepository,
		signatureRepository:    storages.SignatureRepository,
		vault:                  attachmentVault,
		renderer:               renderer,
		crypto:                 cryptoService,
		audit:                  audit,
		verifyBaseURL:          cfg.VerifyBaseURL,
		renderTimeout:          cfg.RenderTimeout,
		logger:                 logger,
	}
}

// RenderDocument implements [RenderService].
func (r *renderService) RenderDocument(ctx context.Context, actor models.Actor, requestID int64) (RenderedDocument, error) {
	log := logger.FromContext(ctx)

	if !canProcessRequests(actor) {
		return RenderedDocument{}, ErrForbidden
	}

	request, err := r.requestRepository.GetRequest(ctx, requestID)
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("loading request: %w", err)
	}

	switch request.Status {
	case models.StatusProcessing, models.StatusReadyForPickup, models.StatusIssued:
	default:
		return RenderedDocument{}, fmt.Errorf("%w: current status %q", store.ErrInvalidTransition, request.Status)
	}

	docType, err := r.documentTypeRepository.GetDocumentType(ctx, request.DocumentTypeID)
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("loading document type: %w", err)
	}

	resident, err := r.residentRepository.GetResident(ctx, request.ResidentID)
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("loading resident: %w", err)
	}

	signatureBlob, err := r.loadSignature(ctx)
	if err != nil {
		return RenderedDocument{}, err
	}

	templateBlob, templateMissing := r.loadTemplate(ctx, docType)

	token := r.crypto.VerificationToken(request.ReferenceNo)
	if request.VerificationToken == nil || *request.VerificationToken != token {
		if err := r.requestRepository.SetVerificationToken(ctx, request.RequestID, token); err != nil {
			return RenderedDocument{}, fmt.Errorf("storing verification token: %w", err)
		}
	}

	renderCtx, cancel := context.WithTimeout(ctx, r.renderTimeout)
	defer cancel()

	output, err := r.renderer.Render(renderCtx, render.Input{
		ReferenceNo: request.ReferenceNo,
		HolderName:  resident.FirstName + " " + resident.LastName,
		Body:        certificationBody(docType.Name, resident, request.Purpose),
		Layout:      docType.Layout,
		Template:    templateBlob,
		Signature:   signatureBlob,
		QRContent:   r.verifyBaseURL + token,
	})
	if err != nil {
		return RenderedDocument{}, fmt.Errorf("rendering document: %w", err)
	}

	if request.Status == models.StatusProcessing {
		officerID := actor.ID
		if err := r.requestRepository.Transition(ctx, request.RequestID, models.StatusProcessing, models.StatusReadyForPickup, &officerID); err != nil {
			return RenderedDocument{}, fmt.Errorf("advancing request after render: %w", err)
		}
	}

	r.audit.Record(ctx, models.AuditLogEntry{
		ActorID:       actor.ID,
		ActorType:     actor.Type,
		Action:        models.AuditActionDocumentPrinted,
		TableAffected: request.TableName(),
		RecordID:      request.RequestID,
	})

	log.Info().
		Str("func", "renderService.RenderDocument").
		Int64("request_id", request.RequestID).
		Str("reference_no", request.ReferenceNo).
		Bool("blank_fallback", output.UsedBlankFallback || templateMissing).
		Msg("document rendered")

	return RenderedDocument{
		FileName:          request.ReferenceNo + ".pdf",
		PDF:               output.PDF,
		UsedBlankFallback: output.UsedBlankFallback || templateMissing,
	}, nil
}

// loadSignature fetches and decrypts the active signature blob. A missing
// or unreadable signature does not block issuance: the document goes out
// unsigned and the degradation is logged.
func (r *renderService) loadSignature(ctx context.Context) ([]byte, error) {
	signature, err := r.signatureRepository.GetActiveSignature(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSignatureNotFound) {
			logger.FromContext(ctx).Warn().
				Str("func", "renderService.loadSignature").
				Msg("no active signature on file, rendering unsigned")
			return nil, nil
		}
		return nil, fmt.Errorf("loading active signature: %w", err)
	}

	blob, err := r.vault.Retrieve(signature.File)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "renderService.loadSignature").
			Str("signature_file", signature.File).
			Err(err).
			Msg("signature blob unavailable, rendering unsigned")
		return nil, nil
	}

	return blob, nil
}

// loadTemplate fetches the background template blob. A configured but
// missing blob degrades to a blank-page render rather than failing the
// whole operation; the caller surfaces the fallback.
func (r *renderService) loadTemplate(ctx context.Context, docType models.DocumentType) ([]byte, bool) {
	if docType.TemplateFile == nil {
		return nil, false
	}

	blob, err := r.vault.Retrieve(*docType.TemplateFile)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "renderService.loadTemplate").
			Str("template_file", *docType.TemplateFile).
			Err(err).
			Msg("template blob unavailable, rendering on blank page")

		if errors.Is(err, vault.ErrNotFound) || errors.Is(err, crypto.ErrDecryptionFailed) {
			return nil, true
		}
		return nil, true
	}

	return blob, false
}

// certificationBody composes the certified text printed on the document.
func certificationBody(documentName string, resident models.Resident, purpose string) string {
	return fmt.Sprintf(
		"This is to certify that %s %s, a bona fide resident of %s, is being issued this %s upon request for %s purposes.",
		resident.FirstName, resident.LastName, resident.AddressStreet, documentName, purpose,
	)
}
