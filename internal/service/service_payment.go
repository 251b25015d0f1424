// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
)

// paymentService is the concrete implementation of PaymentService. The
// atomicity of ledger-write plus request-transition lives in the repository;
// this layer owns validation, the exemption rules, and the role checks.
type paymentService struct {
	paymentRepository store.PaymentRepository
	requestRepository store.RequestRepository
	audit             AuditRecorder
	logger            *logger.Logger
}

// NewPaymentService constructs a [PaymentService].
func NewPaymentService(
	paymentRepository store.PaymentRepository,
	requestRepository store.RequestRepository,
	audit AuditRecorder,
	logger *logger.Logger,
) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		requestRepository: requestRepository,
		audit:             audit,
		logger:            logger,
	}
}

// RecordPayment validates and records a collected fee or an exemption.
//
// Exemptions force the amount to zero and mint a synthetic receipt number
// from the request reference, so the receipt-uniqueness invariant holds for
// them exactly as for real receipts: a request can be exempted once.
func (p *paymentService) RecordPayment(ctx context.Context, actor models.Actor, requestID int64, body models.RecordPaymentBody) (models.Payment, error) {
	log := logger.FromContext(ctx)

	if !canRecordPayments(actor) {
		return models.Payment{}, ErrForbidden
	}

	payerName := strings.TrimSpace(body.PayerName)
	if payerName == "" {
		log.Error().Str("func", "paymentService.RecordPayment").Int64("request_id", requestID).Msg("payer name missing")
		return models.Payment{}, ErrValidation
	}

	payment := models.Payment{
		RequestID: requestID,
		PayerName: payerName,
		OfficerID: actor.ID,
	}

	switch body.Mode {
	case models.PaymentPaid:
		receiptNo := strings.TrimSpace(body.ReceiptNo)
		if body.Amount <= 0 || receiptNo == "" {
			log.Error().Str("func", "paymentService.RecordPayment").Int64("request_id", requestID).Msg("invalid paid-mode payload")
			return models.Payment{}, ErrValidation
		}
		payment.Amount = body.Amount
		payment.ReceiptNo = receiptNo
		payment.Status = models.PaymentPaid

	case models.PaymentExempted:
		request, err := p.requestRepository.GetRequest(ctx, requestID)
		if err != nil {
			return models.Payment{}, fmt.Errorf("loading request for exemption: %w", err)
		}
		payment.Amount = 0
		payment.ReceiptNo = "EXEMPT-" + request.ReferenceNo
		payment.Status = models.PaymentExempted

	default:
		return models.Payment{}, ErrValidation
	}

	if err := p.paymentRepository.RecordPayment(ctx, &payment); err != nil {
		return models.Payment{}, fmt.Errorf("recording payment: %w", err)
	}

	p.audit.Record(ctx, models.AuditLogEntry{
		ActorID:       actor.ID,
		ActorType:     actor.Type,
		Action:        models.AuditActionPaymentEncoded,
		TableAffected: payment.TableName(),
		RecordID:      payment.PaymentID,
		NewValue:      paymentSnapshot(payment),
	})

	return payment, nil
}

// Refund flips a ledger entry to Refunded and cancels the owning request.
func (p *paymentService) Refund(ctx context.Context, actor models.Actor, paymentID int64) error {
	if !canRecordPayments(actor) {
		return ErrForbidden
	}

	if err := p.paymentRepository.MarkRefunded(ctx, paymentID, actor.ID); err != nil {
		return fmt.Errorf("refunding payment: %w", err)
	}

	p.audit.Record(ctx, models.AuditLogEntry{
		ActorID:       actor.ID,
		ActorType:     actor.Type,
		Action:        models.AuditActionStatusChange,
		TableAffected: models.Payment{}.TableName(),
		RecordID:      paymentID,
		NewValue:      paymentStatusSnapshot(models.PaymentRefunded),
	})

	return nil
}

// ListByRequest returns the ledger entries of one request. Officials read
// any; residents only their own request's history.
func (p *paymentService) ListByRequest(ctx context.Context, actor models.Actor, requestID int64) ([]models.Payment, error) {
	if !isOfficial(actor) {
		request, err := p.requestRepository.GetRequest(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("loading request: %w", err)
		}
		if request.ResidentID != actor.ID {
			return nil, ErrForbidden
		}
	}

	payments, err := p.paymentRepository.ListPaymentsByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return payments, nil
}

// History returns the full ledger for the treasurer's books.
func (p *paymentService) History(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.Payment, error) {
	if !canRecordPayments(actor) {
		return nil, ErrForbidden
	}

	payments, err := p.paymentRepository.ListPayments(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing payment history: %w", err)
	}

	return payments, nil
}

func paymentSnapshot(payment models.Payment) []byte {
	snapshot, err := json.Marshal(map[string]any{
		"status":     string(payment.Status),
		"amount":     payment.Amount,
		"receipt_no": payment.ReceiptNo,
	})
	if err != nil {
		return nil
	}
	return snapshot
}

func paymentStatusSnapshot(status models.PaymentStatus) []byte {
	snapshot, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return nil
	}
	return snapshot
}
