// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

// paymentRepository is the PostgreSQL-backed implementation of
// [PaymentRepository]. Ledger writes and the matching request transitions
// always share one transaction, so a payment can never exist against a
// request that stayed in ForPayment, and vice versa.
type paymentRepository struct {
	*DB
	logger *logger.Logger
}

// NewPaymentRepository constructs a [PaymentRepository] backed by the
// provided database connection and logger.
func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		DB:     db,
		logger: logger,
	}
}

// RecordPayment inserts the ledger entry and advances the owning request
// from ForPayment to Processing inside one transaction.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on receipt_no → [ErrDuplicateReceipt].
//   - Request missing → [ErrRequestNotFound]; wrong status → [ErrInvalidTransition].
//   - Any failure rolls the whole transaction back; the ledger entry is not kept.
func (p *paymentRepository) RecordPayment(ctx context.Context, payment *models.Payment) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "paymentRepository.RecordPayment").
			Int64("request_id", payment.RequestID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	insertErr := tx.QueryRowContext(ctx, insertPayment,
		payment.RequestID,
		payment.Amount,
		payment.ReceiptNo,
		payment.PayerName,
		payment.Status,
		payment.OfficerID,
	).Scan(&payment.PaymentID, &payment.CreatedAt)

	if insertErr != nil {
		log.Err(insertErr).
			Str("func", "paymentRepository.RecordPayment").
			Int64("request_id", payment.RequestID).
			Str("receipt_no", payment.ReceiptNo).
			Msg("failed to insert payment")

		if postgresError(insertErr) == pgerrcode.UniqueViolation {
			return ErrDuplicateReceipt
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, insertErr)
	}

	row := tx.QueryRowContext(ctx, transitionRequest,
		payment.RequestID, models.StatusForPayment, models.StatusProcessing, payment.OfficerID)

	if guardErr := inspectGuardedUpdate(row, guardedUpdateLog{
		log:      log,
		funcName: "paymentRepository.RecordPayment",
		id:       payment.RequestID,
		expected: string(models.StatusForPayment),
	}); guardErr != nil {
		return guardErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "paymentRepository.RecordPayment").
			Int64("request_id", payment.RequestID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "paymentRepository.RecordPayment").
		Int64("request_id", payment.RequestID).
		Int64("payment_id", payment.PaymentID).
		Str("payment_status", string(payment.Status)).
		Msg("payment recorded and request moved to Processing")

	return nil
}

// MarkRefunded flips a Paid or Exempted ledger entry to Refunded and cancels
// the owning request in the same transaction. The original row is kept; a
// refund is a new state of the same logical transaction, never a delete.
func (p *paymentRepository) MarkRefunded(ctx context.Context, paymentID int64, officerID int64) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "paymentRepository.MarkRefunded").
			Int64("payment_id", paymentID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var requestID *int64
	var currentStatus *string

	scanErr := tx.QueryRowContext(ctx, markPaymentRefunded, paymentID, officerID).
		Scan(&requestID, &currentStatus)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "paymentRepository.MarkRefunded").
			Int64("payment_id", paymentID).
			Msg("failed to execute refund update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	if currentStatus == nil {
		log.Warn().
			Str("func", "paymentRepository.MarkRefunded").
			Int64("payment_id", paymentID).
			Msg("payment not found")
		return ErrPaymentNotFound
	}

	if requestID == nil {
		log.Warn().
			Str("func", "paymentRepository.MarkRefunded").
			Int64("payment_id", paymentID).
			Str("current_status", *currentStatus).
			Msg("payment is not refundable in its current status")
		return fmt.Errorf("%w: current status %q", ErrInvalidTransition, *currentStatus)
	}

	row := tx.QueryRowContext(ctx, cancelRequest, *requestID, officerID)

	if guardErr := inspectGuardedUpdate(row, guardedUpdateLog{
		log:      log,
		funcName: "paymentRepository.MarkRefunded",
		id:       *requestID,
		expected: "any non-terminal",
	}); guardErr != nil {
		return guardErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "paymentRepository.MarkRefunded").
			Int64("payment_id", paymentID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "paymentRepository.MarkRefunded").
		Int64("payment_id", paymentID).
		Int64("request_id", *requestID).
		Msg("payment refunded and request cancelled")

	return nil
}

// ListPaymentsByRequest returns all ledger entries of one request, newest
// first. Refunded rows are included; the ledger hides nothing.
func (p *paymentRepository) ListPaymentsByRequest(ctx context.Context, requestID int64) ([]models.Payment, error) {
	return p.list(ctx, "paymentRepository.ListPaymentsByRequest", listPaymentsByRequest, requestID)
}

// ListPayments returns the full ledger newest first, paged.
func (p *paymentRepository) ListPayments(ctx context.Context, limit, offset uint64) ([]models.Payment, error) {
	if limit == 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	return p.list(ctx, "paymentRepository.ListPayments", listPayments, limit, offset)
}

func (p *paymentRepository) list(ctx context.Context, funcName, query string, args ...any) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute payment listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Payment, 0, defaultListLimit)

	for rows.Next() {
		var payment models.Payment

		scanErr := rows.Scan(
			&payment.PaymentID,
			&payment.RequestID,
			&payment.Amount,
			&payment.ReceiptNo,
			&payment.PayerName,
			&payment.Status,
			&payment.OfficerID,
			&payment.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan payment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, payment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
