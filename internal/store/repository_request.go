// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/models"
)

// requestRepository is the PostgreSQL-backed implementation of
// [RequestRepository]. All lifecycle guards live in the SQL itself: every
// conditional transition is a single CTE-based UPDATE whose predicate
// includes the expected current status.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (request_id, status, reference_no, etc.).
type requestRepository struct {
	*DB
	logger *logger.Logger
}

// NewRequestRepository constructs a [RequestRepository] backed by the
// provided database connection and logger.
func NewRequestRepository(db *DB, logger *logger.Logger) RequestRepository {
	logger.Debug().Msg("creating request repository")
	return &requestRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateRequest inserts a new Pending request and writes the server-assigned
// RequestID and CreatedAt back into the passed struct.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateActiveRequest].
//     The partial unique index on (resident_id, document_type_id) covers
//     only non-terminal rows, so terminal requests never block a new one.
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *requestRepository) CreateRequest(ctx context.Context, request *models.Request) error {
	log := logger.FromContext(ctx)

	err := r.DB.QueryRowContext(ctx, createRequest,
		request.ResidentID,
		request.DocumentTypeID,
		request.ReferenceNo,
		request.Purpose,
		request.Status,
		request.AttachmentFile,
	).Scan(&request.RequestID, &request.CreatedAt)

	if err != nil {
		log.Err(err).
			Str("func", "requestRepository.CreateRequest").
			Int64("resident_id", request.ResidentID).
			Int64("document_type_id", request.DocumentTypeID).
			Msg("failed to insert request")

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// Two unique constraints can fire here; the reference index
			// collision is retryable, the active-request one is not.
			if pgErr.ConstraintName == "requests_reference_no_key" {
				return ErrDuplicateReference
			}
			return ErrDuplicateActiveRequest
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetRequest retrieves one request by its internal identifier.
func (r *requestRepository) GetRequest(ctx context.Context, requestID int64) (models.Request, error) {
	return r.getOne(ctx, "requestRepository.GetRequest", getRequestByID, requestID)
}

// GetRequestByReference retrieves one request by its public reference number.
func (r *requestRepository) GetRequestByReference(ctx context.Context, referenceNo string) (models.Request, error) {
	return r.getOne(ctx, "requestRepository.GetRequestByReference", getRequestByReference, referenceNo)
}

// GetRequestByToken retrieves the request a verification token was minted
// for. Used by the public verification endpoint.
func (r *requestRepository) GetRequestByToken(ctx context.Context, verificationToken string) (models.Request, error) {
	return r.getOne(ctx, "requestRepository.GetRequestByToken", getRequestByToken, verificationToken)
}

func (r *requestRepository) getOne(ctx context.Context, funcName, query string, arg any) (models.Request, error) {
	log := logger.FromContext(ctx)

	var request models.Request

	err := scanRequest(r.DB.QueryRowContext(ctx, query, arg), &request)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Request{}, ErrRequestNotFound
		}

		log.Err(err).
			Str("func", funcName).
			Msg("failed to query request")
		return models.Request{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return request, nil
}

// ListRequests returns requests matching the filter, newest first. The query
// is assembled dynamically; nil filter fields add no predicate.
func (r *requestRepository) ListRequests(ctx context.Context, filter models.RequestFilter) ([]models.Request, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRequestsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "requestRepository.ListRequests").
			Msg("failed to build listing query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "requestRepository.ListRequests").
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Request, 0, defaultListLimit)

	for rows.Next() {
		var request models.Request

		if scanErr := scanRequest(rows, &request); scanErr != nil {
			log.Err(scanErr).
				Str("func", "requestRepository.ListRequests").
				Msg("failed to scan request row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, request)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "requestRepository.ListRequests").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Transition moves a request from one expected status to another.
//
// The CTE query returns both the updated row ID and the current status,
// which distinguishes the two failure cases:
//   - current status NULL → the request does not exist ([ErrRequestNotFound]).
//   - updated ID NULL, current status non-NULL → the row was found in a
//     different status ([ErrInvalidTransition]).
func (r *requestRepository) Transition(ctx context.Context, requestID int64, from, to models.RequestStatus, officerID *int64) error {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, transitionRequest, requestID, from, to, officerID)

	return inspectGuardedUpdate(row, guardedUpdateLog{
		log:      log,
		funcName: "requestRepository.Transition",
		id:       requestID,
		expected: string(from),
	})
}

// RejectRequest is the Pending -> Rejected transition with a mandatory
// reason. Same outcome inspection as [Transition].
func (r *requestRepository) RejectRequest(ctx context.Context, requestID int64, reason string, officerID int64) error {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, rejectRequest, requestID, reason, officerID)

	return inspectGuardedUpdate(row, guardedUpdateLog{
		log:      log,
		funcName: "requestRepository.RejectRequest",
		id:       requestID,
		expected: string(models.StatusPending),
	})
}

// IssueRequest is the ReadyForPickup -> Issued transition; issued_at is
// stamped by the database.
func (r *requestRepository) IssueRequest(ctx context.Context, requestID int64, officerID int64) error {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, issueRequest, requestID, officerID)

	return inspectGuardedUpdate(row, guardedUpdateLog{
		log:      log,
		funcName: "requestRepository.IssueRequest",
		id:       requestID,
		expected: string(models.StatusReadyForPickup),
	})
}

// SetVerificationToken records the token minted at render time.
func (r *requestRepository) SetVerificationToken(ctx context.Context, requestID int64, token string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, setRequestVerificationToken, requestID, token)
	if err != nil {
		log.Err(err).
			Str("func", "requestRepository.SetVerificationToken").
			Int64("request_id", requestID).
			Msg("failed to store verification token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// CountByStatus aggregates the dashboard counters in a single query.
func (r *requestRepository) CountByStatus(ctx context.Context) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	var stats models.DashboardStats

	err := r.DB.QueryRowContext(ctx, countRequestsByStatus).
		Scan(&stats.Pending, &stats.Processing, &stats.Completed)
	if err != nil {
		log.Err(err).
			Str("func", "requestRepository.CountByStatus").
			Msg("failed to aggregate request counters")
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner, request *models.Request) error {
	return row.Scan(
		&request.RequestID,
		&request.ResidentID,
		&request.DocumentTypeID,
		&request.ReferenceNo,
		&request.Purpose,
		&request.Status,
		&request.RejectionReason,
		&request.OfficerID,
		&request.VerificationToken,
		&request.AttachmentFile,
		&request.CreatedAt,
		&request.IssuedAt,
	)
}

// guardedUpdateLog carries the structured-log fields for one conditional
// status update.
type guardedUpdateLog struct {
	log      *logger.Logger
	funcName string
	id       int64
	expected string
}

// inspectGuardedUpdate scans the (updated_id, current_status) pair produced
// by the CTE transition queries and maps the NULL combinations onto the
// sentinel errors.
func inspectGuardedUpdate(row rowScanner, details guardedUpdateLog) error {
	var updatedID *int64
	var currentStatus *string

	if err := row.Scan(&updatedID, &currentStatus); err != nil {
		details.log.Err(err).
			Str("func", details.funcName).
			Int64("request_id", details.id).
			Msg("failed to execute guarded status update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// not found: target row absent -> both NULL
	if currentStatus == nil {
		details.log.Warn().
			Str("func", details.funcName).
			Int64("request_id", details.id).
			Msg("request not found")
		return ErrRequestNotFound
	}

	// found but not updated -> status guard lost
	if updatedID == nil {
		details.log.Warn().
			Str("func", details.funcName).
			Int64("request_id", details.id).
			Str("current_status", *currentStatus).
			Str("expected_status", details.expected).
			Msg("status guard rejected transition")
		return fmt.Errorf("%w: current status %q", ErrInvalidTransition, *currentStatus)
	}

	details.log.Info().
		Str("func", details.funcName).
		Int64("request_id", details.id).
		Msg("request status updated")

	return nil
}
