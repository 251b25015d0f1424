package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ncastillo/eserbisyo/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// requestColumns is the canonical scan order for request rows.
var requestColumns = []string{
	"request_id",
	"resident_id",
	"document_type_id",
	"reference_no",
	"purpose",
	"status",
	"rejection_reason",
	"officer_id",
	"verification_token",
	"attachment_file",
	"created_at",
	"issued_at",
}

const (
	createRequest = `INSERT INTO requests (resident_id, document_type_id, reference_no, purpose, status, attachment_file)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING request_id, created_at;`

	getRequestByID = `SELECT request_id, resident_id, document_type_id, reference_no, purpose, status,
		rejection_reason, officer_id, verification_token, attachment_file, created_at, issued_at
	FROM requests
	WHERE request_id = $1;`

	getRequestByReference = `SELECT request_id, resident_id, document_type_id, reference_no, purpose, status,
		rejection_reason, officer_id, verification_token, attachment_file, created_at, issued_at
	FROM requests
	WHERE reference_no = $1;`

	getRequestByToken = `SELECT request_id, resident_id, document_type_id, reference_no, purpose, status,
		rejection_reason, officer_id, verification_token, attachment_file, created_at, issued_at
	FROM requests
	WHERE verification_token = $1;`

	// transitionRequest updates the status only when the row is still in the
	// expected one. The outer SELECT always yields exactly one row:
	// current_status NULL means the request does not exist, updated_id NULL
	// with a non-NULL current_status means the guard lost.
	transitionRequest = `WITH target_request AS (
		SELECT request_id, status FROM requests WHERE request_id = $1
	), updated AS (
		UPDATE requests
		SET status = $3, officer_id = COALESCE($4, officer_id)
		WHERE request_id = $1 AND status = $2
		RETURNING request_id
	)
	SELECT (SELECT request_id FROM updated), (SELECT status FROM target_request);`

	rejectRequest = `WITH target_request AS (
		SELECT request_id, status FROM requests WHERE request_id = $1
	), updated AS (
		UPDATE requests
		SET status = 'Rejected', rejection_reason = $2, officer_id = $3
		WHERE request_id = $1 AND status = 'Pending'
		RETURNING request_id
	)
	SELECT (SELECT request_id FROM updated), (SELECT status FROM target_request);`

	issueRequest = `WITH target_request AS (
		SELECT request_id, status FROM requests WHERE request_id = $1
	), updated AS (
		UPDATE requests
		SET status = 'Issued', issued_at = NOW(), officer_id = $2
		WHERE request_id = $1 AND status = 'ReadyForPickup'
		RETURNING request_id
	)
	SELECT (SELECT request_id FROM updated), (SELECT status FROM target_request);`

	// cancelRequest moves any still-active request to Cancelled. Terminal
	// rows are left untouched and reported as a transition conflict.
	cancelRequest = `WITH target_request AS (
		SELECT request_id, status FROM requests WHERE request_id = $1
	), updated AS (
		UPDATE requests
		SET status = 'Cancelled', officer_id = COALESCE($2, officer_id)
		WHERE request_id = $1 AND status NOT IN ('Issued', 'Rejected', 'Cancelled')
		RETURNING request_id
	)
	SELECT (SELECT request_id FROM updated), (SELECT status FROM target_request);`

	setRequestVerificationToken = `UPDATE requests
	SET verification_token = $2
	WHERE request_id = $1;`

	countRequestsByStatus = `SELECT
		COUNT(*) FILTER (WHERE status = 'Pending'),
		COUNT(*) FILTER (WHERE status IN ('ForPayment', 'Processing', 'ReadyForPickup')),
		COUNT(*) FILTER (WHERE status = 'Issued')
	FROM requests;`
)

const (
	insertPayment = `INSERT INTO payments (request_id, amount, receipt_no, payer_name, status, officer_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING payment_id, created_at;`

	markPaymentRefunded = `WITH target_payment AS (
		SELECT payment_id, request_id, status FROM payments WHERE payment_id = $1
	), updated AS (
		UPDATE payments
		SET status = 'Refunded', officer_id = $2
		WHERE payment_id = $1 AND status IN ('Paid', 'Exempted')
		RETURNING request_id
	)
	SELECT (SELECT request_id FROM updated), (SELECT status FROM target_payment);`

	listPaymentsByRequest = `SELECT payment_id, request_id, amount, receipt_no, payer_name, status, officer_id, created_at
	FROM payments
	WHERE request_id = $1
	ORDER BY created_at DESC, payment_id DESC;`

	listPayments = `SELECT payment_id, request_id, amount, receipt_no, payer_name, status, officer_id, created_at
	FROM payments
	ORDER BY created_at DESC, payment_id DESC
	LIMIT $1 OFFSET $2;`
)

const (
	getDocumentType = `SELECT document_type_id, name, base_fee, requirements, layout, template_file, available
	FROM document_types
	WHERE document_type_id = $1;`

	listAllDocumentTypes = `SELECT document_type_id, name, base_fee, requirements, layout, template_file, available
	FROM document_types
	ORDER BY name;`

	listAvailableDocumentTypes = `SELECT document_type_id, name, base_fee, requirements, layout, template_file, available
	FROM document_types
	WHERE available
	ORDER BY name;`
)

const (
	findOfficialByUsername = `SELECT official_id, username, password_hash, full_name, role, position, created_at
	FROM officials
	WHERE username = $1;`

	getOfficialByID = `SELECT official_id, username, password_hash, full_name, role, position, created_at
	FROM officials
	WHERE official_id = $1;`

	getResidentByID = `SELECT resident_id, first_name, last_name, address_street, contact_no, created_at
	FROM residents
	WHERE resident_id = $1;`

	getActiveSignature = `SELECT signature_id, official_id, file, active, created_at
	FROM digital_signatures
	WHERE active
	ORDER BY created_at DESC, signature_id DESC
	LIMIT 1;`
)

const (
	insertAuditEntry = `INSERT INTO audit_logs (actor_id, actor_type, action, table_affected, record_id, old_value, new_value, ip_address)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	listAuditEntriesQuery = `SELECT audit_id, actor_id, actor_type, action, table_affected, record_id, old_value, new_value, ip_address, created_at
	FROM audit_logs
	ORDER BY created_at DESC, audit_id DESC
	LIMIT $1 OFFSET $2;`
)

// buildListRequestsQuery assembles the filtered listing query with squirrel.
// Nil filter fields contribute no predicate.
func buildListRequestsQuery(filter models.RequestFilter) (string, []any, error) {
	builder := squirrel.Select(requestColumns...).
		From(models.Request{}.TableName()).
		OrderBy("created_at DESC", "request_id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.ResidentID != nil {
		builder = builder.Where(squirrel.Eq{"resident_id": *filter.ResidentID})
	}
	if filter.DocumentTypeID != nil {
		builder = builder.Where(squirrel.Eq{"document_type_id": *filter.DocumentTypeID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	limit := filter.Limit
	if limit == 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	builder = builder.Limit(limit).Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
