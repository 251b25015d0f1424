package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/ncastillo/eserbisyo/models"
)

// RequestRepository persists document requests and enforces the lifecycle
// guards at the database level. All conditional updates are atomic: the
// expected current status is part of the UPDATE predicate, so two concurrent
// officials can never both win the same transition.
type RequestRepository interface {
	// CreateRequest inserts a new Pending request and populates the
	// server-assigned fields (RequestID, CreatedAt) on the passed struct.
	// Returns ErrDuplicateActiveRequest when the resident already has a
	// non-terminal request for the same document type.
	CreateRequest(ctx context.Context, request *models.Request) error

	GetRequest(ctx context.Context, requestID int64) (models.Request, error)
	GetRequestByReference(ctx context.Context, referenceNo string) (models.Request, error)
	GetRequestByToken(ctx context.Context, verificationToken string) (models.Request, error)

	// ListRequests returns requests matching the filter, newest first.
	ListRequests(ctx context.Context, filter models.RequestFilter) ([]models.Request, error)

	// Transition moves a request from one status to another. officerID, when
	// non-nil, is recorded as the acting official. Returns ErrRequestNotFound
	// or ErrInvalidTransition.
	Transition(ctx context.Context, requestID int64, from, to models.RequestStatus, officerID *int64) error

	// RejectRequest is the Pending -> Rejected transition with a mandatory
	// reason.
	RejectRequest(ctx context.Context, requestID int64, reason string, officerID int64) error

	// IssueRequest is the ReadyForPickup -> Issued transition; it also stamps
	// issued_at.
	IssueRequest(ctx context.Context, requestID int64, officerID int64) error

	// SetVerificationToken records the token minted at render time.
	SetVerificationToken(ctx context.Context, requestID int64, token string) error

	// CountByStatus aggregates the dashboard counters in one query.
	CountByStatus(ctx context.Context) (models.DashboardStats, error)
}

// PaymentRepository persists the payment ledger. Recording a payment and
// advancing the owning request happen in one database transaction.
type PaymentRepository interface {
	// RecordPayment inserts the ledger entry and moves the request from
	// ForPayment to Processing atomically. Populates PaymentID and CreatedAt
	// on success. Returns ErrDuplicateReceipt, ErrRequestNotFound, or
	// ErrInvalidTransition; on any error nothing is persisted.
	RecordPayment(ctx context.Context, payment *models.Payment) error

	// MarkRefunded flips a ledger entry to Refunded and moves the owning
	// request to Cancelled in one transaction.
	MarkRefunded(ctx context.Context, paymentID int64, officerID int64) error

	ListPaymentsByRequest(ctx context.Context, requestID int64) ([]models.Payment, error)

	// ListPayments returns the ledger newest first, paged.
	ListPayments(ctx context.Context, limit, offset uint64) ([]models.Payment, error)
}

// DocumentTypeRepository reads the document-type catalogue.
type DocumentTypeRepository interface {
	GetDocumentType(ctx context.Context, documentTypeID int64) (models.DocumentType, error)
	ListDocumentTypes(ctx context.Context, onlyAvailable bool) ([]models.DocumentType, error)
}

// OfficialRepository reads barangay official accounts.
type OfficialRepository interface {
	FindOfficialByUsername(ctx context.Context, username string) (models.Official, error)
	GetOfficial(ctx context.Context, officialID int64) (models.Official, error)
}

// ResidentRepository reads resident records. Sensitive fields come back in
// their encrypted storage form; decryption belongs to the service layer.
type ResidentRepository interface {
	GetResident(ctx context.Context, residentID int64) (models.Resident, error)
}

// SignatureRepository reads the captain's digital signature files.
type SignatureRepository interface {
	// GetActiveSignature returns the most recently uploaded active signature.
	GetActiveSignature(ctx context.Context) (models.DigitalSignature, error)
}

// AuditRepository appends to the immutable audit trail.
type AuditRepository interface {
	InsertAuditEntry(ctx context.Context, entry models.AuditLogEntry) error
	ListAuditEntries(ctx context.Context, limit, offset uint64) ([]models.AuditLogEntry, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
