package service

import (
	"context"

	"github.com/ncastillo/eserbisyo/internal/vault"
	"github.com/ncastillo/eserbisyo/models"
)

// SubmitRequest carries a resident's new document application after the
// transport layer decoded the attachment payload.
type SubmitRequest struct {
	DocumentTypeID int64
	Purpose        string

	// AttachmentName, AttachmentType and AttachmentContent describe the
	// optional requirement upload. Content is the raw decoded file.
	AttachmentName    string
	AttachmentType    string
	AttachmentContent []byte
}

// RenderedDocument is the output of one document render.
type RenderedDocument struct {
	FileName string
	PDF      []byte

	// UsedBlankFallback reports that the configured template could not be
	// used and the document was composed on a blank page.
	UsedBlankFallback bool
}

// RequestService owns the request lifecycle: submission, the verification
// decisions, release, and read access rules.
type RequestService interface {
	Submit(ctx context.Context, actor models.Actor, submission SubmitRequest) (models.Request, error)

	GetRequest(ctx context.Context, actor models.Actor, requestID int64) (models.Request, error)
	ListRequests(ctx context.Context, actor models.Actor, filter models.RequestFilter) ([]models.Request, error)

	// Approve is the Pending -> ForPayment transition.
	Approve(ctx context.Context, actor models.Actor, requestID int64) error

	// Reject is the Pending -> Rejected transition; reason is mandatory.
	Reject(ctx context.Context, actor models.Actor, requestID int64, reason string) error

	// Issue is the ReadyForPickup -> Issued transition.
	Issue(ctx context.Context, actor models.Actor, requestID int64) error

	// GetAttachment decrypts and returns the request's requirement upload.
	GetAttachment(ctx context.Context, actor models.Actor, requestID int64) (filename string, content []byte, err error)

	DashboardStats(ctx context.Context, actor models.Actor) (models.DashboardStats, error)

	// ListDocumentTypes returns the catalogue. Residents see only the
	// currently available types.
	ListDocumentTypes(ctx context.Context, actor models.Actor) ([]models.DocumentType, error)
}

// PaymentService owns the payment ledger operations.
type PaymentService interface {
	// RecordPayment records a collected fee or an exemption against a
	// ForPayment request and advances it to Processing.
	RecordPayment(ctx context.Context, actor models.Actor, requestID int64, body models.RecordPaymentBody) (models.Payment, error)

	// Refund flips a ledger entry to Refunded and cancels the owning request.
	Refund(ctx context.Context, actor models.Actor, paymentID int64) error

	ListByRequest(ctx context.Context, actor models.Actor, requestID int64) ([]models.Payment, error)

	// History returns the full ledger, newest first, paged.
	History(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.Payment, error)
}

// RenderService produces the final signed document for a request.
type RenderService interface {
	RenderDocument(ctx context.Context, actor models.Actor, requestID int64) (RenderedDocument, error)
}

// VerifyService answers the public QR verification lookups. It requires no
// authentication and must never leak more than the certified facts.
type VerifyService interface {
	Verify(ctx context.Context, token string) (models.VerificationResult, error)
}

// ResidentService exposes resident records to officials. Contact numbers
// are stored field-encrypted and come back decrypted.
type ResidentService interface {
	GetResident(ctx context.Context, actor models.Actor, residentID int64) (models.Resident, error)
}

// AuthService authenticates officials and owns the JWT lifecycle.
type AuthService interface {
	// LoginOfficial verifies the credentials and mints a role-carrying
	// token. Unknown usernames and wrong passwords are indistinguishable to
	// the caller.
	LoginOfficial(ctx context.Context, username, password string) (models.Official, models.Token, error)

	CreateToken(ctx context.Context, actor models.Actor) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuditService is the read side of the audit trail. Officials only.
type AuditService interface {
	Trail(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.AuditLogEntry, error)
}

// AuditRecorder appends to the audit trail with best-effort semantics:
// Record never blocks the calling operation and never surfaces an error.
// Run starts the background writer; Close drains and stops it.
type AuditRecorder interface {
	Record(ctx context.Context, entry models.AuditLogEntry)
	Run()
	Close()
}

// AttachmentVault is the slice of the vault API the services need.
// Implemented by [vault.FileVault].
type AttachmentVault interface {
	Store(content []byte, originalName, reference, subDir string) (vault.StoreResult, error)
	Retrieve(storedName string) ([]byte, error)
}
