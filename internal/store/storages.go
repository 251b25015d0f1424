package store

import "github.com/ncastillo/eserbisyo/internal/logger"

// Storages bundles every repository behind its interface for injection into
// the service layer.
type Storages struct {
	RequestRepository      RequestRepository
	PaymentRepository      PaymentRepository
	DocumentTypeRepository DocumentTypeRepository
	OfficialRepository     OfficialRepository
	ResidentRepository     ResidentRepository
	SignatureRepository    SignatureRepository
	AuditRepository        AuditRepository
}

// NewStorages wires all PostgreSQL repositories onto the shared connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		RequestRepository:      NewRequestRepository(db, log),
		PaymentRepository:      NewPaymentRepository(db, log),
		DocumentTypeRepository: NewDocumentTypeRepository(db, log),
		OfficialRepository:     NewOfficialRepository(db, log),
		ResidentRepository:     NewResidentRepository(db, log),
		SignatureRepository:    NewSignatureRepository(db, log),
		AuditRepository:        NewAuditRepository(db, log),
	}
}
