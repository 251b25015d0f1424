package service

import (
	"github.com/ncastillo/eserbisyo/internal/config"
	"github.com/ncastillo/eserbisyo/internal/crypto"
	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/render"
	"github.com/ncastillo/eserbisyo/internal/store"
)

// Services aggregates every engine service behind one wiring point.
type Services struct {
	AuthService     AuthService
	RequestService  RequestService
	PaymentService  PaymentService
	RenderService   RenderService
	ResidentService ResidentService
	VerifyService   VerifyService
	AuditService    AuditService
	AuditRecorder   AuditRecorder
}

// Dependencies collects the infrastructure the services are built on.
type Dependencies struct {
	Storages *store.Storages
	Vault    AttachmentVault
	Crypto   crypto.Service
	Renderer render.DocumentRenderer
}

// NewServices wires the full service layer. The returned AuditRecorder is
// not yet running; register it with the workers aggregate or call Run
// before serving traffic, and Close on shutdown.
func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	audit := NewAuditRecorder(deps.Storages.AuditRepository, logger)

	return &Services{
		AuthService:     NewAuthService(deps.Storages.OfficialRepository, deps.Crypto, audit, cfg.Auth, logger),
		RequestService:  NewRequestService(deps.Storages.RequestRepository, deps.Storages.DocumentTypeRepository, deps.Vault, audit, cfg.Documents.MaxUploadBytes, logger),
		PaymentService:  NewPaymentService(deps.Storages.PaymentRepository, deps.Storages.RequestRepository, audit, logger),
		RenderService:   NewRenderService(deps.Storages, deps.Vault, deps.Renderer, deps.Crypto, audit, cfg.Documents, logger),
		ResidentService: NewResidentService(deps.Storages.ResidentRepository, deps.Crypto, logger),
		VerifyService:   NewVerifyService(deps.Storages.RequestRepository, deps.Storages.DocumentTypeRepository, deps.Storages.ResidentRepository, logger),
		AuditService:    NewAuditQueryService(deps.Storages.AuditRepository, logger),
		AuditRecorder:   audit,
	}
}
