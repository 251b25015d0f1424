package http

import (
	"context"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/service"
	"github.com/ncastillo/eserbisyo/models"
)

// Hand-rolled func-field stubs for the service interfaces. Each method
// delegates to its func field when set and returns zero values otherwise.

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (models.Official, models.Token, error)
	createFn func(ctx context.Context, actor models.Actor) (models.Token, error)
	parseFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) LoginOfficial(ctx context.Context, username, password string) (models.Official, models.Token, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, username, password)
	}
	return models.Official{}, models.Token{}, nil
}

func (s *stubAuthService) CreateToken(ctx context.Context, actor models.Actor) (models.Token, error) {
	if s.createFn != nil {
		return s.createFn(ctx, actor)
	}
	return models.Token{}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseFn != nil {
		return s.parseFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

type stubRequestService struct {
	submitFn        func(ctx context.Context, actor models.Actor, submission service.SubmitRequest) (models.Request, error)
	getFn           func(ctx context.Context, actor models.Actor, requestID int64) (models.Request, error)
	listFn          func(ctx context.Context, actor models.Actor, filter models.RequestFilter) ([]models.Request, error)
	approveFn       func(ctx context.Context, actor models.Actor, requestID int64) error
	rejectFn        func(ctx context.Context, actor models.Actor, requestID int64, reason string) error
	issueFn         func(ctx context.Context, actor models.Actor, requestID int64) error
	getAttachmentFn func(ctx context.Context, actor models.Actor, requestID int64) (string, []byte, error)
	statsFn         func(ctx context.Context, actor models.Actor) (models.DashboardStats, error)
	listTypesFn     func(ctx context.Context, actor models.Actor) ([]models.DocumentType, error)
}

func (s *stubRequestService) Submit(ctx context.Context, actor models.Actor, submission service.SubmitRequest) (models.Request, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, actor, submission)
	}
	return models.Request{}, nil
}

func (s *stubRequestService) GetRequest(ctx context.Context, actor models.Actor, requestID int64) (models.Request, error) {
	if s.getFn != nil {
		return s.getFn(ctx, actor, requestID)
	}
	return models.Request{}, nil
}

func (s *stubRequestService) ListRequests(ctx context.Context, actor models.Actor, filter models.RequestFilter) ([]models.Request, error) {
	if s.listFn != nil {
		return s.listFn(ctx, actor, filter)
	}
	return nil, nil
}

func (s *stubRequestService) Approve(ctx context.Context, actor models.Actor, requestID int64) error {
	if s.approveFn != nil {
		return s.approveFn(ctx, actor, requestID)
	}
	return nil
}

func (s *stubRequestService) Reject(ctx context.Context, actor models.Actor, requestID int64, reason string) error {
	if s.rejectFn != nil {
		return s.rejectFn(ctx, actor, requestID, reason)
	}
	return nil
}

func (s *stubRequestService) Issue(ctx context.Context, actor models.Actor, requestID int64) error {
	if s.issueFn != nil {
		return s.issueFn(ctx, actor, requestID)
	}
	return nil
}

func (s *stubRequestService) GetAttachment(ctx context.Context, actor models.Actor, requestID int64) (string, []byte, error) {
	if s.getAttachmentFn != nil {
		return s.getAttachmentFn(ctx, actor, requestID)
	}
	return "", nil, nil
}

func (s *stubRequestService) DashboardStats(ctx context.Context, actor models.Actor) (models.DashboardStats, error) {
	if s.statsFn != nil {
		return s.statsFn(ctx, actor)
	}
	return models.DashboardStats{}, nil
}

func (s *stubRequestService) ListDocumentTypes(ctx context.Context, actor models.Actor) ([]models.DocumentType, error) {
	if s.listTypesFn != nil {
		return s.listTypesFn(ctx, actor)
	}
	return nil, nil
}

type stubPaymentService struct {
	recordFn  func(ctx context.Context, actor models.Actor, requestID int64, body models.RecordPaymentBody) (models.Payment, error)
	refundFn  func(ctx context.Context, actor models.Actor, paymentID int64) error
	listFn    func(ctx context.Context, actor models.Actor, requestID int64) ([]models.Payment, error)
	historyFn func(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.Payment, error)
}

func (s *stubPaymentService) RecordPayment(ctx context.Context, actor models.Actor, requestID int64, body models.RecordPaymentBody) (models.Payment, error) {
	if s.recordFn != nil {
		return s.recordFn(ctx, actor, requestID, body)
	}
	return models.Payment{}, nil
}

func (s *stubPaymentService) Refund(ctx context.Context, actor models.Actor, paymentID int64) error {
	if s.refundFn != nil {
		return s.refundFn(ctx, actor, paymentID)
	}
	return nil
}

func (s *stubPaymentService) ListByRequest(ctx context.Context, actor models.Actor, requestID int64) ([]models.Payment, error) {
	if s.listFn != nil {
		return s.listFn(ctx, actor, requestID)
	}
	return nil, nil
}

func (s *stubPaymentService) History(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.Payment, error) {
	if s.historyFn != nil {
		return s.historyFn(ctx, actor, limit, offset)
	}
	return nil, nil
}

type stubRenderService struct {
	renderFn func(ctx context.Context, actor models.Actor, requestID int64) (service.RenderedDocument, error)
}

func (s *stubRenderService) RenderDocument(ctx context.Context, actor models.Actor, requestID int64) (service.RenderedDocument, error) {
	if s.renderFn != nil {
		return s.renderFn(ctx, actor, requestID)
	}
	return service.RenderedDocument{}, nil
}

type stubResidentService struct {
	getFn func(ctx context.Context, actor models.Actor, residentID int64) (models.Resident, error)
}

func (s *stubResidentService) GetResident(ctx context.Context, actor models.Actor, residentID int64) (models.Resident, error) {
	if s.getFn != nil {
		return s.getFn(ctx, actor, residentID)
	}
	return models.Resident{}, nil
}

type stubVerifyService struct {
	verifyFn func(ctx context.Context, token string) (models.VerificationResult, error)
}

func (s *stubVerifyService) Verify(ctx context.Context, token string) (models.VerificationResult, error) {
	if s.verifyFn != nil {
		return s.verifyFn(ctx, token)
	}
	return models.VerificationResult{}, nil
}

type stubAuditService struct {
	trailFn func(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.AuditLogEntry, error)
}

func (s *stubAuditService) Trail(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.AuditLogEntry, error) {
	if s.trailFn != nil {
		return s.trailFn(ctx, actor, limit, offset)
	}
	return nil, nil
}

type noopAudit struct{}

func (noopAudit) Record(context.Context, models.AuditLogEntry) {}
func (noopAudit) Run()                                         {}
func (noopAudit) Close()                                       {}

// testServices bundles fresh stubs into a service.Services for handler tests.
type testServices struct {
	auth      *stubAuthService
	requests  *stubRequestService
	payments  *stubPaymentService
	renders   *stubRenderService
	residents *stubResidentService
	verifies  *stubVerifyService
	audits    *stubAuditService
}

func newTestServices() (*service.Services, *testServices) {
	stubs := &testServices{
		auth:      &stubAuthService{},
		requests:  &stubRequestService{},
		payments:  &stubPaymentService{},
		renders:   &stubRenderService{},
		residents: &stubResidentService{},
		verifies:  &stubVerifyService{},
		audits:    &stubAuditService{},
	}

	return &service.Services{
		AuthService:     stubs.auth,
		RequestService:  stubs.requests,
		PaymentService:  stubs.payments,
		RenderService:   stubs.renders,
		ResidentService: stubs.residents,
		VerifyService:   stubs.verifies,
		AuditService:    stubs.audits,
		AuditRecorder:   noopAudit{},
	}, stubs
}

// newTestHandler wires a Handler over stub services and a silent logger.
func newTestHandler() (*Handler, *testServices) {
	services, stubs := newTestServices()
	return NewHandler(services, logger.Nop()), stubs
}

// authAs makes ParseToken accept any token and hand back the given actor.
func (s *testServices) authAs(actor models.Actor) {
	s.auth.parseFn = func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{Actor: actor}, nil
	}
}
