package service

import (
	"context"
	"sync"

	"github.com/ncastillo/eserbisyo/internal/render"
	"github.com/ncastillo/eserbisyo/internal/vault"
	"github.com/ncastillo/eserbisyo/models"
)

// capturingAudit is a test AuditRecorder that stores entries in memory.
type capturingAudit struct {
	mu      sync.Mutex
	entries []models.AuditLogEntry
}

func (c *capturingAudit) Record(_ context.Context, entry models.AuditLogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

func (c *capturingAudit) Run()   {}
func (c *capturingAudit) Close() {}

func (c *capturingAudit) recorded() []models.AuditLogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.AuditLogEntry(nil), c.entries...)
}

// stubVault is a func-field test implementation of AttachmentVault.
type stubVault struct {
	storeFn    func(content []byte, originalName, reference, subDir string) (vault.StoreResult, error)
	retrieveFn func(storedName string) ([]byte, error)
}

func (s *stubVault) Store(content []byte, originalName, reference, subDir string) (vault.StoreResult, error) {
	if s.storeFn != nil {
		return s.storeFn(content, originalName, reference, subDir)
	}
	return vault.StoreResult{StoredName: "stored.enc"}, nil
}

func (s *stubVault) Retrieve(storedName string) ([]byte, error) {
	if s.retrieveFn != nil {
		return s.retrieveFn(storedName)
	}
	return nil, nil
}

// stubRenderer is a func-field test implementation of render.DocumentRenderer.
type stubRenderer struct {
	renderFn func(ctx context.Context, input render.Input) (render.Output, error)
}

func (s *stubRenderer) Render(ctx context.Context, input render.Input) (render.Output, error) {
	if s.renderFn != nil {
		return s.renderFn(ctx, input)
	}
	return render.Output{PDF: []byte("%PDF-1.4")}, nil
}
