// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package service

import (
	"context"
	"sync"
	"time"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/internal/utils"
	"github.com/ncastillo/eserbisyo/models"
)

// auditQueueSize bounds the in-flight audit backlog. When the queue is full
// the entry is dropped with a warning instead of stalling the operation.
const auditQueueSize = 256

// insertTimeout bounds one audit insert so a slow database cannot wedge the
// drain loop.
const insertTimeout = 5 * time.Second

// auditRecorder is the best-effort, asynchronous implementation of
// AuditRecorder. Record enqueues and returns immediately; a background
// worker drains the queue into the audit_logs table. Audit failures are
// logged, never propagated.
type auditRecorder struct {
	auditRepository store.AuditRepository

	queue chan models.AuditLogEntry

	closeOnce sync.Once
	done      chan struct{}

	logger *logger.Logger
}

// NewAuditRecorder constructs an [AuditRecorder]. Call Run to start the
// background writer and Close to drain and stop it.
func NewAuditRecorder(auditRepository store.AuditRepository, logger *logger.Logger) AuditRecorder {
	return &auditRecorder{
		auditRepository: auditRepository,
		queue:           make(chan models.AuditLogEntry, auditQueueSize),
		done:            make(chan struct{}),
		logger:          logger,
	}
}

// Record implements [AuditRecorder]. The caller's client IP, when the
// transport recorded one, is attached here so services never handle
// addresses themselves.
func (a *auditRecorder) Record(ctx context.Context, entry models.AuditLogEntry) {
	if ip, ok := utils.GetClientIPFromContext(ctx); ok {
		entry.IPAddress = ip
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	select {
	case a.queue <- entry:
	default:
		a.logger.Warn().
			Str("func", "auditRecorder.Record").
			Str("action", entry.Action).
			Int64("record_id", entry.RecordID).
			Msg("audit queue full, entry dropped")
	}
}

// Run implements [AuditRecorder] and the workers.Worker interface. It spawns
// the drain loop and returns.
func (a *auditRecorder) Run() {
	go a.drain()
}

// Close implements [AuditRecorder]. It stops accepting the queue's backlog
// growth implicitly (callers should have stopped) and waits for the drain
// loop to flush what remains.
func (a *auditRecorder) Close() {
	a.closeOnce.Do(func() {
		close(a.queue)
		<-a.done
	})
}

func (a *auditRecorder) drain() {
	defer close(a.done)

	for entry := range a.queue {
		a.insert(entry)
	}
}

func (a *auditRecorder) insert(entry models.AuditLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
	defer cancel()

	if err := a.auditRepository.InsertAuditEntry(ctx, entry); err != nil {
		a.logger.Err(err).
			Str("func", "auditRecorder.insert").
			Str("action", entry.Action).
			Int64("record_id", entry.RecordID).
			Msg("failed to append audit entry")
	}
}

// auditQueryService is the read side of the trail, exposed to officials.
type auditQueryService struct {
	auditRepository store.AuditRepository
	logger          *logger.Logger
}

// NewAuditQueryService constructs an [AuditService].
func NewAuditQueryService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditQueryService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

// Trail implements [AuditService].
func (a *auditQueryService) Trail(ctx context.Context, actor models.Actor, limit, offset uint64) ([]models.AuditLogEntry, error) {
	if !isOfficial(actor) {
		return nil, ErrForbidden
	}

	return a.auditRepository.ListAuditEntries(ctx, limit, offset)
}
