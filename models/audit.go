// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package models

import (
	"encoding/json"
	"time"
)

// Actor types recorded in the audit trail.
const (
	ActorResident = "Resident"
	ActorOfficial = "Official"
	ActorSystem   = "System"
)

// Audit action kinds. Free-form strings are allowed; these cover the
// engine's own state-changing operations.
const (
	AuditActionCreate          = "CREATE"
	AuditActionStatusChange    = "STATUS_CHANGE"
	AuditActionPaymentEncoded  = "PAYMENT_ENCODED"
	AuditActionDocumentPrinted = "DOCUMENT_PRINTED"
	AuditActionLogin           = "LOGIN"
)

// AuditLogEntry is one immutable row of the append-only audit trail.
// Entries are never updated or deleted.
type AuditLogEntry struct {
	// AuditID is the internal unique identifier.
	AuditID int64 `json:"audit_id"`

	// ActorID identifies who performed the action; zero for system actions.
	ActorID int64 `json:"actor_id"`

	// ActorType is Resident, Official or System.
	ActorType string `json:"actor_type"`

	// Action is the action kind, e.g. STATUS_CHANGE.
	Action string `json:"action"`

	// TableAffected names the table the action touched.
	TableAffected string `json:"table_affected"`

	// RecordID is the primary key of the affected row.
	RecordID int64 `json:"record_id"`

	// OldValue and NewValue are structured snapshots of the changed state.
	OldValue json.RawMessage `json:"old_value,omitempty"`
	NewValue json.RawMessage `json:"new_value,omitempty"`

	// IPAddress is the origin address of the triggering call.
	IPAddress string `json:"ip_address"`

	// CreatedAt is the append timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AuditLogEntry model.
func (a AuditLogEntry) TableName() string {
	return "audit_logs"
}

// Actor is the already-verified identity attached to every mutating engine
// operation. It is produced by the authentication middleware and consumed by
// role checks and the audit recorder.
type Actor struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Role string `json:"role"`
}
