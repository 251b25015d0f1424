// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package models

import "time"

// RequestStatus is the lifecycle state of a document request.
//
// The full transition table is owned by the service layer; statuses here are
// the persisted enum values only.
type RequestStatus string

const (
	// StatusPending is the initial state of every submitted request.
	StatusPending RequestStatus = "Pending"

	// StatusRejected is terminal: the request was denied during verification.
	StatusRejected RequestStatus = "Rejected"

	// StatusForPayment means the request passed verification and awaits a
	// payment or exemption record.
	StatusForPayment RequestStatus = "ForPayment"

	// StatusProcessing means payment was recorded and the document is being
	// prepared.
	StatusProcessing RequestStatus = "Processing"

	// StatusReadyForPickup means the document has been rendered and awaits
	// release to the resident.
	StatusReadyForPickup RequestStatus = "ReadyForPickup"

	// StatusIssued is terminal: the document was released. Verification
	// reports documents as valid only in this state.
	StatusIssued RequestStatus = "Issued"

	// StatusCancelled is terminal: the payment was refunded. A cancelled
	// request does not block new submissions for the same document type.
	StatusCancelled RequestStatus = "Cancelled"
)

// Terminal reports whether the status is final. Terminal requests are
// retained for audit and accept no further transitions.
func (s RequestStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusIssued, StatusCancelled:
		return true
	}
	return false
}

// Request represents one document application by a resident.
//
// ReferenceNo is assigned at creation, globally unique and immutable.
// VerificationToken is nil until the document is rendered. Requests are
// never physically deleted.
type Request struct {
	// RequestID is the internal unique identifier of the request.
	RequestID int64 `json:"request_id"`

	// ResidentID references the owning resident.
	ResidentID int64 `json:"resident_id"`

	// DocumentTypeID references the requested document type.
	DocumentTypeID int64 `json:"document_type_id"`

	// ReferenceNo is the human-readable unique identifier, e.g. "REQ-20260831-4F2A".
	ReferenceNo string `json:"reference_no"`

	// Purpose is the resident-supplied free-text purpose of the request.
	Purpose string `json:"purpose"`

	// Status is the current lifecycle state.
	Status RequestStatus `json:"status"`

	// RejectionReason is set only when Status is Rejected.
	RejectionReason *string `json:"rejection_reason,omitempty"`

	// OfficerID is the processing official, once one has acted on the request.
	OfficerID *int64 `json:"officer_id,omitempty"`

	// VerificationToken is the keyed hash minted at render time and embedded
	// in the document's QR code. Nil until rendered.
	VerificationToken *string `json:"-"`

	// AttachmentFile is the vault filename of the resident's requirement
	// upload, if any. The blob itself lives encrypted on disk.
	AttachmentFile *string `json:"attachment_file,omitempty"`

	// CreatedAt is the submission timestamp.
	CreatedAt time.Time `json:"created_at"`

	// IssuedAt is stamped when the document is released to the resident.
	IssuedAt *time.Time `json:"issued_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Request model.
func (r Request) TableName() string {
	return "requests"
}

// RequestFilter narrows a request listing. Nil fields are not filtered on.
type RequestFilter struct {
	ResidentID     *int64
	DocumentTypeID *int64
	Status         *RequestStatus

	// Limit caps the page size; zero means the repository default.
	Limit  uint64
	Offset uint64
}
