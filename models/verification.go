package models

import "time"

// VerificationStatus is the public answer of the verification service.
type VerificationStatus string

const (
	// VerificationValid means the token matches an issued document.
	VerificationValid VerificationStatus = "Valid"

	// VerificationRevoked means the token matches a request that is not
	// (or not yet, or no longer) in the Issued state.
	VerificationRevoked VerificationStatus = "Revoked"

	// VerificationUnknown means the token was never issued by this system.
	VerificationUnknown VerificationStatus = "Unknown"
)

// VerificationResult is the payload of the public verification endpoint.
// Details are present only for Valid and Revoked outcomes and expose no more
// than reference number, document type, holder name and issue date.
type VerificationResult struct {
	Status  VerificationStatus   `json:"status"`
	Details *VerificationDetails `json:"details,omitempty"`
}

// VerificationDetails is the restricted public view of a verified document.
type VerificationDetails struct {
	ReferenceNo  string     `json:"reference_no"`
	DocumentType string     `json:"document_type"`
	HolderName   string     `json:"holder_name"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
}
