// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Niño Castillo

package models

import "time"

// PaymentStatus is the state of one financial event tied to a request.
type PaymentStatus string

const (
	// PaymentPaid records a collected fee against an official receipt number.
	PaymentPaid PaymentStatus = "Paid"

	// PaymentExempted records a fee waiver; the amount is forced to zero and
	// a synthetic receipt token keeps the receipt-uniqueness invariant.
	PaymentExempted PaymentStatus = "Exempted"

	// PaymentRefunded is a new state on the same logical transaction, not a
	// delete; it cancels the owning request.
	PaymentRefunded PaymentStatus = "Refunded"
)

// Payment is one financial event tied 1:1 to a request once it reaches a
// payable state. ReceiptNo is globally unique across all payments; at most
// one non-refunded payment exists per request.
type Payment struct {
	// PaymentID is the internal unique identifier of the payment.
	PaymentID int64 `json:"payment_id"`

	// RequestID references the request this payment settles.
	RequestID int64 `json:"request_id"`

	// Amount is the collected fee in pesos. Zero for exemptions.
	Amount float64 `json:"amount"`

	// ReceiptNo is the official receipt (OR) number, or a synthetic token
	// for exemptions. Globally unique.
	ReceiptNo string `json:"receipt_no"`

	// PayerName is the name written on the receipt.
	PayerName string `json:"payer_name"`

	// Status is Paid, Exempted or Refunded.
	Status PaymentStatus `json:"status"`

	// OfficerID is the official who recorded the event.
	OfficerID int64 `json:"officer_id"`

	// CreatedAt is the recording timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Payment model.
func (p Payment) TableName() string {
	return "payments"
}
