package models

// SubmitRequestBody is the resident-facing payload for creating a new
// document request. The attachment travels base64-encoded in the JSON body
// and is decoded and size-checked before it reaches the vault.
type SubmitRequestBody struct {
	DocumentTypeID int64  `json:"document_type_id"`
	Purpose        string `json:"purpose"`

	// AttachmentName is the original filename of the uploaded requirement.
	AttachmentName string `json:"attachment_name,omitempty"`

	// AttachmentData is the base64-encoded file content.
	AttachmentData string `json:"attachment_data,omitempty"`

	// AttachmentType is the declared content type, checked against the
	// allow-list (image/jpeg, image/png, application/pdf).
	AttachmentType string `json:"attachment_type,omitempty"`
}

// RecordPaymentBody is the treasurer-facing payload for recording a payment
// event against a request.
type RecordPaymentBody struct {
	Amount    float64       `json:"amount"`
	ReceiptNo string        `json:"receipt_no"`
	PayerName string        `json:"payer_name"`
	Mode      PaymentStatus `json:"mode"`
}

// RejectRequestBody carries the mandatory rejection reason.
type RejectRequestBody struct {
	Reason string `json:"reason"`
}

// LoginBody is the credential payload for official login.
type LoginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the issued bearer token and a display snapshot of
// the authenticated official.
type LoginResponse struct {
	Token    string `json:"token"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Position string `json:"position"`
}

// DashboardStats buckets request counts for the staff dashboard.
type DashboardStats struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Completed  int64 `json:"completed"`
}

// ErrorResponse is the uniform JSON error envelope. Kind distinguishes the
// failure class so callers never need to parse the message.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
