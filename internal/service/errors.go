package service

import "errors"

var (
	ErrValidation = errors.New("invalid data provided")
	ErrForbidden  = errors.New("operation not permitted for this actor")

	ErrWrongPassword           = errors.New("wrong username or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrDocumentTypeUnavailable = errors.New("document type is not available for request")
	ErrAttachmentRequired      = errors.New("document type requires an attachment")
	ErrAttachmentTooLarge      = errors.New("attachment exceeds the size limit")
	ErrAttachmentType          = errors.New("attachment type is not allowed")
	ErrNoAttachment            = errors.New("request has no attachment")
)
