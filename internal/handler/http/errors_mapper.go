package http

import (
	"errors"
	"net/http"

	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/service"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/internal/utils"
	"github.com/ncastillo/eserbisyo/internal/vault"
	"github.com/ncastillo/eserbisyo/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrDocumentTypeUnavailable: http.StatusConflict,
	service.ErrAttachmentRequired:      http.StatusBadRequest,
	service.ErrAttachmentTooLarge:      http.StatusRequestEntityTooLarge,
	service.ErrAttachmentType:          http.StatusUnsupportedMediaType,
	service.ErrNoAttachment:            http.StatusNotFound,

	store.ErrRequestNotFound:        http.StatusNotFound,
	store.ErrPaymentNotFound:        http.StatusNotFound,
	store.ErrDocumentTypeNotFound:   http.StatusNotFound,
	store.ErrOfficialNotFound:       http.StatusNotFound,
	store.ErrResidentNotFound:       http.StatusNotFound,
	store.ErrDuplicateActiveRequest: http.StatusConflict,
	store.ErrDuplicateReference:     http.StatusConflict,
	store.ErrDuplicateReceipt:       http.StatusConflict,
	store.ErrInvalidTransition:      http.StatusConflict,

	vault.ErrNotFound:    http.StatusNotFound,
	vault.ErrInvalidName: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorKindMap labels the failure class carried in the JSON error envelope.
var errorKindMap = map[int]string{
	http.StatusBadRequest:            "validation",
	http.StatusUnauthorized:          "unauthorized",
	http.StatusForbidden:             "forbidden",
	http.StatusNotFound:              "not_found",
	http.StatusConflict:              "conflict",
	http.StatusRequestEntityTooLarge: "too_large",
	http.StatusUnsupportedMediaType:  "unsupported_type",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps a service or store error onto the uniform JSON error
// envelope. Internal failures are logged with the original error but never
// leak their message to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	kind, ok := errorKindMap[status]
	if !ok {
		kind = "internal"
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Kind: kind, Message: message}, status)
}
