package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withClientIP, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.Get("/api/verify/{token}", h.verify)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/requests", h.submitRequest)
		r.Get("/api/requests", h.listRequests)
		r.Get("/api/requests/{id}", h.getRequest)
		r.Get("/api/requests/{id}/attachment", h.getAttachment)
		r.Post("/api/requests/{id}/approve", h.approveRequest)
		r.Post("/api/requests/{id}/reject", h.rejectRequest)
		r.Post("/api/requests/{id}/issue", h.issueRequest)
		r.Post("/api/requests/{id}/document", h.renderDocument)

		r.Get("/api/requests/{id}/payments", h.listRequestPayments)
		r.Post("/api/requests/{id}/payments", h.recordPayment)
		r.Post("/api/payments/{id}/refund", h.refundPayment)
		r.Get("/api/payments", h.paymentHistory)

		r.Get("/api/residents/{id}", h.getResident)
		r.Get("/api/document-types", h.listDocumentTypes)
		r.Get("/api/dashboard", h.dashboard)
		r.Get("/api/audit", h.auditTrail)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
