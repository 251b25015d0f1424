package server

import (
	"context"
	"net/http"
	"time"

	"github.com/ncastillo/eserbisyo/internal/config"
	"github.com/ncastillo/eserbisyo/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal before the listener is torn down.
const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		router = http.TimeoutHandler(router, cfg.RequestTimeout, http.StatusText(http.StatusServiceUnavailable))
	}

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: router,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
