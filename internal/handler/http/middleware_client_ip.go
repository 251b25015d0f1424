package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/ncastillo/eserbisyo/internal/utils"
)

const forwardedForHeader = "X-Forwarded-For"

// withClientIP records the caller's remote address in the request context
// under [utils.ClientIPCtxKey] so the audit recorder can stamp entries with
// it. A proxy-supplied X-Forwarded-For takes precedence; its first entry is
// the original client.
func (h *Handler) withClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if ip == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClientIPCtxKey, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(forwardedForHeader); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
