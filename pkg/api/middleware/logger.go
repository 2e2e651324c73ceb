// Package middleware provides HTTP middleware components.
package middleware

import (
	"net/http"
	"time"

	"github.com/folio/folio/pkg/logger"
)

// Logger returns a middleware that writes one access log line per request.
// 5xx responses log at error level, 4xx at warn.
func Logger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapWriter(w)

			next.ServeHTTP(wrapped, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"size", wrapped.size,
				"client_ip", GetClientIP(r.Context()),
				"user_agent", r.UserAgent(),
			}
			switch {
			case wrapped.status >= http.StatusInternalServerError:
				log.ErrorContext(r.Context(), "HTTP request", args...)
			case wrapped.status >= http.StatusBadRequest:
				log.WarnContext(r.Context(), "HTTP request", args...)
			default:
				log.InfoContext(r.Context(), "HTTP request", args...)
			}
		})
	}
}
