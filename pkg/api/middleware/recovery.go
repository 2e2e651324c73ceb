package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/logger"
)

// Recovery returns a middleware that turns panics into a 500 envelope. The
// panic value and stack are logged, never returned to the caller.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.ErrorContext(r.Context(), "panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				response.Error(w, http.StatusInternalServerError, response.ErrCodeInternalServer,
					response.MsgInternal, GetRequestID(r.Context()))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
