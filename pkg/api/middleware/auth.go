package middleware

import (
	"net/http"
	"strings"

	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/auth"
	"github.com/folio/folio/pkg/logger"
)

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token. The token is
// read from the Authorization header, or from the token query parameter for
// clients that cannot set headers (browser websockets).
func RequireAuth(verifier TokenVerifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				response.Error(w, http.StatusUnauthorized, response.ErrCodeUnauthorized,
					"Not authenticated", GetRequestID(r.Context()))
				return
			}

			subject, err := verifier.Verify(raw)
			if err != nil {
				log.DebugContext(r.Context(), "bearer token rejected", "path", r.URL.Path, "error", err)
				response.HandleError(w, err, GetRequestID(r.Context()))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithSubject(r.Context(), subject)))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
