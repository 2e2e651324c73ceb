package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/auth"
	"github.com/folio/folio/pkg/logger"
)

func TestRequireAuth(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour, func() time.Time { return now })
	valid, _, err := issuer.Issue("admin@example.com")
	require.NoError(t, err)

	other := auth.NewTokenIssuer("other-secret", time.Hour, func() time.Time { return now })
	forged, _, err := other.Issue("admin@example.com")
	require.NoError(t, err)

	tests := []struct {
		name        string
		header      string
		query       string
		wantStatus  int
		wantSubject string
	}{
		{"header token", "Bearer " + valid, "", http.StatusOK, "admin@example.com"},
		{"lowercase scheme", "bearer " + valid, "", http.StatusOK, "admin@example.com"},
		{"query token", "", "?token=" + valid, http.StatusOK, "admin@example.com"},
		{"missing", "", "", http.StatusUnauthorized, ""},
		{"basic scheme", "Basic abc", "", http.StatusUnauthorized, ""},
		{"wrong signature", "Bearer " + forged, "", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string
			handler := RequireAuth(issuer, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = auth.SubjectFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/messages"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantSubject, subject)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
