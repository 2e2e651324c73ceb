package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/api/middleware"
	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/logger"
)

func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withClientIP(r *http.Request, ip string) *http.Request {
	r.RemoteAddr = ip + ":5555"
	var out *http.Request
	middleware.ClientIP("")(http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) {
		out = req
	})).ServeHTTP(httptest.NewRecorder(), r)
	return out
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var env response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env.Error
}

func testLogger() logger.Logger { return logger.Nop() }
