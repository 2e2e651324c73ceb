package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// MetricsRecorder defines the interface for recording HTTP metrics.
type MetricsRecorder interface {
	RecordHTTPRequest(method, path, status string, duration time.Duration)
	IncActiveConnections()
	DecActiveConnections()
}

// contextMetricsRecorder is implemented by recorders that attach trace
// exemplars.
type contextMetricsRecorder interface {
	RecordHTTPRequestContext(ctx context.Context, method, path, status string, duration time.Duration)
}

// Metrics returns a middleware that records HTTP metrics. The path label is
// the chi route pattern so ids do not explode cardinality.
func Metrics(recorder MetricsRecorder) func(http.Handler) http.Handler {
	ctxRecorder, withContext := recorder.(contextMetricsRecorder)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/metrics") {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			recorder.IncActiveConnections()
			defer recorder.DecActiveConnections()

			wrapped := wrapWriter(w)
			record := func() {
				path := metricPath(r)
				status := strconv.Itoa(wrapped.status)
				if withContext {
					ctxRecorder.RecordHTTPRequestContext(r.Context(), r.Method, path, status, time.Since(start))
					return
				}
				recorder.RecordHTTPRequest(r.Method, path, status, time.Since(start))
			}

			defer func() {
				if err := recover(); err != nil {
					wrapped.status = http.StatusInternalServerError
					record()
					panic(err)
				}
			}()

			next.ServeHTTP(wrapped, r)
			record()
		})
	}
}

func metricPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return normalizePath(r.URL.Path)
}

// normalizePath replaces UUIDs and numeric ids with ":id".
func normalizePath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if len(part) == 36 && strings.Count(part, "-") == 4 {
			parts[i] = ":id"
			continue
		}
		if _, err := strconv.ParseInt(part, 10, 64); err == nil {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
