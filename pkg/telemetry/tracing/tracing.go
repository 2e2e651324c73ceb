// Package tracing configures the process-wide OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/folio/folio/config"
	"github.com/folio/folio/pkg/logger"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Option configures Init.
type Option func(*options)

type options struct {
	log            logger.Logger
	serviceVersion string
	environment    string
}

// WithLogger sets the logger used for exporter failures.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithServiceVersion tags spans with the build version.
func WithServiceVersion(v string) Option {
	return func(o *options) { o.serviceVersion = v }
}

// WithEnvironment tags spans with the deployment environment.
func WithEnvironment(env string) Option {
	return func(o *options) { o.environment = env }
}

var newOTLPExporter = func(ctx context.Context, cfg config.TracingConfig) (sdktrace.SpanExporter, error) {
	endpoint := normalizeEndpoint(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("tracing endpoint cannot be empty")
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTimeout(cfg.Timeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlptracegrpc.WithHeaders(cfg.Headers))
	}
	return otlptracegrpc.New(ctx, opts...)
}

// droppingExporter keeps collector outages away from request paths: failed
// batches are logged and discarded.
type droppingExporter struct {
	next     sdktrace.SpanExporter
	endpoint string
	log      logger.Logger
	dropped  atomic.Int64
}

func (e *droppingExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if err := e.next.ExportSpans(ctx, spans); err != nil {
		total := e.dropped.Add(int64(len(spans)))
		e.log.Warn("dropping spans after export failure",
			"error", err,
			"endpoint", e.endpoint,
			"span_count", len(spans),
			"dropped_total", total,
		)
	}
	return nil
}

func (e *droppingExporter) Shutdown(ctx context.Context) error {
	return e.next.Shutdown(ctx)
}

// Dropped reports how many spans were discarded.
func (e *droppingExporter) Dropped() int64 { return e.dropped.Load() }

func installPropagator() {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// Init installs a tracer provider for serviceName. When tracing is disabled
// a no-op provider is installed and the returned ShutdownFunc does nothing.
func Init(ctx context.Context, cfg config.TracingConfig, serviceName string, opts ...Option) (ShutdownFunc, error) {
	o := options{log: logger.Global()}
	for _, opt := range opts {
		opt(&o)
	}

	installPropagator()
	if !cfg.Enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	if cfg.Exporter != "" && cfg.Exporter != "otlpgrpc" {
		return nil, fmt.Errorf("unsupported tracing exporter %q", cfg.Exporter)
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("tracing endpoint cannot be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("tracing timeout must be > 0")
	}

	exp, err := newOTLPExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create tracing exporter: %w", err)
	}
	wrapped := &droppingExporter{
		next:     exp,
		endpoint: normalizeEndpoint(cfg.Endpoint),
		log:      o.log.With("component", "tracing"),
	}

	attrs := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	}
	if o.serviceVersion != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.ServiceVersion(o.serviceVersion)))
	}
	if o.environment != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.DeploymentEnvironmentName(o.environment)))
	}
	res, err := resource.New(ctx, attrs...)
	if err != nil {
		_ = wrapped.Shutdown(ctx)
		return nil, fmt.Errorf("create tracing resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(wrapped),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(selectSampler(cfg)),
	)
	otel.SetTracerProvider(tp)

	return func(shutdownCtx context.Context) error {
		flushErr := tp.ForceFlush(shutdownCtx)
		if err := tp.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown tracing provider: %w", err)
		}
		if flushErr != nil {
			return fmt.Errorf("flush tracing provider: %w", flushErr)
		}
		return nil
	}, nil
}

func selectSampler(cfg config.TracingConfig) sdktrace.Sampler {
	switch strings.ToLower(strings.TrimSpace(cfg.Sampler)) {
	case "always_on":
		return sdktrace.AlwaysSample()
	case "always_off":
		return sdktrace.NeverSample()
	case "ratio":
		return sdktrace.TraceIDRatioBased(cfg.SampleRate)
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate))
	}
}

// normalizeEndpoint strips scheme and path so "http://host:4317/v1/traces"
// becomes "host:4317".
func normalizeEndpoint(endpoint string) string {
	raw := strings.TrimSpace(endpoint)
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}
	return parsed.Host
}
