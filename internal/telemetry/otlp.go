// Package telemetry exports panel transition spans over OTLP.
package telemetry

import (
	"context"
	"os"

	"dockpanel/internal/panel"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Exporter exports traces to an OTLP endpoint. A nil *Exporter is valid and
// records nothing, so callers wire it unconditionally.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Returns nil (disabled) when the endpoint is not configured.
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "dockpanel"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("dockpanel/panel"),
	}, nil
}

// RecordTransition emits one span for a panel state transition.
func (e *Exporter) RecordTransition(ctx context.Context, index int, title string, to panel.State, z int) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(ctx, "panel.transition",
		oteltrace.WithAttributes(
			attribute.Int("panel.index", index),
			attribute.String("panel.title", title),
			attribute.String("panel.state", to.String()),
			attribute.Int("panel.z", z),
		))
	span.End()
}

// Watch registers transition listeners on p so every actual transition is
// recorded. Uses a background context; spans are point events.
func (e *Exporter) Watch(p *panel.Panel, title string) {
	if e == nil {
		return
	}
	ctx := context.Background()
	p.OnMaximized(func() {
		e.RecordTransition(ctx, p.Index, title, panel.Maximized, p.Z())
	})
	p.OnMinimized(func() {
		e.RecordTransition(ctx, p.Index, title, panel.Minimized, p.Z())
	})
	p.OnRestored(func() {
		e.RecordTransition(ctx, p.Index, title, panel.Restored, p.Z())
	})
}

// Shutdown flushes pending spans.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil || e.provider == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
