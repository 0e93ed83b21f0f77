package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/unit-economics-go/internal/logger"
)

// Tracer трейсер сервиса; до InitTracing указывает на глобальный noop-провайдер
var Tracer trace.Tracer = otel.Tracer("unit-economics")

// ShutdownFunc останавливает провайдер и сбрасывает накопленные спаны
type ShutdownFunc func(ctx context.Context) error

// InitTracing инициализирует OpenTelemetry трейсинг.
// При пустом endpoint спаны никуда не экспортируются.
func InitTracing(ctx context.Context, serviceName, endpoint string) (ShutdownFunc, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String("1.0.0"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdktrace.SpanExporter

	if endpoint != "" {
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(endpoint),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		logger.Log.Info("OpenTelemetry настроен для OTLP экспорта", zap.String("endpoint", endpoint))
	} else {
		logger.Log.Info("OpenTelemetry настроен без экспорта (задайте OTEL_ENDPOINT)")
		exporter = &noopExporter{}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	Tracer = otel.Tracer(serviceName)

	return tp.Shutdown, nil
}

// noopExporter - пустой экспортер для локальной разработки
type noopExporter struct{}

func (e *noopExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return nil
}

func (e *noopExporter) Shutdown(ctx context.Context) error {
	return nil
}
