package config

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/apexview/f1telemetry-service-go/log"
	"github.com/apexview/f1telemetry-service-go/version"
)

// Telemetry bundles the configured OpenTelemetry providers.
type Telemetry struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// SetupTelemetry configures global tracer and meter providers. With a
// TelemetryEndpoint set the OTLP gRPC exporters are used, otherwise
// everything goes to stdout (debugging setups).
func SetupTelemetry(ctx context.Context) (*Telemetry, error) {
	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceName("f1telemetry-service"),
			semconv.ServiceVersion(version.Version),
		))
	if err != nil {
		return nil, err
	}

	var traceOpt sdktrace.TracerProviderOption
	var reader sdkmetric.Reader
	if TelemetryEndpoint != "" {
		traceExp, expErr := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(TelemetryEndpoint),
			otlptracegrpc.WithInsecure())
		if expErr != nil {
			return nil, expErr
		}
		metricExp, expErr := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(TelemetryEndpoint),
			otlpmetricgrpc.WithInsecure())
		if expErr != nil {
			return nil, expErr
		}
		traceOpt = sdktrace.WithBatcher(traceExp)
		reader = sdkmetric.NewPeriodicReader(metricExp)
	} else {
		traceExp, expErr := stdouttrace.New()
		if expErr != nil {
			return nil, expErr
		}
		metricExp, expErr := stdoutmetric.New()
		if expErr != nil {
			return nil, expErr
		}
		traceOpt = sdktrace.WithBatcher(traceExp)
		reader = sdkmetric.NewPeriodicReader(metricExp)
	}

	tp := sdktrace.NewTracerProvider(traceOpt, sdktrace.WithResource(res))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	return &Telemetry{tracerProvider: tp, meterProvider: mp}, nil
}

func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.tracerProvider.Shutdown(ctx); err != nil {
		log.Warn("could not shutdown tracer provider", log.ErrorField(err))
	}
	if err := t.meterProvider.Shutdown(ctx); err != nil {
		log.Warn("could not shutdown meter provider", log.ErrorField(err))
	}
}
