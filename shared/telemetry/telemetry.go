package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	metricSDK "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	traceSDK "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/paynow/checkout-system"
	shutdownTimeout     = 5 * time.Second
	metricsPushInterval = 30 * time.Second
)

// Config holds telemetry configuration for a service.
// Without an OTLP endpoint only the Prometheus exporter is installed.
type Config struct {
	ServiceName    string
	ServiceVersion string
	OTLPEndpoint   string
	// SampleRatio is the fraction of root traces sampled; 0 samples everything.
	SampleRatio float64
}

type Telemetry struct {
	tracer trace.Tracer
	meter  metric.Meter
	config Config

	counters   sync.Map // name -> metric.Int64Counter
	histograms sync.Map // name -> metric.Float64Histogram
}

type shutdownFunc func(context.Context) error

// InitTelemetry installs the global tracer and meter providers. The returned
// function flushes and stops every exporter.
func InitTelemetry(ctx context.Context, config Config) (*Telemetry, func(), error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	var shutdowns []shutdownFunc
	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for i := len(shutdowns) - 1; i >= 0; i-- {
			_ = shutdowns[i](ctx)
		}
	}

	traceProvider, err := newTracerProvider(ctx, res, config)
	if err != nil {
		return nil, nil, err
	}
	shutdowns = append(shutdowns, traceProvider.Shutdown)

	meterProvider, err := newMeterProvider(ctx, res, config)
	if err != nil {
		shutdown()
		return nil, nil, err
	}
	shutdowns = append(shutdowns, meterProvider.Shutdown)

	otel.SetTracerProvider(traceProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return New(config, traceProvider.Tracer(instrumentationName), meterProvider.Meter(instrumentationName)), shutdown, nil
}

// New creates a Telemetry from an existing tracer and meter
func New(config Config, tracer trace.Tracer, meter metric.Meter) *Telemetry {
	return &Telemetry{
		tracer: tracer,
		meter:  meter,
		config: config,
	}
}

func newTracerProvider(ctx context.Context, res *resource.Resource, config Config) (*traceSDK.TracerProvider, error) {
	sampler := traceSDK.AlwaysSample()
	if config.SampleRatio > 0 && config.SampleRatio < 1 {
		sampler = traceSDK.ParentBased(traceSDK.TraceIDRatioBased(config.SampleRatio))
	}

	opts := []traceSDK.TracerProviderOption{
		traceSDK.WithResource(res),
		traceSDK.WithSampler(sampler),
	}

	if config.OTLPEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(config.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, traceSDK.WithBatcher(exporter))
	}

	return traceSDK.NewTracerProvider(opts...), nil
}

func newMeterProvider(ctx context.Context, res *resource.Resource, config Config) (*metricSDK.MeterProvider, error) {
	// Scraped from /metrics through the default Prometheus registry.
	prometheusExporter, err := prometheus.New()
	if err != nil {
		return nil, err
	}

	opts := []metricSDK.Option{
		metricSDK.WithResource(res),
		metricSDK.WithReader(prometheusExporter),
	}

	if config.OTLPEndpoint != "" {
		otlpExporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(config.OTLPEndpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, metricSDK.WithReader(
			metricSDK.NewPeriodicReader(otlpExporter, metricSDK.WithInterval(metricsPushInterval)),
		))
	}

	return metricSDK.NewMeterProvider(opts...), nil
}

// StartSpan starts a new trace span
func (t *Telemetry) StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

func (t *Telemetry) GetMeter() metric.Meter {
	return t.meter
}

func (t *Telemetry) GetServiceName() string {
	return t.config.ServiceName
}

func (t *Telemetry) counter(name, description string) (metric.Int64Counter, error) {
	if c, ok := t.counters.Load(name); ok {
		return c.(metric.Int64Counter), nil
	}

	c, err := t.meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return nil, err
	}
	actual, _ := t.counters.LoadOrStore(name, c)
	return actual.(metric.Int64Counter), nil
}

func (t *Telemetry) histogram(name, description string) (metric.Float64Histogram, error) {
	if h, ok := t.histograms.Load(name); ok {
		return h.(metric.Float64Histogram), nil
	}

	h, err := t.meter.Float64Histogram(name, metric.WithDescription(description), metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	actual, _ := t.histograms.LoadOrStore(name, h)
	return actual.(metric.Float64Histogram), nil
}

type contextKey struct{}

// WithTelemetry injects telemetry into context
func WithTelemetry(ctx context.Context, tel *Telemetry) context.Context {
	return context.WithValue(ctx, contextKey{}, tel)
}

// FromContext extracts telemetry from context
func FromContext(ctx context.Context) *Telemetry {
	if tel, ok := ctx.Value(contextKey{}).(*Telemetry); ok {
		return tel
	}
	return nil
}

// StartSpan starts a span with the context's telemetry, or the global tracer
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if tel := FromContext(ctx); tel != nil {
		return tel.StartSpan(ctx, name, opts...)
	}
	return otel.Tracer(instrumentationName).Start(ctx, name, opts...)
}

func serviceName(ctx context.Context) string {
	if tel := FromContext(ctx); tel != nil {
		return tel.GetServiceName()
	}
	return "unknown"
}

// RecordCounter adds value to the named counter
func RecordCounter(ctx context.Context, name, description string, value int64, attrs ...attribute.KeyValue) {
	var (
		counter metric.Int64Counter
		err     error
	)
	if tel := FromContext(ctx); tel != nil {
		counter, err = tel.counter(name, description)
	} else {
		counter, err = otel.Meter(instrumentationName).Int64Counter(name, metric.WithDescription(description))
	}
	if err != nil {
		otel.Handle(err)
		return
	}

	counter.Add(ctx, value, metric.WithAttributes(withService(ctx, attrs)...))
}

// RecordHistogram records a duration in seconds on the named histogram
func RecordHistogram(ctx context.Context, name, description string, value float64, attrs ...attribute.KeyValue) {
	var (
		histogram metric.Float64Histogram
		err       error
	)
	if tel := FromContext(ctx); tel != nil {
		histogram, err = tel.histogram(name, description)
	} else {
		histogram, err = otel.Meter(instrumentationName).Float64Histogram(name, metric.WithDescription(description), metric.WithUnit("s"))
	}
	if err != nil {
		otel.Handle(err)
		return
	}

	histogram.Record(ctx, value, metric.WithAttributes(withService(ctx, attrs)...))
}

// RecordOperation records the outcome and duration of a service operation under
// <prefix>_total and <prefix>_duration_seconds.
func RecordOperation(ctx context.Context, prefix, operation, status string, start time.Time) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.String("status", status),
	}

	RecordCounter(ctx, prefix+"_total", "Total "+prefix+" operations", 1, attrs...)
	RecordHistogram(ctx, prefix+"_duration_seconds", "Duration of "+prefix+" operations", time.Since(start).Seconds(), attrs...)
}

func withService(ctx context.Context, attrs []attribute.KeyValue) []attribute.KeyValue {
	return append(attrs, attribute.String("service", serviceName(ctx)))
}
