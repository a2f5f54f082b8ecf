package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"hrreport/internal/config"
	apperrors "hrreport/internal/errors"
)

const (
	ServiceName    = "hrreport"
	ServiceVersion = config.AppVersion
	MeterName      = "hrreport"
)

// OTelConfig holds OpenTelemetry configuration
type OTelConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	TraceExporter  string    // "stdout", "none"
	TraceWriter    io.Writer // Destination of the stdout exporter; defaults to os.Stdout
	EnableMetrics  bool
	EnableTracing  bool
	SampleRatio    float64
}

// OTelProviders holds the OpenTelemetry providers for one run. Disabled
// signals are backed by no-op implementations so callers never nil-check.
type OTelProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	MetricReader   *sdkmetric.ManualReader
	Tracer         trace.Tracer
	Meter          metric.Meter
	Logger         *slog.Logger
}

// DefaultOTelConfig returns a default OpenTelemetry configuration
func DefaultOTelConfig() *OTelConfig {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	return &OTelConfig{
		ServiceName:    ServiceName,
		ServiceVersion: ServiceVersion,
		Environment:    env,
		TraceExporter:  "none",
		EnableMetrics:  true,
		EnableTracing:  false,
		SampleRatio:    1.0,
	}
}

// OTelConfigFrom maps the telemetry section of the application config
func OTelConfigFrom(cfg config.TelemetryConfig) *OTelConfig {
	otelCfg := DefaultOTelConfig()
	otelCfg.EnableTracing = cfg.EnableTracing
	otelCfg.EnableMetrics = cfg.EnableMetrics
	otelCfg.TraceExporter = cfg.TraceExporter
	return otelCfg
}

// InitializeOTel initializes tracing and metrics for a report run
func InitializeOTel(cfg *OTelConfig, logger *slog.Logger) (*OTelProviders, error) {
	if cfg == nil {
		cfg = DefaultOTelConfig()
	}
	if logger == nil {
		logger = GetLogger()
	}

	ctx := context.Background()

	logger.DebugContext(ctx, "Initializing OpenTelemetry",
		slog.String("service", cfg.ServiceName),
		slog.String("version", cfg.ServiceVersion),
		slog.String("environment", cfg.Environment),
		slog.Bool("tracing_enabled", cfg.EnableTracing),
		slog.Bool("metrics_enabled", cfg.EnableMetrics))

	res := createResource(cfg)

	providers := &OTelProviders{
		Tracer: tracenoop.NewTracerProvider().Tracer(MeterName),
		Meter:  metricnoop.NewMeterProvider().Meter(MeterName),
		Logger: logger,
	}

	if cfg.EnableTracing {
		if err := initializeTracing(ctx, cfg, res, providers); err != nil {
			return nil, fmt.Errorf("failed to initialize tracing: %w", err)
		}
	}

	if cfg.EnableMetrics {
		initializeMetrics(ctx, cfg, res, providers)
	}

	return providers, nil
}

// createResource creates the OpenTelemetry resource
func createResource(cfg *OTelConfig) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
		attribute.String("service.instance.id", generateInstanceID()),
	)
}

// initializeTracing sets up OpenTelemetry tracing
func initializeTracing(ctx context.Context, cfg *OTelConfig, res *resource.Resource, providers *OTelProviders) error {
	var exporter sdktrace.SpanExporter
	var err error

	switch cfg.TraceExporter {
	case "stdout":
		opts := []stdouttrace.Option{stdouttrace.WithPrettyPrint()}
		if cfg.TraceWriter != nil {
			opts = append(opts, stdouttrace.WithWriter(cfg.TraceWriter))
		}
		exporter, err = stdouttrace.New(opts...)
	case "none", "":
		// No exporter - tracing disabled
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(cfg.SampleRatio)),
	)

	providers.TracerProvider = tp
	providers.Tracer = tp.Tracer(MeterName, trace.WithInstrumentationVersion(cfg.ServiceVersion))

	otel.SetTracerProvider(tp)

	providers.Logger.DebugContext(ctx, "Tracing initialized",
		slog.String("exporter", cfg.TraceExporter),
		slog.Float64("sample_ratio", cfg.SampleRatio))

	return nil
}

// initializeMetrics sets up a meter provider backed by a manual reader.
// CollectTotals reads it once the pipeline finishes.
func initializeMetrics(ctx context.Context, cfg *OTelConfig, res *resource.Resource, providers *OTelProviders) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)

	providers.MetricReader = reader
	providers.MeterProvider = mp
	providers.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(cfg.ServiceVersion))

	otel.SetMeterProvider(mp)

	providers.Logger.DebugContext(ctx, "Metrics initialized", slog.String("reader", "manual"))
}

// Report instrument names
const (
	MetricRecordsEnriched  = "hrreport.records.enriched"
	MetricDatesSynthesized = "hrreport.dates.synthesized"
	MetricRolesDuplicate   = "hrreport.roles.duplicate"
	MetricStepDuration     = "hrreport.step.duration"
	MetricRunErrors        = "hrreport.run.errors"
)

// ReportMetrics holds the counters recorded for a report run
type ReportMetrics struct {
	RecordsEnriched  metric.Int64Counter
	DatesSynthesized metric.Int64Counter
	RolesDuplicate   metric.Int64Counter
	StepDuration     metric.Float64Histogram
	RunErrors        metric.Int64Counter
}

// CreateReportMetrics creates the report run instruments on meter
func CreateReportMetrics(meter metric.Meter) (*ReportMetrics, error) {
	recordsEnriched, err := meter.Int64Counter(
		MetricRecordsEnriched,
		metric.WithDescription("Number of employee records enriched"),
	)
	if err != nil {
		return nil, err
	}

	datesSynthesized, err := meter.Int64Counter(
		MetricDatesSynthesized,
		metric.WithDescription("Number of day or time values synthesized for missing or midnight dates"),
	)
	if err != nil {
		return nil, err
	}

	rolesDuplicate, err := meter.Int64Counter(
		MetricRolesDuplicate,
		metric.WithDescription("Number of records whose job title occurs more than once"),
	)
	if err != nil {
		return nil, err
	}

	stepDuration, err := meter.Float64Histogram(
		MetricStepDuration,
		metric.WithDescription("Pipeline step duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	runErrors, err := meter.Int64Counter(
		MetricRunErrors,
		metric.WithDescription("Number of failed pipeline steps"),
	)
	if err != nil {
		return nil, err
	}

	return &ReportMetrics{
		RecordsEnriched:  recordsEnriched,
		DatesSynthesized: datesSynthesized,
		RolesDuplicate:   rolesDuplicate,
		StepDuration:     stepDuration,
		RunErrors:        runErrors,
	}, nil
}

// RecordEnrichmentMetrics records the outcome of the enrich step
func RecordEnrichmentMetrics(ctx context.Context, metrics *ReportMetrics, enriched, synthesizedDays, synthesizedTimes, duplicates int) {
	if metrics == nil {
		return
	}

	metrics.RecordsEnriched.Add(ctx, int64(enriched))
	metrics.DatesSynthesized.Add(ctx, int64(synthesizedDays), metric.WithAttributes(attribute.String("part", "day")))
	metrics.DatesSynthesized.Add(ctx, int64(synthesizedTimes), metric.WithAttributes(attribute.String("part", "time")))
	metrics.RolesDuplicate.Add(ctx, int64(duplicates))
}

// RecordStepMetrics records metrics for one pipeline step
func RecordStepMetrics(ctx context.Context, metrics *ReportMetrics, step string, duration time.Duration, err error) {
	if metrics == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.StepDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("step.id", step),
		attribute.String("status", status),
	))

	if err != nil {
		errType := string(apperrors.TypeOf(err))
		if errType == "" {
			errType = fmt.Sprintf("%T", err)
		}
		metrics.RunErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("step.id", step),
			attribute.String("error.type", errType),
		))
	}
}

// RunTotals is the sum of every report instrument over a run
type RunTotals struct {
	RecordsEnriched  int64
	DatesSynthesized int64
	RolesDuplicate   int64
	RunErrors        int64
	StepSeconds      float64
}

// LogAttrs returns the totals as log attributes
func (t RunTotals) LogAttrs() []any {
	return []any{
		slog.Int64("records_enriched", t.RecordsEnriched),
		slog.Int64("dates_synthesized", t.DatesSynthesized),
		slog.Int64("roles_duplicate", t.RolesDuplicate),
		slog.Int64("run_errors", t.RunErrors),
		slog.Float64("step_seconds", t.StepSeconds),
	}
}

// CollectTotals reads the manual reader and sums each report instrument
// across its attribute sets. It returns nil when metrics are disabled.
func (p *OTelProviders) CollectTotals(ctx context.Context) (*RunTotals, error) {
	if p == nil || p.MetricReader == nil {
		return nil, nil
	}

	var rm metricdata.ResourceMetrics
	if err := p.MetricReader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("failed to collect metrics: %w", err)
	}

	totals := &RunTotals{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				var sum int64
				for _, dp := range data.DataPoints {
					sum += dp.Value
				}
				switch m.Name {
				case MetricRecordsEnriched:
					totals.RecordsEnriched = sum
				case MetricDatesSynthesized:
					totals.DatesSynthesized = sum
				case MetricRolesDuplicate:
					totals.RolesDuplicate = sum
				case MetricRunErrors:
					totals.RunErrors = sum
				}
			case metricdata.Histogram[float64]:
				if m.Name != MetricStepDuration {
					continue
				}
				for _, dp := range data.DataPoints {
					totals.StepSeconds += dp.Sum
				}
			}
		}
	}
	return totals, nil
}

// Shutdown flushes and shuts down the OpenTelemetry providers
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	var errs []error

	if p.TracerProvider != nil {
		if err := p.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if p.MeterProvider != nil {
		if err := p.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("opentelemetry shutdown errors: %v", errs)
	}

	p.Logger.DebugContext(ctx, "OpenTelemetry shutdown complete")
	return nil
}

// generateInstanceID generates a unique instance identifier
func generateInstanceID() string {
	hostname, _ := os.Hostname()
	return fmt.Sprintf("%s-%d", hostname, time.Now().Unix())
}

// TraceIDFromContext extracts trace ID from context for logging correlation
func TraceIDFromContext(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		return spanCtx.TraceID().String()
	}
	return ""
}

// RecordError records an error on the current span
func RecordError(ctx context.Context, err error, options ...trace.EventOption) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.RecordError(err, options...)
	span.SetStatus(codes.Error, err.Error())
}

// SetSpanAttributes sets attributes on the current span
func SetSpanAttributes(ctx context.Context, attributes map[string]interface{}) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	for k, v := range attributes {
		switch val := v.(type) {
		case string:
			span.SetAttributes(attribute.String(k, val))
		case int:
			span.SetAttributes(attribute.Int(k, val))
		case int64:
			span.SetAttributes(attribute.Int64(k, val))
		case float64:
			span.SetAttributes(attribute.Float64(k, val))
		case bool:
			span.SetAttributes(attribute.Bool(k, val))
		default:
			span.SetAttributes(attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}
}
