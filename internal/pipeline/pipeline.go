package pipeline

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"hrreport/internal/config"
	"hrreport/internal/enrichment"
	"hrreport/internal/errors"
	"hrreport/internal/exporter"
	"hrreport/internal/infrastructure"
	"hrreport/internal/loader"
)

// Option customizes a run
type Option func(*options)

type options struct {
	logger    *slog.Logger
	telemetry *infrastructure.OTelProviders
	clock     func() time.Time
	rng       *rand.Rand
	location  *time.Location
	writer    exporter.ReportWriter
}

// WithLogger sets the logger used by every step
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTelemetry records spans and metrics through providers
func WithTelemetry(providers *infrastructure.OTelProviders) Option {
	return func(o *options) { o.telemetry = providers }
}

// WithClock fixes the "now" baseline used for working days
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithRand sets the random source for synthesized days and times
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithLocation sets the zone applied to dates without an offset
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// WithWriter replaces the writer chosen from the output extension
func WithWriter(w exporter.ReportWriter) Option {
	return func(o *options) { o.writer = w }
}

// StepSummary reports the outcome of one step
type StepSummary struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Status   StepStatus             `json:"status"`
	Duration time.Duration          `json:"duration"`
	Message  string                 `json:"message,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Summary describes a finished run
type Summary struct {
	RunID      string           `json:"run_id"`
	InputFile  string           `json:"input_file"`
	OutputFile string           `json:"output_file"`
	Records    int              `json:"records"`
	Stats      enrichment.Stats `json:"stats"`
	Steps      []StepSummary    `json:"steps"`
	Duration   time.Duration    `json:"duration"`
}

// Run loads cfg.Paths.InputFile, enriches every record and writes the
// report to cfg.Paths.OutputFile. The summary is returned even when a step
// fails so callers can report which steps ran.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (*Summary, error) {
	if cfg == nil {
		return nil, errors.NewConfigError("configuration is required", nil)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = infrastructure.GetLogger()
	}

	var (
		tracer trace.Tracer = tracenoop.NewTracerProvider().Tracer(infrastructure.MeterName)
		meter  metric.Meter = metricnoop.NewMeterProvider().Meter(infrastructure.MeterName)
	)
	if o.telemetry != nil {
		tracer = o.telemetry.Tracer
		meter = o.telemetry.Meter
	}
	metrics, err := infrastructure.CreateReportMetrics(meter)
	if err != nil {
		return nil, errors.NewConfigError("failed to create report metrics", err)
	}

	ctx = infrastructure.EnsureRunID(ctx)
	state := NewRunState(infrastructure.GetRunID(ctx), cfg.Paths.InputFile, cfg.Paths.OutputFile)

	ctx, span := tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(
			attribute.String("run.id", state.ID),
			attribute.String("input.path", state.InputFile),
			attribute.String("output.path", state.OutputFile),
		),
	)
	defer span.End()

	logger := infrastructure.WithComponent(o.logger, "pipeline")
	logger.InfoContext(ctx, "report run started",
		slog.String("input_file", state.InputFile),
		slog.String("output_file", state.OutputFile))

	runner := NewRunner(logger, tracer, metrics, buildSteps(cfg, o, metrics)...)
	runErr := runner.Execute(ctx, state)

	summary := summarize(state)
	if runErr != nil {
		infrastructure.RecordError(ctx, runErr)
		logger.ErrorContext(ctx, "report run failed",
			slog.String("error", runErr.Error()),
			slog.Duration("duration", summary.Duration))
		return summary, runErr
	}

	logger.InfoContext(ctx, "report run completed",
		slog.Int("records", summary.Records),
		slog.Int("duplicate_records", summary.Stats.DuplicateRecords),
		slog.Duration("duration", summary.Duration))
	return summary, nil
}

func buildSteps(cfg *config.Config, o options, metrics *infrastructure.ReportMetrics) []Step {
	loaderCfg := loader.DefaultConfig()
	loaderCfg.MissingPlaceholder = cfg.Report.MissingPlaceholder
	if o.location != nil {
		loaderCfg.Location = o.location
	}

	enricherCfg := enrichment.DefaultEnricherConfig()
	enricherCfg.Seed = cfg.Report.Seed
	enricherCfg.Rand = o.rng
	enricherCfg.Clock = o.clock

	writer := o.writer
	if writer == nil {
		writer = exporter.ForPath(cfg.Paths.OutputFile, o.logger, exporter.Options{
			SheetName:     cfg.Report.SheetName,
			ColumnPadding: cfg.Report.ColumnPadding,
			BOMPrefix:     cfg.Report.BOMPrefix,
		})
	}

	return []Step{
		NewLoadStep(loader.New(infrastructure.WithComponent(o.logger, "loader"), loaderCfg)),
		NewEnrichStep(enrichment.NewEnricher(infrastructure.WithComponent(o.logger, "enrichment"), enricherCfg), metrics),
		NewWriteStep(writer),
	}
}

func summarize(state *RunState) *Summary {
	summary := &Summary{
		RunID:      state.ID,
		InputFile:  state.InputFile,
		OutputFile: state.OutputFile,
		Duration:   time.Since(state.StartTime),
	}
	if state.Result != nil {
		summary.Records = len(state.Result.Records)
		summary.Stats = state.Result.Stats
	} else if state.Table != nil {
		summary.Records = state.Table.Len()
	}

	for _, st := range state.Steps() {
		summary.Steps = append(summary.Steps, st.Snapshot())
	}
	return summary
}
