package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"hrreport/internal/infrastructure"
)

// Runner executes steps in order. The first failing step stops the run and
// every later step is marked skipped.
type Runner struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *infrastructure.ReportMetrics
	steps   []Step
}

// NewRunner creates a runner for steps
func NewRunner(logger *slog.Logger, tracer trace.Tracer, metrics *infrastructure.ReportMetrics, steps ...Step) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer(infrastructure.MeterName)
	}
	return &Runner{logger: logger, tracer: tracer, metrics: metrics, steps: steps}
}

// Execute runs every step against state
func (r *Runner) Execute(ctx context.Context, state *RunState) error {
	for _, step := range r.steps {
		state.AddStep(step)
	}

	r.logger.InfoContext(ctx, "sequential_execution_start",
		slog.Int("step_count", len(r.steps)))

	for i, step := range r.steps {
		if err := ctx.Err(); err != nil {
			r.logger.WarnContext(ctx, "run_cancelled",
				slog.String("step", step.ID()))
			r.skipRemaining(state, i, "run cancelled")
			return fmt.Errorf("run cancelled before step %s: %w", step.ID(), err)
		}

		r.logger.InfoContext(ctx, "executing_step",
			slog.String("step", step.ID()),
			slog.Int("step_number", i+1),
			slog.Int("total_steps", len(r.steps)))

		if err := r.executeStep(ctx, state, step); err != nil {
			infrastructure.WithError(r.logger, err).ErrorContext(ctx, "step_failed",
				slog.String("step", step.ID()))
			r.skipRemaining(state, i+1, fmt.Sprintf("Previous step %s failed", step.ID()))
			return fmt.Errorf("step %s failed: %w", step.ID(), err)
		}
	}

	r.logger.InfoContext(ctx, "all_steps_completed")
	return nil
}

func (r *Runner) executeStep(ctx context.Context, state *RunState, step Step) error {
	st := state.GetStep(step.ID())

	stepCtx, span := r.tracer.Start(ctx, "pipeline.step."+step.ID(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", state.ID),
			attribute.String("step.id", step.ID()),
			attribute.String("step.name", step.Name()),
		),
	)
	defer span.End()

	st.Start()
	start := time.Now()
	err := step.Execute(stepCtx, state)
	duration := time.Since(start)

	infrastructure.RecordStepMetrics(stepCtx, r.metrics, step.ID(), duration, err)

	if err != nil {
		infrastructure.RecordError(stepCtx, err)
		st.Fail(err)
		return err
	}

	st.Complete()
	r.logger.InfoContext(ctx, "step_completed",
		slog.String("step", step.ID()),
		slog.Duration("duration", duration))
	return nil
}

func (r *Runner) skipRemaining(state *RunState, from int, reason string) {
	for _, step := range r.steps[from:] {
		if st := state.GetStep(step.ID()); st != nil {
			st.Skip(reason)
		}
	}
}
