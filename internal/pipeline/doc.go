// Package pipeline runs the employee report as three ordered steps:
// load the source table, enrich every record, write the report.
//
// Each step gets a StepState, an OpenTelemetry span and a duration metric.
// A failing step stops the run; later steps are marked skipped and the
// Summary still describes what happened.
//
//	summary, err := pipeline.Run(ctx, cfg,
//	    pipeline.WithLogger(logger),
//	    pipeline.WithTelemetry(providers))
package pipeline
