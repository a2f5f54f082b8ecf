package pipeline

import (
	"context"
	"fmt"

	"hrreport/internal/enrichment"
	"hrreport/internal/errors"
	"hrreport/internal/exporter"
	"hrreport/internal/infrastructure"
	"hrreport/internal/loader"
	"hrreport/pkg/contracts/domain"
)

// Step identifiers
const (
	StepIDLoad   = "load"
	StepIDEnrich = "enrich"
	StepIDWrite  = "write"
)

// LoadStep reads the employee table from the run's input file
type LoadStep struct {
	BaseStep
	loader *loader.Loader
}

// NewLoadStep creates the load step
func NewLoadStep(l *loader.Loader) *LoadStep {
	return &LoadStep{BaseStep: NewBaseStep(StepIDLoad, "Load employee records"), loader: l}
}

// Execute loads state.InputFile into state.Table
func (s *LoadStep) Execute(ctx context.Context, state *RunState) error {
	table, err := s.loader.Load(ctx, state.InputFile)
	if err != nil {
		return err
	}
	state.Table = table

	if st := state.GetStep(s.ID()); st != nil {
		st.SetMetadata("records", table.Len())
	}
	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"input.path":    state.InputFile,
		"input.records": table.Len(),
	})
	return nil
}

// EnrichStep derives the report fields for every loaded record
type EnrichStep struct {
	BaseStep
	enricher *enrichment.Enricher
	metrics  *infrastructure.ReportMetrics
}

// NewEnrichStep creates the enrich step
func NewEnrichStep(e *enrichment.Enricher, metrics *infrastructure.ReportMetrics) *EnrichStep {
	return &EnrichStep{BaseStep: NewBaseStep(StepIDEnrich, "Enrich employee records"), enricher: e, metrics: metrics}
}

// Execute enriches state.Table into state.Result
func (s *EnrichStep) Execute(ctx context.Context, state *RunState) error {
	if state.Table == nil {
		return errors.NewValidationError("no employee table loaded", nil)
	}

	result := s.enricher.Enrich(ctx, state.Table.Records)
	state.Result = result

	stats := result.Stats
	infrastructure.RecordEnrichmentMetrics(ctx, s.metrics,
		stats.Total, stats.SynthesizedDays, stats.SynthesizedTimes, stats.DuplicateRecords)

	if st := state.GetStep(s.ID()); st != nil {
		st.SetMetadata("distinct_titles", stats.DistinctTitles)
		st.SetMetadata("duplicate_records", stats.DuplicateRecords)
	}
	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"enrich.records":           stats.Total,
		"enrich.distinct_titles":   stats.DistinctTitles,
		"enrich.duplicate_records": stats.DuplicateRecords,
		"enrich.synthesized_days":  stats.SynthesizedDays,
		"enrich.synthesized_times": stats.SynthesizedTimes,
	})
	return nil
}

// WriteStep projects the enriched records and writes the report
type WriteStep struct {
	BaseStep
	writer exporter.ReportWriter
}

// NewWriteStep creates the write step
func NewWriteStep(w exporter.ReportWriter) *WriteStep {
	return &WriteStep{BaseStep: NewBaseStep(StepIDWrite, "Write employee report"), writer: w}
}

// Execute writes state.Result to state.OutputFile
func (s *WriteStep) Execute(ctx context.Context, state *RunState) error {
	if state.Result == nil {
		return errors.NewValidationError("no enriched records to write", nil)
	}

	rows := enrichment.Rows(state.Result.Records)
	if err := s.writer.Write(ctx, state.OutputFile, domain.ReportColumns(), rows); err != nil {
		return fmt.Errorf("failed to write report %s: %w", state.OutputFile, err)
	}

	if st := state.GetStep(s.ID()); st != nil {
		st.SetMetadata("rows", len(rows))
	}
	infrastructure.SetSpanAttributes(ctx, map[string]interface{}{
		"output.path": state.OutputFile,
		"output.rows": len(rows),
	})
	return nil
}
