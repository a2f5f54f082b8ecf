package enrichment

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"hrreport/pkg/contracts/domain"
)

// EnricherConfig holds configuration options for the Enricher.
type EnricherConfig struct {
	Rules []Rule           // Ordered classification rules; empty means DefaultRules
	Seed  int64            // Seed for synthesized day/time values; 0 means time-based
	Rand  *rand.Rand       // Explicit random source; takes precedence over Seed
	Clock func() time.Time // Source of "now"; defaults to time.Now
}

// DefaultEnricherConfig returns the configuration used by the report command
func DefaultEnricherConfig() EnricherConfig {
	return EnricherConfig{Rules: DefaultRules()}
}

// Enricher turns raw employee records into report records.
// It performs no I/O and is not safe for concurrent use because it owns a
// single random source.
type Enricher struct {
	logger     *slog.Logger
	classifier *Classifier
	rng        *rand.Rand
	clock      func() time.Time
}

// Stats summarizes one enrichment run
type Stats struct {
	Total            int `json:"total"`
	SynthesizedDays  int `json:"synthesized_days"`
	SynthesizedTimes int `json:"synthesized_times"`
	DuplicateRecords int `json:"duplicate_records"`
	DistinctTitles   int `json:"distinct_titles"`
}

// Result is the enriched table plus the title frequency aggregate it was built with
type Result struct {
	Records   []domain.EnrichedRecord
	Frequency map[string]int
	Now       time.Time
	Stats     Stats
}

// NewEnricher creates a new enricher with the given configuration
func NewEnricher(logger *slog.Logger, cfg EnricherConfig) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Enricher{
		logger:     logger,
		classifier: NewClassifier(cfg.Rules),
		rng:        rng,
		clock:      clock,
	}
}

// intermediate holds the fields that depend on a single record only
type intermediate struct {
	fullName  string
	title     string
	prefix    string
	suffix    string
	category  string
	timestamp TimestampRepair
}

// Enrich computes every derived field for records, preserving their order.
//
// The first pass builds per-record fields against one "now" baseline. The
// second pass needs the complete title sequence: it resolves frequencies and
// dup indices, then composes the unique role keys.
func (e *Enricher) Enrich(ctx context.Context, records []domain.RawRecord) *Result {
	now := e.clock()

	e.logger.InfoContext(ctx, "enriching employee records",
		slog.Int("record_count", len(records)),
		slog.Time("baseline", now))

	partial := make([]intermediate, len(records))
	titles := make([]string, len(records))
	for i, rec := range records {
		partial[i] = e.firstPass(rec, now)
		titles[i] = partial[i].title
	}

	index := ResolveDuplicates(titles)

	out := make([]domain.EnrichedRecord, len(records))
	stats := Stats{Total: len(records), DistinctTitles: index.DistinctTitles()}
	for i, p := range partial {
		isDup := index.IsDuplicate(p.title)
		dupIndex := index.DupIndex(i)

		out[i] = domain.EnrichedRecord{
			FullName:          p.fullName,
			DayName:           p.timestamp.DayName,
			TimeOfDay:         p.timestamp.TimeOfDay,
			JobTitle:          p.title,
			JobPrefix:         p.prefix,
			JobSuffix:         p.suffix,
			IsDuplicateRole:   isDup,
			DupIndex:          dupIndex,
			UniqueRoleKey:     ComposeKey(p.title, isDup, dupIndex),
			WorkingDays:       p.timestamp.WorkingDays,
			JobTitleFrequency: index.Frequency(p.title),
			RoleCategory:      p.category,
			DaySynthesized:    p.timestamp.DaySynthesized,
			TimeSynthesized:   p.timestamp.TimeSynthesized,
		}

		if isDup {
			stats.DuplicateRecords++
		}
		if p.timestamp.DaySynthesized {
			stats.SynthesizedDays++
		}
		if p.timestamp.TimeSynthesized {
			stats.SynthesizedTimes++
		}
	}

	e.logger.DebugContext(ctx, "enrichment complete",
		slog.Int("distinct_titles", stats.DistinctTitles),
		slog.Int("duplicate_records", stats.DuplicateRecords),
		slog.Int("synthesized_days", stats.SynthesizedDays),
		slog.Int("synthesized_times", stats.SynthesizedTimes))

	return &Result{
		Records:   out,
		Frequency: index.Frequencies(),
		Now:       now,
		Stats:     stats,
	}
}

func (e *Enricher) firstPass(rec domain.RawRecord, now time.Time) intermediate {
	return intermediate{
		fullName:  FullName(rec.FirstName, rec.LastName),
		title:     rec.JobTitle,
		prefix:    JobPrefix(rec.JobTitle),
		suffix:    JobSuffix(rec.JobTitle),
		category:  e.classifier.Classify(rec.JobTitle),
		timestamp: RepairTimestamp(rec.Date, now, e.rng),
	}
}
