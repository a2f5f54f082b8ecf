package domain

import (
	"time"
)

// RawRecord is one employee row as read from the source table.
// Date is nil when the source cell was empty or could not be parsed.
type RawRecord struct {
	FirstName string     `json:"first_name" csv:"first_name"`
	LastName  string     `json:"last_name" csv:"last_name"`
	JobTitle  string     `json:"job_title" csv:"job_title"`
	Date      *time.Time `json:"date,omitempty" csv:"date"`
}

// HasDate reports whether the record carries a usable timestamp
func (r RawRecord) HasDate() bool {
	return r.Date != nil
}

// Table is the in-memory source table handed to the enricher
type Table struct {
	SourcePath string      `json:"source_path"`
	Records    []RawRecord `json:"records"`
}

// Len returns the number of records in the table
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// EnrichedRecord holds every derived field for a single RawRecord.
// Records keep the ordinal position of the raw record they were built from.
type EnrichedRecord struct {
	FullName          string `json:"full_name"`
	DayName           string `json:"day_name"`
	TimeOfDay         string `json:"time_of_day"`
	JobTitle          string `json:"job_title"`
	JobPrefix         string `json:"job_prefix"`
	JobSuffix         string `json:"job_suffix"`
	IsDuplicateRole   bool   `json:"is_duplicate_role"`
	DupIndex          int    `json:"dup_index"`
	UniqueRoleKey     string `json:"unique_role_key"`
	WorkingDays       int    `json:"working_days"`
	JobTitleFrequency int    `json:"job_title_frequency"`
	RoleCategory      string `json:"role_category"`

	// DaySynthesized and TimeSynthesized mark values that were backfilled
	// rather than read from the source date.
	DaySynthesized  bool `json:"-"`
	TimeSynthesized bool `json:"-"`
}
