package enrichment

import "hrreport/pkg/contracts/domain"

// Project returns the report row for rec as typed cell values, in the
// order given by domain.ReportColumns.
func Project(rec domain.EnrichedRecord) []interface{} {
	return []interface{}{
		rec.FullName,
		rec.DayName,
		rec.TimeOfDay,
		rec.JobTitle,
		rec.JobPrefix,
		rec.JobSuffix,
		rec.IsDuplicateRole,
		rec.UniqueRoleKey,
		rec.WorkingDays,
		rec.JobTitleFrequency,
		rec.RoleCategory,
	}
}

// Rows projects every record, preserving order
func Rows(records []domain.EnrichedRecord) [][]interface{} {
	rows := make([][]interface{}, len(records))
	for i, rec := range records {
		rows[i] = Project(rec)
	}
	return rows
}
