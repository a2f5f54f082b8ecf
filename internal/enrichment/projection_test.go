package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hrreport/pkg/contracts/domain"
)

func sampleEnriched() domain.EnrichedRecord {
	return domain.EnrichedRecord{
		FullName:          "Ann Lee",
		DayName:           "Tuesday",
		TimeOfDay:         "09:41:07",
		JobTitle:          "Data Analyst",
		JobPrefix:         "Dat",
		JobSuffix:         "yst",
		IsDuplicateRole:   true,
		DupIndex:          0,
		UniqueRoleKey:     "data analyst_0",
		WorkingDays:       59,
		JobTitleFrequency: 2,
		RoleCategory:      domain.CategoryDataAnalysis,
	}
}

func TestProject(t *testing.T) {
	row := Project(sampleEnriched())

	assert.Len(t, row, len(domain.ReportColumns()))
	assert.Equal(t, []interface{}{
		"Ann Lee", "Tuesday", "09:41:07", "Data Analyst", "Dat", "yst",
		true, "data analyst_0", 59, 2, "Data & Analysis",
	}, row)
}

func TestRows_PreservesOrder(t *testing.T) {
	a := sampleEnriched()
	b := sampleEnriched()
	b.FullName = "Bob Roe"

	rows := Rows([]domain.EnrichedRecord{a, b})

	assert.Len(t, rows, 2)
	assert.Equal(t, "Ann Lee", rows[0][0])
	assert.Equal(t, "Bob Roe", rows[1][0])
}

func TestReportColumns(t *testing.T) {
	assert.Equal(t, []string{
		"full_name", "day_name", "time_of_day", "job_title", "job_prefix", "job_suffix",
		"is_duplicate_role", "unique_role_key", "working_days", "job_title_frequency", "role_category",
	}, domain.ReportColumns())
}
