package domain

// Report column names in output order
const (
	ColumnFullName          = "full_name"
	ColumnDayName           = "day_name"
	ColumnTimeOfDay         = "time_of_day"
	ColumnJobTitle          = "job_title"
	ColumnJobPrefix         = "job_prefix"
	ColumnJobSuffix         = "job_suffix"
	ColumnIsDuplicateRole   = "is_duplicate_role"
	ColumnUniqueRoleKey     = "unique_role_key"
	ColumnWorkingDays       = "working_days"
	ColumnJobTitleFrequency = "job_title_frequency"
	ColumnRoleCategory      = "role_category"
)

// ReportColumns returns the header row of the enriched report
func ReportColumns() []string {
	return []string{
		ColumnFullName,
		ColumnDayName,
		ColumnTimeOfDay,
		ColumnJobTitle,
		ColumnJobPrefix,
		ColumnJobSuffix,
		ColumnIsDuplicateRole,
		ColumnUniqueRoleKey,
		ColumnWorkingDays,
		ColumnJobTitleFrequency,
		ColumnRoleCategory,
	}
}

// Role categories assigned by the classifier
const (
	CategoryDataAnalysis    = "Data & Analysis"
	CategoryEngineering     = "Engineering"
	CategoryManagement      = "Management"
	CategoryITSupport       = "IT Support"
	CategoryCustomerSupport = "Customer Support"
	CategoryExecutive       = "Executive"
	CategoryHealthcare      = "Healthcare"
	CategoryOther           = "Other"
)
