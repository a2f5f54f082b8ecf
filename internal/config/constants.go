package config

// Application constants for the employee report tool
const (
	// Application Info
	AppName    = "hrreport"
	AppVersion = "1.0.0"

	// Environment
	EnvPrefix     = "HRREPORT"
	EnvConfigFile = "HRREPORT_CONFIG_FILE"

	// Default file locations
	DefaultInputFile  = "Employee_records.csv"
	DefaultOutputFile = "Advanced_Employee_Report.xlsx"
	DefaultLogsDir    = "logs"
	LogFileName       = "hrreport.log"

	// Report defaults
	DefaultSheetName          = "Sheet1"
	DefaultMissingPlaceholder = "nan"
	DefaultColumnPadding      = 2
)
