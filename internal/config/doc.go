// Package config provides configuration loading for the employee report tool.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, later sources
// overriding earlier ones:
//
//  1. Default values (config.Default)
//  2. A YAML file: HRREPORT_CONFIG_FILE, config.yaml or configs/config.yaml
//  3. Environment variables prefixed HRREPORT_
//  4. Command line flags for the input and output files
//
// # Environment Variables
//
//	HRREPORT_LOGGING_LEVEL=debug
//	HRREPORT_PATHS_INPUT_FILE=Employee_records.csv
//	HRREPORT_PATHS_OUTPUT_FILE=Advanced_Employee_Report.xlsx
//	HRREPORT_REPORT_SEED=42
//	HRREPORT_TELEMETRY_TRACE_EXPORTER=stdout
//
// # Validation
//
// Every section carries validator tags; Load returns a CONFIG error that
// names each failing field.
//
// # Testing
//
// Use config.Default() for a configuration that needs neither environment
// variables nor files.
package config
