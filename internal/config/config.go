package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"hrreport/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output      string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// PathsConfig contains input, output and log locations
type PathsConfig struct {
	InputFile  string `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// ReportConfig controls how the employee report is produced
type ReportConfig struct {
	SheetName          string `yaml:"sheet_name" envconfig:"SHEET_NAME" validate:"required,max=31"`
	Seed               int64  `yaml:"seed" envconfig:"SEED"`
	MissingPlaceholder string `yaml:"missing_placeholder" envconfig:"MISSING_PLACEHOLDER"`
	ColumnPadding      int    `yaml:"column_padding" envconfig:"COLUMN_PADDING" validate:"min=0,max=50"`
	BOMPrefix          bool   `yaml:"bom_prefix" envconfig:"BOM_PREFIX"`
}

// TelemetryConfig toggles tracing and metrics for a run
type TelemetryConfig struct {
	EnableTracing bool   `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`
	EnableMetrics bool   `yaml:"enable_metrics" envconfig:"ENABLE_METRICS"`
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=stdout none"`
}

// Load builds the configuration from defaults, an optional YAML file and
// HRREPORT_* environment variables, in increasing order of precedence.
// An empty configFile falls back to HRREPORT_CONFIG_FILE, then to the
// well-known locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	explicit := configFile != ""
	if !explicit {
		configFile = os.Getenv(EnvConfigFile)
		explicit = configFile != ""
	}
	if !explicit {
		configFile = getConfigFilePath()
	}

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, err
		}
	}

	// Unset variables leave file and default values in place
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("config file").WithContext("path", filePath)
		}
		return errors.NewConfigError("failed to read config file", err).WithContext("path", filePath)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewConfigError("failed to parse config file", err).WithContext("path", filePath)
	}
	return nil
}

// Validate checks every section against its validation tags
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.NewConfigError("config validation failed", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed '%s'", fe.Namespace(), fe.Tag()))
	}
	return errors.NewConfigError("config validation failed: "+strings.Join(problems, "; "), err)
}

// ApplyOverrides replaces the configured input and output paths with any
// non-empty command line values.
func (c *Config) ApplyOverrides(inputFile, outputFile string) {
	if inputFile != "" {
		c.Paths.InputFile = inputFile
	}
	if outputFile != "" {
		c.Paths.OutputFile = outputFile
	}
}

// GetLogsDir returns the resolved logs directory path. Relative
// directories are placed next to the executable.
func (c *Config) GetLogsDir() string {
	if filepath.IsAbs(c.Paths.LogsDir) {
		return c.Paths.LogsDir
	}
	paths, err := GetPaths()
	if err != nil {
		return c.Paths.LogsDir
	}
	return ResolveAgainst(paths.ExecutableDir, c.Paths.LogsDir)
}

// GetLogFile returns the log file used when file output is enabled
func (c *Config) GetLogFile() string {
	if c.Logging.FilePath != "" {
		return c.Logging.FilePath
	}
	return filepath.Join(c.GetLogsDir(), LogFileName)
}

// getConfigFilePath returns the first config file found in the working
// directory or next to the executable
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	if paths, err := GetPaths(); err == nil {
		locations = append(locations, filepath.Join(paths.ConfigsDir, "config.yaml"))
	}

	for _, location := range locations {
		if FileExists(location) {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "console",
		},
		Paths: PathsConfig{
			InputFile:  DefaultInputFile,
			OutputFile: DefaultOutputFile,
			LogsDir:    DefaultLogsDir,
		},
		Report: ReportConfig{
			SheetName:          DefaultSheetName,
			MissingPlaceholder: DefaultMissingPlaceholder,
			ColumnPadding:      DefaultColumnPadding,
			BOMPrefix:          true,
		},
		Telemetry: TelemetryConfig{
			EnableTracing: false,
			EnableMetrics: true,
			TraceExporter: "none",
		},
	}
}
