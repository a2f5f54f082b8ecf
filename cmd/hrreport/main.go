package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"hrreport/internal/config"
	apperrors "hrreport/internal/errors"
	"hrreport/internal/infrastructure"
	"hrreport/internal/pipeline"
	"hrreport/internal/validation"
)

// Set at build time via -ldflags
var (
	Version   = config.AppVersion
	BuildTime = "dev"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes one report and returns the process exit code
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	inFile := fs.String("in", "", "employee table to read (.csv or .xlsx, defaults to "+config.DefaultInputFile+")")
	outFile := fs.String("out", "", "report to write (.xlsx or .csv, defaults to "+config.DefaultOutputFile+")")
	configFile := fs.String("config", "", "YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}
	cfg.ApplyOverrides(*inFile, *outFile)

	if cfg.Logging.Output != "console" && cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = cfg.GetLogFile()
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer func() { _ = infrastructure.CloseLogFile() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = infrastructure.EnsureRunID(ctx)

	logger.InfoContext(ctx, "Starting employee report",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("input_file", cfg.Paths.InputFile),
		slog.String("output_file", cfg.Paths.OutputFile))

	providers, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize telemetry", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(cfg.Paths.InputFile); err != nil {
		logger.ErrorContext(ctx, "Invalid input file", slog.String("error", err.Error()))
		return 1
	}
	if err := validator.ValidateOutputFile(cfg.Paths.OutputFile); err != nil {
		logger.ErrorContext(ctx, "Invalid output file", slog.String("error", err.Error()))
		return 1
	}

	summary, err := pipeline.Run(ctx, cfg,
		pipeline.WithLogger(logger),
		pipeline.WithTelemetry(providers))
	logRunMetrics(ctx, logger, providers)
	if err != nil {
		logger.ErrorContext(ctx, "Employee report failed",
			slog.String("error", err.Error()),
			slog.String("error_type", string(apperrors.TypeOf(err))))
		return 1
	}

	logger.InfoContext(ctx, "Employee report written",
		slog.String("output_file", summary.OutputFile),
		slog.Int("records", summary.Records),
		slog.Int("distinct_titles", summary.Stats.DistinctTitles),
		slog.Int("duplicate_records", summary.Stats.DuplicateRecords),
		slog.Duration("duration", summary.Duration))
	return 0
}

// logRunMetrics reports the run's metric totals before the providers shut down
func logRunMetrics(ctx context.Context, logger *slog.Logger, providers *infrastructure.OTelProviders) {
	totals, err := providers.CollectTotals(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to collect run metrics", slog.String("error", err.Error()))
		return
	}
	if totals == nil {
		return
	}
	logger.InfoContext(ctx, "Run metrics", totals.LogAttrs()...)
}
