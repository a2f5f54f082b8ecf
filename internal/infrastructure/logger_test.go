package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"hrreport/internal/config"
	apperrors "hrreport/internal/errors"
)

func decodeLines(t *testing.T, data []byte) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestInitializeLogger(t *testing.T) {
	previous := slog.Default()
	ResetLoggerForTesting()
	t.Cleanup(func() {
		ResetLoggerForTesting()
		slog.SetDefault(previous)
	})

	logFile := filepath.Join(t.TempDir(), "logs", "test.log")
	cfg := config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	}

	logger, err := InitializeLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Same(t, logger, GetLogger())

	again, err := InitializeLogger(config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	assert.Same(t, logger, again, "second initialization returns the first logger")

	logger.Info("test message", "key", "value")
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	entries := decodeLines(t, content)
	require.Len(t, entries, 1)
	assert.Equal(t, "test message", entries[0]["msg"])
	assert.Equal(t, "value", entries[0]["key"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestNewLogger_OutputModes(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		wantConsole bool
		wantFile    bool
	}{
		{name: "console", output: "console", wantConsole: true},
		{name: "file", output: "file", wantFile: true},
		{name: "both", output: "both", wantConsole: true, wantFile: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer
			logFile := filepath.Join(t.TempDir(), "run.log")

			logger, file, err := NewLogger(config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   tt.output,
				FilePath: logFile,
			}, &console)
			require.NoError(t, err)

			logger.Info("hello")
			if file != nil {
				require.NoError(t, file.Close())
			}

			assert.Equal(t, tt.wantConsole, strings.Contains(console.String(), "hello"))

			content, readErr := os.ReadFile(logFile)
			if tt.wantFile {
				require.NoError(t, readErr)
				assert.Contains(t, string(content), "hello")
			} else {
				assert.True(t, os.IsNotExist(readErr))
			}
		})
	}
}

func TestNewLogger_FileWithoutPath(t *testing.T) {
	_, _, err := NewLogger(config.LoggingConfig{Output: "file"}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log file path is empty")
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(config.LoggingConfig{Level: "info", Format: "text", Output: "console"}, &buf)
	require.NoError(t, err)

	logger.Info("plain", "records", 3)

	assert.Contains(t, buf.String(), "msg=plain")
	assert.Contains(t, buf.String(), "records=3")
}

func TestRunIDInjection(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "json", Output: "console"}, &buf)
	require.NoError(t, err)

	ctx := WithRunID(context.Background(), "run-123")
	logger.InfoContext(ctx, "with run")
	logger.Info("without run")
	logger.With("component", "loader").WithGroup("g").InfoContext(ctx, "grouped")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 3)
	assert.Equal(t, "run-123", entries[0]["run_id"])
	assert.NotContains(t, entries[1], "run_id")
	assert.Equal(t, "loader", entries[2]["component"])
	assert.NotNil(t, entries[2]["g"], "run_id lands inside the open group")
}

func TestTraceIDInjection(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "console"}, &buf)
	require.NoError(t, err)

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "step")
	logger.InfoContext(ctx, "inside span")
	span.End()

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	assert.Equal(t, span.SpanContext().TraceID().String(), entries[0]["trace_id"])
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.level))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(config.LoggingConfig{Level: "warn", Format: "json", Output: "console"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))

	ctx = EnsureRunID(ctx)
	runID := GetRunID(ctx)
	assert.Len(t, runID, 36, "uuid string form")

	assert.Equal(t, runID, GetRunID(EnsureRunID(ctx)), "existing run id is kept")
	assert.NotEqual(t, GenerateRunID(), GenerateRunID())
}

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithComponent(logger, "exporter").Info("a")
	WithError(logger, assert.AnError).Info("b")
	assert.Same(t, logger, WithError(logger, nil))

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 2)
	assert.Equal(t, "exporter", entries[0]["component"])
	assert.Equal(t, assert.AnError.Error(), entries[1]["error"])
	assert.NotContains(t, entries[1], "app_error")
}

func TestWithError_AppError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := fmt.Errorf("step write failed: %w",
		apperrors.NewStorageError("output is locked", nil).WithContext("path", "out.xlsx"))
	WithError(logger, err).Info("failed")

	entries := decodeLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	group, ok := entries[0]["app_error"].(map[string]interface{})
	require.True(t, ok, "app_error group missing: %v", entries[0])
	assert.Equal(t, "STORAGE", group["type"])
	assert.Equal(t, "output is locked", group["message"])
	assert.Equal(t, "out.xlsx", group["path"])
}
