package exporter

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// ReportWriter serializes a projected report to a destination file
type ReportWriter interface {
	Write(ctx context.Context, path string, header []string, rows [][]interface{}) error
}

// Options configures report output
type Options struct {
	SheetName     string // Worksheet name for XLSX output
	ColumnPadding int    // Characters added to the widest value of each column
	BOMPrefix     bool   // Prefix CSV output with a UTF-8 BOM for Excel
}

// DefaultOptions returns the output settings used by the report command
func DefaultOptions() Options {
	return Options{
		SheetName:     "Sheet1",
		ColumnPadding: 2,
		BOMPrefix:     true,
	}
}

// ForPath picks a writer by the destination's extension. CSV destinations
// get a CSVWriter; everything else is written as a workbook.
func ForPath(path string, logger *slog.Logger, opts Options) ReportWriter {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSVWriter(logger, opts)
	}
	return NewXLSXWriter(logger, opts)
}
