package exporter

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
)

// CSVWriter writes the report as comma separated text
type CSVWriter struct {
	logger *slog.Logger
	opts   Options
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger, opts Options) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger, opts: opts}
}

// Write renders every cell as text and replaces path with the result
func (w *CSVWriter) Write(ctx context.Context, path string, header []string, rows [][]interface{}) error {
	w.logger.InfoContext(ctx, "writing CSV report",
		slog.String("path", path),
		slog.Int("record_count", len(rows)))

	return withOutputLock(path, func() error {
		return saveAtomically(path, func(out io.Writer) error {
			return w.encode(out, header, rows)
		})
	})
}

func (w *CSVWriter) encode(out io.Writer, header []string, rows [][]interface{}) error {
	// Write BOM if requested (helps Excel recognize UTF-8)
	if w.opts.BOMPrefix {
		if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return err
		}
	}

	writer := csv.NewWriter(out)
	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return err
		}
	}

	record := make([]string, 0, len(header))
	for _, row := range rows {
		record = record[:0]
		for _, cell := range row {
			record = append(record, formatCell(cell))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
