package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"hrreport/internal/errors"
)

// Excel rejects column widths above 255 characters.
const maxColumnWidth = 255

// XLSXWriter writes the report as a single-sheet workbook with centered
// cells, visible gridlines and columns sized to their content.
type XLSXWriter struct {
	logger *slog.Logger
	opts   Options
}

// NewXLSXWriter creates a workbook writer
func NewXLSXWriter(logger *slog.Logger, opts Options) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SheetName == "" {
		opts.SheetName = DefaultOptions().SheetName
	}
	if opts.ColumnPadding < 0 {
		opts.ColumnPadding = 0
	}
	return &XLSXWriter{logger: logger, opts: opts}
}

// Write builds the workbook in memory and replaces path with it. The file
// at path is either the complete new report or left untouched.
func (w *XLSXWriter) Write(ctx context.Context, path string, header []string, rows [][]interface{}) error {
	w.logger.InfoContext(ctx, "writing XLSX report",
		slog.String("path", path),
		slog.String("sheet", w.opts.SheetName),
		slog.Int("row_count", len(rows)))

	f, err := w.build(header, rows)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	err = withOutputLock(path, func() error {
		return saveAtomically(path, func(out io.Writer) error {
			_, err := f.WriteTo(out)
			return err
		})
	})
	if err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "XLSX report written", slog.String("path", path))
	return nil
}

func (w *XLSXWriter) build(header []string, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := w.opts.SheetName

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, errors.NewStorageError("failed to name worksheet", err).WithContext("sheet", sheet)
	}

	if err := w.fill(f, sheet, header, rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := w.format(f, sheet, header, rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func (w *XLSXWriter) fill(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return errors.NewStorageError("failed to write header row", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError("failed to address data row", err).WithContext("row", i+2)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return errors.NewStorageError("failed to write data row", err).WithContext("row", i+2)
		}
	}
	return nil
}

func (w *XLSXWriter) format(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	widths := columnWidths(header, rows, w.opts.ColumnPadding)
	if len(widths) == 0 {
		return nil
	}

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return errors.NewStorageError("failed to create cell style", err)
	}

	lastCell, err := excelize.CoordinatesToCellName(len(widths), len(rows)+1)
	if err != nil {
		return errors.NewStorageError("failed to address report range", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCell, style); err != nil {
		return errors.NewStorageError("failed to apply cell style", err)
	}

	showGridLines := true
	if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{ShowGridLines: &showGridLines}); err != nil {
		return errors.NewStorageError("failed to set sheet view", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.NewStorageError("failed to address column", err)
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to size column %s", col), err)
		}
	}
	return nil
}
