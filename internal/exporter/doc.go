// Package exporter writes the enriched employee report.
//
// XLSXWriter produces a single worksheet: a header row followed by one row
// per record, every used cell centered horizontally and vertically,
// gridlines visible, and each column as wide as its longest rendered value
// plus two characters. CSVWriter writes the same rows as text. ForPath
// chooses between them by the destination's extension.
//
// Both writers lock the destination (path + ".lock") and write through a
// temporary file that is renamed into place, so a failed run never leaves a
// truncated report behind.
//
// Example usage:
//
//	w := exporter.ForPath("report.xlsx", logger, exporter.DefaultOptions())
//	err := w.Write(ctx, "report.xlsx", domain.ReportColumns(), enrichment.Rows(records))
package exporter
