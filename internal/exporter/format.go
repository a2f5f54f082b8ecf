package exporter

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// formatInt formats an int64 value for report output
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatBool formats a boolean value for report output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// formatCell renders a typed cell value the way it appears in the report
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return formatBool(val)
	case int:
		return formatInt(int64(val))
	case int64:
		return formatInt(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// textWidth is the display length of s in characters
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// columnWidths returns, per column, the longest rendered value among the
// header and every row, plus padding.
func columnWidths(header []string, rows [][]interface{}, padding int) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = textWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := textWidth(formatCell(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += padding
	}
	return widths
}
