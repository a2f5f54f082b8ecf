package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// EmployeeHeader is the source header row of an employee table
var EmployeeHeader = []string{"first_name", "last_name", "job_title", "date"}

// WriteEmployeeCSV writes rows under EmployeeHeader to dir/name and returns the path
func WriteEmployeeCSV(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(EmployeeHeader, ","))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("write employee csv: %v", err)
	}
	return path
}

// WriteEmployeeXLSX writes rows under EmployeeHeader to the first sheet of
// dir/name. Cells are written with their Go types so numbers stay numeric.
func WriteEmployeeXLSX(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(EmployeeHeader))
	for i, h := range EmployeeHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("address row %d: %v", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			t.Fatalf("write row %d: %v", i+2, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}
