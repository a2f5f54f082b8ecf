package loader

import (
	"github.com/xuri/excelize/v2"

	"hrreport/internal/errors"
)

// readXLSXRows returns the rows of the first worksheet
func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.NewParsingError("no worksheet found", nil).WithContext("path", path)
	}

	// Raw values keep dates as serial numbers so ParseDate sees one format
	// regardless of the cell's number format.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.NewParsingError("failed to read worksheet", err).
			WithContext("path", path).
			WithContext("sheet", sheetName)
	}
	return rows, nil
}
