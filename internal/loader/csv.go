package loader

import (
	"encoding/csv"
	"os"

	"hrreport/internal/errors"
)

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open input file", err).WithContext("path", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV input", err).WithContext("path", path)
	}
	return rows, nil
}
