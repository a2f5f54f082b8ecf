package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hrreport/internal/errors"
	"hrreport/pkg/contracts/domain"
)

// Required source columns
const (
	ColumnFirstName = "first_name"
	ColumnLastName  = "last_name"
	ColumnJobTitle  = "job_title"
	ColumnDate      = "date"
)

// DefaultMissingPlaceholder is the text substituted for missing name and title cells
const DefaultMissingPlaceholder = "nan"

// missingTokens are cell texts read as missing values, matched exactly.
// This is the default NA set of the pandas readers the report format comes from.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether a cell's text stands for a missing value
func IsMissing(value string) bool {
	_, ok := missingTokens[value]
	return ok
}

var requiredColumns = []string{ColumnFirstName, ColumnLastName, ColumnJobTitle, ColumnDate}

// Config holds loader options
type Config struct {
	MissingPlaceholder string         // Text for empty name/title cells
	Location           *time.Location // Zone for dates without an offset; defaults to time.Local
}

// DefaultConfig returns the loader defaults
func DefaultConfig() Config {
	return Config{
		MissingPlaceholder: DefaultMissingPlaceholder,
		Location:           time.Local,
	}
}

// Loader reads employee tables from CSV or XLSX files
type Loader struct {
	logger *slog.Logger
	cfg    Config
}

// New creates a loader
func New(logger *slog.Logger, cfg Config) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Loader{logger: logger, cfg: cfg}
}

// Load reads the table at path. The format is chosen by file extension:
// .xlsx is read with excelize, everything else as comma separated text.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Table, error) {
	l.logger.InfoContext(ctx, "loading employee table", slog.String("path", path))

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("input file").WithContext("path", path)
		}
		return nil, errors.NewStorageError("failed to stat input file", err).WithContext("path", path)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSXRows(path)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	records, err := l.parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	l.logger.InfoContext(ctx, "employee table loaded",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	return &domain.Table{SourcePath: path, Records: records}, nil
}

// parseRows maps the header row to the required columns and converts every
// following non-empty row. Missing columns are fatal; bad cells are not.
// Name and title cells are kept verbatim, whitespace included, since
// duplicate titles are matched on the exact text.
func (l *Loader) parseRows(rows [][]string) ([]domain.RawRecord, error) {
	if len(rows) == 0 {
		return nil, errors.NewParsingError("input table is empty", nil)
	}

	headerIndex := map[string]int{}
	for i, header := range rows[0] {
		name := normalizeHeader(header)
		if _, exists := headerIndex[name]; !exists {
			headerIndex[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := headerIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewParsingError(
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")), nil).
			WithContext("columns", missing)
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		records = append(records, domain.RawRecord{
			FirstName: l.textOrPlaceholder(cellValue(row, headerIndex[ColumnFirstName])),
			LastName:  l.textOrPlaceholder(cellValue(row, headerIndex[ColumnLastName])),
			JobTitle:  l.textOrPlaceholder(cellValue(row, headerIndex[ColumnJobTitle])),
			Date:      l.parseDateCell(cellValue(row, headerIndex[ColumnDate])),
		})
	}
	return records, nil
}

func (l *Loader) textOrPlaceholder(value string) string {
	if IsMissing(value) {
		return l.cfg.MissingPlaceholder
	}
	return value
}

func (l *Loader) parseDateCell(value string) *time.Time {
	value = strings.TrimSpace(value)
	if IsMissing(value) {
		return nil
	}
	return ParseDate(value, l.cfg.Location)
}

func normalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
