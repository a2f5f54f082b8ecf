// Package loader reads the raw employee table.
//
// Sources are CSV (encoding/csv) or XLSX (first worksheet, via excelize).
// The header row must name first_name, last_name, job_title and date; header
// matching ignores case and surrounding space. A missing column is a PARSING
// error and stops the run before anything is written.
//
// Cell contents are coerced rather than validated: empty name and title
// cells become the missing placeholder ("nan" by default) and dates that do
// not parse become absent.
package loader
