// Package errors provides the typed error used across the report pipeline.
//
// Every failure that halts a run is an *AppError carrying an ErrorType:
//
//	PARSING     the source table is structurally invalid (missing columns, unreadable rows)
//	NOT_FOUND   the source file does not exist
//	STORAGE     the destination could not be written or locked
//	VALIDATION  a pre-flight file check failed
//	CONFIG      configuration could not be loaded or is invalid
//
// Callers wrap with fmt.Errorf("...: %w", err) and test with IsType or errors.As.
// Malformed dates are never errors; they are repaired by the enricher.
package errors
