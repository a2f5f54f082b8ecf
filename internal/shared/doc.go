// Package shared holds helpers used by more than one package.
//
// testutil provides a capturing slog handler and employee table fixtures
// (CSV and XLSX) for package tests.
package shared
