// Package parsererror defines the typed errors shared by the CSV parsers and
// the import pipeline.
package parsererror

import "fmt"

// UnsupportedFormatError is returned when an import is requested with a format
// tag no parser is registered for. It is fatal for the whole import call and
// is raised before any row is read.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported statement format: %q", e.Format)
}

// ParseError represents a failure to interpret a raw field value.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingDataError marks a row whose amount or operation date is absent or
// unparseable. The row is skipped and counted in the import stats; the batch
// continues.
type MissingDataError struct {
	Row int
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("row %d: missing data", e.Row)
}

// InvalidFormatError represents input that does not conform to the expected
// layout for a parser (wrong delimiter, missing columns).
type InvalidFormatError struct {
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid input: %s. Expected: %s", e.Msg, e.ExpectedFormat)
}
