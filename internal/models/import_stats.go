package models

import (
	"mrichard/bourso-import/internal/logging"
)

// ImportStats tracks the outcome of one import call. It is built fresh per
// call and returned to the caller, never persisted.
type ImportStats struct {
	TotalRows    int      `json:"total_rows"`
	Imported     int      `json:"imported"`
	Duplicates   int      `json:"duplicates"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"error_details"`
}

// Merge folds the outcome of another import call into this one. Used by
// batch runs to aggregate per-file stats.
func (s *ImportStats) Merge(other ImportStats) {
	s.TotalRows += other.TotalRows
	s.Imported += other.Imported
	s.Duplicates += other.Duplicates
	s.Errors += other.Errors
	s.ErrorDetails = append(s.ErrorDetails, other.ErrorDetails...)
}

// AddError records a per-row failure and increments the error count.
func (s *ImportStats) AddError(detail string) {
	s.Errors++
	s.ErrorDetails = append(s.ErrorDetails, detail)
}

// LogSummary logs a one-line summary of the import outcome.
func (s ImportStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Import summary",
		logging.Field{Key: logging.FieldCount, Value: s.TotalRows},
		logging.Field{Key: logging.FieldImported, Value: s.Imported},
		logging.Field{Key: logging.FieldDuplicates, Value: s.Duplicates},
		logging.Field{Key: logging.FieldErrors, Value: s.Errors},
	)
}
