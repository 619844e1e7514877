package parser

import (
	"mrichard/bourso-import/internal/boursoparser"
	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/parsererror"
)

// Format identifies a supported statement format.
type Format string

// Boursorama is the only source format currently handled.
const Boursorama Format = "boursorama"

// Get returns the parser for the given format tag. An unrecognized tag fails
// with UnsupportedFormatError before any row is read.
func Get(format Format, logger logging.Logger) (RowParser, error) {
	switch format {
	case Boursorama:
		return boursoparser.New(logger), nil
	default:
		return nil, &parsererror.UnsupportedFormatError{Format: string(format)}
	}
}
