// Package parser selects the parsing profile for a statement source.
package parser

import (
	"io"

	"mrichard/bourso-import/internal/models"
)

// RowParser reads a statement source and returns its raw rows in file order.
// Implementations own the format-specific details (delimiter, encoding,
// amount locale); they do not validate row content.
type RowParser interface {
	Parse(r io.Reader) ([]models.RawRow, error)
}
