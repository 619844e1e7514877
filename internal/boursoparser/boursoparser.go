// Package boursoparser parses Boursorama CSV exports into raw statement rows.
// The format is semicolon-delimited, quoted, UTF-8 with an optional leading
// BOM; amounts use a decimal comma with normal or non-breaking spaces as
// thousands separators; operation dates are YYYY-MM-DD.
package boursoparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
)

// boursoCSVRow maps one line of a Boursorama export.
type boursoCSVRow struct {
	DateOp         string `csv:"dateOp"`
	DateVal        string `csv:"dateVal"`
	Label          string `csv:"label"`
	Category       string `csv:"category"`
	CategoryParent string `csv:"categoryParent"`
	SupplierFound  string `csv:"supplierFound"`
	Amount         string `csv:"amount"`
}

// Parser parses Boursorama CSV exports.
type Parser struct {
	logger logging.Logger
}

// New creates a Boursorama CSV parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{logger: logger}
}

// Parse reads a Boursorama CSV export and returns its rows in file order.
// Row content is not validated here; rows with missing amounts or dates are
// the importer's problem.
func (p *Parser) Parse(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.Comma = ';'
	reader.LazyQuotes = true

	var csvRows []*boursoCSVRow
	if err := gocsv.UnmarshalCSV(reader, &csvRows); err != nil {
		p.logger.WithError(err).Error("Failed to parse Boursorama CSV")
		return nil, fmt.Errorf("error parsing Boursorama CSV: %w", err)
	}

	rows := make([]models.RawRow, 0, len(csvRows))
	for _, row := range csvRows {
		rows = append(rows, models.RawRow{
			OperationDate:  strings.TrimSpace(row.DateOp),
			ValueDate:      strings.TrimSpace(row.DateVal),
			Label:          row.Label,
			BankCategory:   strings.TrimSpace(row.Category),
			ParentCategory: strings.TrimSpace(row.CategoryParent),
			Merchant:       strings.TrimSpace(row.SupplierFound),
			Amount:         StandardizeAmount(row.Amount),
		})
	}

	p.logger.Info("Parsed Boursorama CSV",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// StandardizeAmount rewrites a locale-formatted amount into a plain
// fixed-point string: the decimal comma becomes a dot and thousands
// separators (normal and non-breaking spaces) are stripped. An empty input
// stays empty.
func StandardizeAmount(amount string) string {
	replacer := strings.NewReplacer(
		",", ".",
		" ", "",
		"\u00a0", "", // non-breaking space
		"\u202f", "", // narrow non-breaking space
	)
	return replacer.Replace(strings.TrimSpace(amount))
}

// skipBOM returns a reader positioned past a leading UTF-8 byte-order mark,
// if any. Boursorama exports carry one.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	ch, _, err := br.ReadRune()
	if err != nil {
		// Let the CSV reader surface the real error.
		return br
	}
	if ch != '\ufeff' {
		_ = br.UnreadRune()
	}
	return br
}
