// Package importer drives the import pipeline: parse the statement source,
// normalize each row into its canonical key, derive the duplicate-detection
// token, skip rows already persisted, categorize the rest and insert them.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mrichard/bourso-import/internal/categorizer"
	"mrichard/bourso-import/internal/dateutils"
	"mrichard/bourso-import/internal/identity"
	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
	"mrichard/bourso-import/internal/normalize"
	"mrichard/bourso-import/internal/parser"
	"mrichard/bourso-import/internal/store"
)

// Importer orchestrates one import call. It owns no shared mutable state;
// the per-batch occurrence counters live on the stack of ImportBatch, so
// concurrent calls for different sources never interfere. Two concurrent
// imports of overlapping data for the same account are serialized by the
// store's unique-token constraint: the loser of an insert race observes
// store.ErrDuplicateToken and counts a duplicate.
type Importer struct {
	transactions store.TransactionStore
	accounts     store.AccountStore
	categorizer  *categorizer.Categorizer
	logger       logging.Logger
}

// New creates an importer over the given stores and categorizer.
func New(transactions store.TransactionStore, accounts store.AccountStore, cat *categorizer.Categorizer, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{
		transactions: transactions,
		accounts:     accounts,
		categorizer:  cat,
		logger:       logger,
	}
}

// ImportBatch imports a statement source into an account and returns the
// accumulated stats.
//
// Only three failures are fatal for the whole call: an unrecognized format
// tag (raised before any row is read), an unreadable source, and an unknown
// account. Everything that goes wrong on an individual row is recorded in
// the stats with the row's 1-based position and the batch continues.
func (i *Importer) ImportBatch(ctx context.Context, r io.Reader, accountID int64, format parser.Format) (models.ImportStats, error) {
	p, err := parser.Get(format, i.logger)
	if err != nil {
		return models.ImportStats{}, err
	}

	if _, err := i.accounts.FindAccount(ctx, accountID); err != nil {
		return models.ImportStats{}, fmt.Errorf("account %d: %w", accountID, err)
	}

	rows, err := p.Parse(r)
	if err != nil {
		return models.ImportStats{}, err
	}

	log := i.logger.WithFields(
		logging.Field{Key: logging.FieldAccount, Value: accountID},
		logging.Field{Key: logging.FieldFormat, Value: string(format)},
	)
	log.Info("Starting import",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	stats := models.ImportStats{TotalRows: len(rows)}

	// Occurrence counters are scoped to this batch. Repeated identical rows
	// within one file get occurrence 0, 1, 2... and therefore distinct
	// tokens; across files the counter restarts, which reproduces the
	// stored tokens and makes re-imports idempotent.
	occurrences := make(map[string]int)

	for idx, row := range rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		rowNum := idx + 1 // 1-based for error reporting

		amount, date, ok := parseRequiredFields(row)
		if !ok {
			stats.AddError(fmt.Sprintf("row %d: missing data", rowNum))
			continue
		}

		key := normalize.Key(accountID, row.OperationDate, amount, row.Label)
		occurrence := occurrences[key]
		token := identity.Token(key, occurrence)
		occurrences[key] = occurrence + 1

		if err := i.importRow(ctx, row, accountID, amount, date, token, &stats); err != nil {
			stats.AddError(fmt.Sprintf("row %d: %v", rowNum, err))
			log.WithError(err).Warn("Row import failed",
				logging.Field{Key: logging.FieldRow, Value: rowNum})
		}
	}

	stats.LogSummary(log)
	return stats, nil
}

// importRow runs the duplicate check, categorization and insert for one row.
// Duplicates are counted on the stats and are not errors.
func (i *Importer) importRow(ctx context.Context, row models.RawRow, accountID int64,
	amount decimal.Decimal, date time.Time, token string, stats *models.ImportStats) error {

	exists, err := i.transactions.Exists(ctx, token)
	if err != nil {
		return err
	}
	if exists {
		stats.Duplicates++
		return nil
	}

	description := strings.TrimSpace(row.Label)
	categoryID, err := i.categorizer.Resolve(ctx, categorizer.Transaction{
		Description: description,
		Merchant:    row.Merchant,
		BankHint:    row.BankCategory,
	})
	if err != nil {
		return err
	}

	tx := models.Transaction{
		AccountID:          accountID,
		CategoryID:         categoryID,
		Type:               models.TypeFromAmount(amount),
		Amount:             amount.Abs(),
		Description:        description,
		Date:               date,
		Merchant:           row.Merchant,
		BankParentCategory: row.ParentCategory,
		ImportToken:        token,
	}

	if _, err := i.transactions.Insert(ctx, tx); err != nil {
		// A lost insert race on the token is a duplicate, not a failure.
		if errors.Is(err, store.ErrDuplicateToken) {
			stats.Duplicates++
			return nil
		}
		return err
	}

	stats.Imported++
	return nil
}

// parseRequiredFields extracts the amount and operation date of a row.
// Either one missing or unparseable marks the row as missing data.
func parseRequiredFields(row models.RawRow) (decimal.Decimal, time.Time, bool) {
	if row.Amount == "" || row.OperationDate == "" {
		return decimal.Decimal{}, time.Time{}, false
	}

	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, false
	}

	date, err := dateutils.ParseISODate(normalize.DatePart(row.OperationDate))
	if err != nil {
		return decimal.Decimal{}, time.Time{}, false
	}

	return amount, date, true
}
