package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of one imported statement row.
// The ImportToken is unique per store and is the sole duplicate-detection
// mechanism: a row whose token already exists is counted as a duplicate and
// never inserted a second time. Transactions are created once by the importer
// and never mutated by the import path.
type Transaction struct {
	ID                 int64           `json:"id"`
	AccountID          int64           `json:"account_id"`
	CategoryID         *int64          `json:"category_id,omitempty"`
	Type               string          `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Date               time.Time       `json:"date"`
	Merchant           string          `json:"merchant,omitempty"`
	BankParentCategory string          `json:"bank_parent_category,omitempty"`
	ImportToken        string          `json:"import_token"`
	CreatedAt          time.Time       `json:"created_at"`
}

// TypeFromAmount derives the transaction type from the signed amount:
// positive means credit, negative or zero means debit.
func TypeFromAmount(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return TransactionTypeCredit
	}
	return TransactionTypeDebit
}

// IsDebit returns true if the transaction is a debit.
func (t Transaction) IsDebit() bool {
	return t.Type == TransactionTypeDebit
}

// IsCredit returns true if the transaction is a credit.
func (t Transaction) IsCredit() bool {
	return t.Type == TransactionTypeCredit
}
