// Package store provides the persistence contracts consumed by the import
// pipeline, a Postgres adapter backing them in production and an in-memory
// adapter used by tests.
package store

import (
	"context"
	"errors"

	"mrichard/bourso-import/internal/models"
)

// ErrDuplicateToken is returned by Insert when a transaction bearing the same
// import token already exists. The importer pre-checks Exists, so hitting this
// error means two writers raced on the same token; the caller treats it as a
// duplicate, not a failure.
var ErrDuplicateToken = errors.New("transaction with this import token already exists")

// ErrNotFound is returned when a looked-up entity does not exist.
var ErrNotFound = errors.New("not found")

// TransactionStore persists imported transactions. Implementations must
// enforce uniqueness of the import token.
type TransactionStore interface {
	// Exists reports whether a transaction bearing this import token is
	// already persisted.
	Exists(ctx context.Context, token string) (bool, error)

	// Insert persists a new transaction and returns it with its assigned ID.
	// Returns ErrDuplicateToken if the import token is already taken.
	Insert(ctx context.Context, tx models.Transaction) (models.Transaction, error)

	// ListTransactions returns transactions for an account ordered by date
	// descending. accountID 0 means all accounts.
	ListTransactions(ctx context.Context, accountID int64, limit, offset int) ([]models.Transaction, error)
}

// CategoryStore exposes the category taxonomy.
type CategoryStore interface {
	// FindCategoryByKeyword returns the ID of the first category whose name
	// contains the given keyword, case-insensitively.
	FindCategoryByKeyword(ctx context.Context, keyword string) (int64, bool, error)

	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// CreateCategory inserts a category and returns it with its assigned ID.
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
}

// RuleStore exposes the user categorization rules.
type RuleStore interface {
	// ListActiveRules returns all active rules in their stored order.
	ListActiveRules(ctx context.Context) ([]models.CategorizationRule, error)
}

// AccountStore exposes the bank accounts.
type AccountStore interface {
	// FindAccount returns the account with the given ID, or ErrNotFound.
	FindAccount(ctx context.Context, id int64) (models.Account, error)

	// ListAccounts returns all active accounts.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// CreateAccount inserts an account and returns it with its assigned ID.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
}

// Store aggregates every persistence contract the application needs.
type Store interface {
	TransactionStore
	CategoryStore
	RuleStore
	AccountStore
}
