package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
)

// uniqueViolation is the Postgres error code raised when an insert breaks a
// unique constraint.
const uniqueViolation = "23505"

// PostgresStore implements Store on top of a Postgres database via lib/pq.
type PostgresStore struct {
	db     *sql.DB
	logger logging.Logger
}

// NewPostgresStore opens a connection pool to the given DSN and verifies it.
func NewPostgresStore(dsn string, logger logging.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &PostgresStore{db: db, logger: logger}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InitSchema creates the tables and indexes if they do not exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			account_type TEXT NOT NULL DEFAULT '',
			balance DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			parent_category TEXT NOT NULL DEFAULT '',
			sub_category TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS categorization_rules (
			id BIGSERIAL PRIMARY KEY,
			keyword TEXT NOT NULL,
			category_id BIGINT NOT NULL REFERENCES categories(id),
			match_field TEXT NOT NULL DEFAULT 'description',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			account_id BIGINT NOT NULL REFERENCES accounts(id),
			category_id BIGINT REFERENCES categories(id),
			transaction_type TEXT NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL,
			merchant TEXT NOT NULL DEFAULT '',
			category_parent_csv TEXT NOT NULL DEFAULT '',
			import_token TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_account_date
			ON transactions (account_id, date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error creating schema: %w", err)
		}
	}
	s.logger.Debug("Database schema ready")
	return nil
}

// Exists reports whether a transaction bearing this import token is stored.
func (s *PostgresStore) Exists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE import_token = $1)`, token,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking import token: %w", err)
	}
	return exists, nil
}

// Insert persists a transaction. A unique-constraint violation on the import
// token is translated into ErrDuplicateToken so a lost insert race is treated
// as a duplicate, not a failure.
func (s *PostgresStore) Insert(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO transactions
			(account_id, category_id, transaction_type, amount, description,
			 date, merchant, category_parent_csv, import_token, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		tx.AccountID, tx.CategoryID, tx.Type, tx.Amount.StringFixed(2),
		tx.Description, tx.Date, tx.Merchant, tx.BankParentCategory,
		tx.ImportToken, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.Transaction{}, ErrDuplicateToken
		}
		return models.Transaction{}, fmt.Errorf("error inserting transaction: %w", err)
	}
	return tx, nil
}

// ListTransactions returns transactions ordered by date descending.
func (s *PostgresStore) ListTransactions(ctx context.Context, accountID int64, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, category_id, transaction_type, amount,
			description, date, merchant, category_parent_csv, import_token, created_at
		 FROM transactions
		 WHERE ($1 = 0 OR account_id = $1)
		 ORDER BY date DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close rows")
		}
	}()

	var result []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var categoryID sql.NullInt64
		var amount string
		if err := rows.Scan(&tx.ID, &tx.AccountID, &categoryID, &tx.Type, &amount,
			&tx.Description, &tx.Date, &tx.Merchant, &tx.BankParentCategory,
			&tx.ImportToken, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		if categoryID.Valid {
			tx.CategoryID = &categoryID.Int64
		}
		dec, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("error parsing stored amount %q: %w", amount, err)
		}
		tx.Amount = dec
		result = append(result, tx)
	}
	return result, rows.Err()
}

// FindCategoryByKeyword returns the first category whose name contains the
// keyword, case-insensitively.
func (s *PostgresStore) FindCategoryByKeyword(ctx context.Context, keyword string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE name ILIKE '%' || $1 || '%' ORDER BY id LIMIT 1`,
		keyword,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("error finding category by keyword: %w", err)
	}
	return id, true, nil
}

// ListCategories returns all categories ordered by ID.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, parent_category, sub_category FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close rows")
		}
	}()

	var result []models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Parent, &cat.Sub); err != nil {
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		result = append(result, cat)
	}
	return result, rows.Err()
}

// CreateCategory inserts a category. Existing names are left untouched and
// returned as-is, so seeding is idempotent.
func (s *PostgresStore) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, parent_category, sub_category)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		category.Name, category.Parent, category.Sub,
	).Scan(&category.ID)
	if err != nil {
		return models.Category{}, fmt.Errorf("error creating category: %w", err)
	}
	return category, nil
}

// ListActiveRules returns active rules in creation order.
func (s *PostgresStore) ListActiveRules(ctx context.Context) ([]models.CategorizationRule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, keyword, category_id, match_field, is_active, created_at
		 FROM categorization_rules
		 WHERE is_active
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing rules: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close rows")
		}
	}()

	var result []models.CategorizationRule
	for rows.Next() {
		var rule models.CategorizationRule
		if err := rows.Scan(&rule.ID, &rule.Keyword, &rule.CategoryID,
			&rule.MatchField, &rule.IsActive, &rule.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning rule: %w", err)
		}
		result = append(result, rule)
	}
	return result, rows.Err()
}

// FindAccount returns the account with the given ID.
func (s *PostgresStore) FindAccount(ctx context.Context, id int64) (models.Account, error) {
	var acc models.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, account_type, balance, is_active FROM accounts WHERE id = $1`,
		id,
	).Scan(&acc.ID, &acc.Name, &acc.Type, &acc.Balance, &acc.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("error finding account: %w", err)
	}
	return acc, nil
}

// ListAccounts returns all active accounts.
func (s *PostgresStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, account_type, balance, is_active FROM accounts
		 WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close rows")
		}
	}()

	var result []models.Account
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Type, &acc.Balance, &acc.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning account: %w", err)
		}
		result = append(result, acc)
	}
	return result, rows.Err()
}

// CreateAccount inserts an account if no active account with the same name
// exists yet.
func (s *PostgresStore) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	var existing int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM accounts WHERE name = $1 LIMIT 1`, account.Name,
	).Scan(&existing)
	if err == nil {
		account.ID = existing
		return account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("error checking account: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`INSERT INTO accounts (name, account_type, balance, is_active)
		 VALUES ($1, $2, $3, TRUE) RETURNING id`,
		account.Name, account.Type, account.Balance,
	).Scan(&account.ID)
	if err != nil {
		return models.Account{}, fmt.Errorf("error creating account: %w", err)
	}
	account.IsActive = true
	return account, nil
}
