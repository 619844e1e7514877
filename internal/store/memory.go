package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"mrichard/bourso-import/internal/models"
)

// MemoryStore is an in-memory implementation of Store used in tests and by
// the categorize debug command. It mirrors the Postgres adapter's semantics,
// including the unique import-token constraint.
type MemoryStore struct {
	mu           sync.Mutex
	transactions []models.Transaction
	tokens       map[string]struct{}
	categories   []models.Category
	rules        []models.CategorizationRule
	accounts     []models.Account
	nextTxID     int64
	nextCatID    int64
	nextAccID    int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens:    make(map[string]struct{}),
		nextTxID:  1,
		nextCatID: 1,
		nextAccID: 1,
	}
}

// Exists reports whether a transaction bearing this import token is stored.
func (m *MemoryStore) Exists(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tokens[token]
	return ok, nil
}

// Insert persists a transaction, enforcing import-token uniqueness.
func (m *MemoryStore) Insert(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tokens[tx.ImportToken]; ok {
		return models.Transaction{}, ErrDuplicateToken
	}

	tx.ID = m.nextTxID
	m.nextTxID++
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	m.tokens[tx.ImportToken] = struct{}{}
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

// ListTransactions returns transactions ordered by date descending.
func (m *MemoryStore) ListTransactions(_ context.Context, accountID int64, limit, offset int) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.Transaction
	for _, tx := range m.transactions {
		if accountID != 0 && tx.AccountID != accountID {
			continue
		}
		result = append(result, tx)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// FindCategoryByKeyword returns the first category whose name contains the
// keyword, case-insensitively, in insertion order.
func (m *MemoryStore) FindCategoryByKeyword(_ context.Context, keyword string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keyword = strings.ToLower(keyword)
	for _, cat := range m.categories {
		if strings.Contains(strings.ToLower(cat.Name), keyword) {
			return cat.ID, true, nil
		}
	}
	return 0, false, nil
}

// ListCategories returns all categories.
func (m *MemoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category(nil), m.categories...), nil
}

// CreateCategory inserts a category.
func (m *MemoryStore) CreateCategory(_ context.Context, category models.Category) (models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	category.ID = m.nextCatID
	m.nextCatID++
	m.categories = append(m.categories, category)
	return category, nil
}

// ListActiveRules returns active rules in their stored order.
func (m *MemoryStore) ListActiveRules(_ context.Context) ([]models.CategorizationRule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.CategorizationRule
	for _, rule := range m.rules {
		if rule.IsActive {
			result = append(result, rule)
		}
	}
	return result, nil
}

// AddRule appends a categorization rule. Test helper; the import pipeline
// only ever reads rules.
func (m *MemoryStore) AddRule(rule models.CategorizationRule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rule.ID = int64(len(m.rules) + 1)
	m.rules = append(m.rules, rule)
}

// FindAccount returns the account with the given ID.
func (m *MemoryStore) FindAccount(_ context.Context, id int64) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, acc := range m.accounts {
		if acc.ID == id {
			return acc, nil
		}
	}
	return models.Account{}, ErrNotFound
}

// ListAccounts returns all active accounts.
func (m *MemoryStore) ListAccounts(_ context.Context) ([]models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.Account
	for _, acc := range m.accounts {
		if acc.IsActive {
			result = append(result, acc)
		}
	}
	return result, nil
}

// CreateAccount inserts an account.
func (m *MemoryStore) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.nextAccID
	m.nextAccID++
	m.accounts = append(m.accounts, account)
	return account, nil
}

// CountTransactions returns the number of stored transactions. Test helper.
func (m *MemoryStore) CountTransactions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transactions)
}
