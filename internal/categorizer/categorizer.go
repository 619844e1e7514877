// Package categorizer resolves a spending category for a transaction through
// an ordered fallback chain:
//  1. user-defined keyword rules (highest priority)
//  2. the bank-supplied category hint
//  3. known merchant names in the description
//
// Each tier short-circuits on first match; if no tier matches the transaction
// stays uncategorized. The chain is read-only against the rule and category
// stores.
package categorizer

import (
	"context"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/store"
)

// Categorizer runs the strategy chain in order.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// NewCategorizer wires the default three-tier chain. Tier order is a
// contract: user rules must win over the hint table, which must win over the
// description keywords.
func NewCategorizer(rules store.RuleStore, categories store.CategoryStore, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{
		strategies: []Strategy{
			NewRuleStrategy(rules, logger),
			NewBankHintStrategy(categories, logger),
			NewKeywordStrategy(categories, logger),
		},
		logger: logger,
	}
}

// NewCategorizerWithStrategies builds a categorizer from an explicit chain.
// Used by tests to exercise tier ordering.
func NewCategorizerWithStrategies(logger logging.Logger, strategies ...Strategy) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{strategies: strategies, logger: logger}
}

// Resolve returns the category ID for the transaction, or nil if no tier
// matched. A strategy error aborts resolution and propagates to the caller.
func (c *Categorizer) Resolve(ctx context.Context, tx Transaction) (*int64, error) {
	for _, strategy := range c.strategies {
		id, found, err := strategy.Resolve(ctx, tx)
		if err != nil {
			return nil, err
		}
		if found {
			return &id, nil
		}
	}

	c.logger.WithField(logging.FieldOperation, "categorize").
		Debug("No category resolved, leaving transaction uncategorized")
	return nil, nil
}
