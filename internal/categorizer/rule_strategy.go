package categorizer

import (
	"context"
	"strings"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
	"mrichard/bourso-import/internal/store"
)

// RuleStrategy resolves categories from user-defined keyword rules. It is the
// highest-priority tier: rules are evaluated in their stored order and the
// first match wins over any built-in mapping.
type RuleStrategy struct {
	rules  store.RuleStore
	logger logging.Logger
}

// NewRuleStrategy creates a RuleStrategy backed by the given rule store.
func NewRuleStrategy(rules store.RuleStore, logger logging.Logger) *RuleStrategy {
	return &RuleStrategy{rules: rules, logger: logger}
}

// Name returns the name of this strategy for logging purposes.
func (s *RuleStrategy) Name() string {
	return "UserRules"
}

// Resolve tests every active rule against the field named by its match-field:
// the merchant when the rule says so and a merchant is present, otherwise the
// description. Matching is a case-insensitive substring test.
func (s *RuleStrategy) Resolve(ctx context.Context, tx Transaction) (int64, bool, error) {
	if tx.Description == "" && tx.Merchant == "" {
		return 0, false, nil
	}

	rules, err := s.rules.ListActiveRules(ctx)
	if err != nil {
		return 0, false, err
	}

	for _, rule := range rules {
		fieldValue := ""
		if rule.MatchField == models.MatchFieldMerchant && tx.Merchant != "" {
			fieldValue = strings.ToLower(tx.Merchant)
		} else if tx.Description != "" {
			fieldValue = strings.ToLower(tx.Description)
		}

		if fieldValue == "" {
			continue
		}

		if strings.Contains(fieldValue, strings.ToLower(rule.Keyword)) {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldKeyword, Value: rule.Keyword},
				logging.Field{Key: logging.FieldCategory, Value: rule.CategoryID},
			).Debug("Transaction categorized by user rule")
			return rule.CategoryID, true, nil
		}
	}

	return 0, false, nil
}
