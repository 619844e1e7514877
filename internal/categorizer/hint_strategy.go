package categorizer

import (
	"context"
	"strings"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
	"mrichard/bourso-import/internal/store"
)

// hintMapping maps a substring of the bank's own category label to one of our
// canonical category names. Ordered so the first hit wins deterministically.
type hintMapping struct {
	Substring    string
	CategoryName string
}

// boursoHintMappings translates Boursorama category labels.
var boursoHintMappings = []hintMapping{
	{"alimentation", models.CategoryGroceries},
	{"carburant", models.CategoryFuel},
	{"vêtements", models.CategoryClothes},
	{"hébergement", models.CategoryHotel},
	{"restaurant", models.CategoryRestaurant},
	{"virements", models.CategoryTransferOut},
}

// BankHintStrategy resolves categories from the bank-supplied category hint.
// It only applies when the transaction has a description and a hint.
type BankHintStrategy struct {
	categories store.CategoryStore
	mappings   []hintMapping
	logger     logging.Logger
}

// NewBankHintStrategy creates a BankHintStrategy using the Boursorama hint
// table and the given category store for name resolution.
func NewBankHintStrategy(categories store.CategoryStore, logger logging.Logger) *BankHintStrategy {
	return &BankHintStrategy{
		categories: categories,
		mappings:   boursoHintMappings,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging purposes.
func (s *BankHintStrategy) Name() string {
	return "BankHint"
}

// Resolve lower-cases the hint, finds the first mapping whose substring
// occurs in it and looks the mapped canonical name up in the category store.
func (s *BankHintStrategy) Resolve(ctx context.Context, tx Transaction) (int64, bool, error) {
	if tx.Description == "" || tx.BankHint == "" {
		return 0, false, nil
	}

	hint := strings.ToLower(tx.BankHint)
	for _, mapping := range s.mappings {
		if !strings.Contains(hint, mapping.Substring) {
			continue
		}

		id, found, err := s.categories.FindCategoryByKeyword(ctx, mapping.CategoryName)
		if err != nil {
			return 0, false, err
		}
		if found {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldKeyword, Value: mapping.Substring},
				logging.Field{Key: logging.FieldCategory, Value: mapping.CategoryName},
			).Debug("Transaction categorized by bank hint")
			return id, true, nil
		}
	}

	return 0, false, nil
}
