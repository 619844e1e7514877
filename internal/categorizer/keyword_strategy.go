package categorizer

import (
	"context"
	"strings"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
	"mrichard/bourso-import/internal/store"
)

// keywordMapping maps a merchant or brand substring found in the description
// to a canonical category name.
type keywordMapping struct {
	Keyword      string
	CategoryName string
}

// descriptionKeywords is the built-in merchant table. Ordered from most to
// least common so the first hit wins deterministically.
var descriptionKeywords = []keywordMapping{
	{"carrefour", models.CategoryGroceries},
	{"leclerc", models.CategoryGroceries},
	{"auchan", models.CategoryGroceries},
	{"super u", models.CategoryGroceries},
	{"intermarche", models.CategoryGroceries},
	{"uber", models.CategoryRideHailing},
	{"sncf", models.CategoryTrain},
	{"netflix", models.CategoryStreaming},
	{"spotify", models.CategoryStreaming},
	{"edf", models.CategoryElectricity},
	{"bouygues", models.CategoryInternet},
	{"orange", models.CategoryPhone},
}

// KeywordStrategy resolves categories by scanning the description for known
// merchant and brand names. Lowest-priority tier.
type KeywordStrategy struct {
	categories store.CategoryStore
	mappings   []keywordMapping
	logger     logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy using the built-in merchant
// table and the given category store for name resolution.
func NewKeywordStrategy(categories store.CategoryStore, logger logging.Logger) *KeywordStrategy {
	return &KeywordStrategy{
		categories: categories,
		mappings:   descriptionKeywords,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging purposes.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Resolve scans the lower-cased description for each known keyword and looks
// the mapped canonical name up in the category store.
func (s *KeywordStrategy) Resolve(ctx context.Context, tx Transaction) (int64, bool, error) {
	if tx.Description == "" {
		return 0, false, nil
	}

	description := strings.ToLower(tx.Description)
	for _, mapping := range s.mappings {
		if !strings.Contains(description, mapping.Keyword) {
			continue
		}

		id, found, err := s.categories.FindCategoryByKeyword(ctx, mapping.CategoryName)
		if err != nil {
			return 0, false, err
		}
		if found {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldKeyword, Value: mapping.Keyword},
				logging.Field{Key: logging.FieldCategory, Value: mapping.CategoryName},
			).Debug("Transaction categorized by description keyword")
			return id, true, nil
		}
	}

	return 0, false, nil
}
