package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
)

// SeedData is the content of a seed file: the category taxonomy and the
// default accounts.
type SeedData struct {
	Categories []models.Category `yaml:"categories"`
	Accounts   []models.Account  `yaml:"accounts"`
}

// LoadSeedFile reads and parses a YAML seed file.
func LoadSeedFile(path string) (SeedData, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return SeedData{}, fmt.Errorf("error reading seed file: %w", err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedData{}, fmt.Errorf("error parsing seed file: %w", err)
	}
	return seed, nil
}

// Seed inserts the categories and accounts from a seed file into the store.
// Already-present names are skipped, so seeding is idempotent.
func Seed(ctx context.Context, s Store, seed SeedData, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	existing, err := s.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("error listing categories: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, cat := range existing {
		known[cat.Name] = struct{}{}
	}

	created := 0
	for _, cat := range seed.Categories {
		if _, ok := known[cat.Name]; ok {
			continue
		}
		if _, err := s.CreateCategory(ctx, cat); err != nil {
			return fmt.Errorf("error seeding category %q: %w", cat.Name, err)
		}
		created++
	}
	logger.Info("Seeded categories",
		logging.Field{Key: logging.FieldCount, Value: created})

	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("error listing accounts: %w", err)
	}
	knownAccounts := make(map[string]struct{}, len(accounts))
	for _, acc := range accounts {
		knownAccounts[acc.Name] = struct{}{}
	}

	createdAccounts := 0
	for _, acc := range seed.Accounts {
		if _, ok := knownAccounts[acc.Name]; ok {
			continue
		}
		acc.IsActive = true
		if _, err := s.CreateAccount(ctx, acc); err != nil {
			return fmt.Errorf("error seeding account %q: %w", acc.Name, err)
		}
		createdAccounts++
	}
	logger.Info("Seeded accounts",
		logging.Field{Key: logging.FieldCount, Value: createdAccounts})

	return nil
}
