package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrichard/bourso-import/internal/logging"
	"mrichard/bourso-import/internal/models"
)

const seedYAML = `categories:
  - { name: Épicerie, parent: BesoinsEssentiels, sub: Alimentation }
  - { name: Virement interne, parent: MouvementsInternes, sub: Virements }
accounts:
  - { name: BoursoBank, account_type: checking, balance: 0 }
  - { name: Livret A, account_type: savings, balance: 0 }
`

func writeSeedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	seed, err := LoadSeedFile(writeSeedFile(t))
	require.NoError(t, err)

	require.Len(t, seed.Categories, 2)
	assert.Equal(t, "Épicerie", seed.Categories[0].Name)
	assert.Equal(t, "BesoinsEssentiels", seed.Categories[0].Parent)
	require.Len(t, seed.Accounts, 2)
	assert.Equal(t, models.AccountTypeChecking, seed.Accounts[0].Type)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	seed, err := LoadSeedFile(writeSeedFile(t))
	require.NoError(t, err)

	logger := &logging.MockLogger{}
	require.NoError(t, Seed(ctx, s, seed, logger))
	require.NoError(t, Seed(ctx, s, seed, logger))

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	for _, acc := range accounts {
		assert.True(t, acc.IsActive)
	}
}
