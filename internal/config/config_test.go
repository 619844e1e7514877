package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOURSO_LOG_LEVEL",
		"BOURSO_LOG_FORMAT",
		"BOURSO_DATABASE_HOST",
		"BOURSO_DATABASE_PORT",
		"BOURSO_DATABASE_USER",
		"BOURSO_DATABASE_PASSWORD",
		"BOURSO_DATABASE_NAME",
		"BOURSO_IMPORT_DEFAULT_FORMAT",
		"BOURSO_IMPORT_DEFAULT_ACCOUNT",
		"PGPASSWORD",
	} {
		// t.Setenv registers the restore, Unsetenv actually clears the value
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Logf("failed to unset %s: %v", key, err)
		}
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "localhost", config.Database.Host)
	assert.Equal(t, 5432, config.Database.Port)
	assert.Equal(t, "bourso_import", config.Database.Name)
	assert.Equal(t, "disable", config.Database.SSLMode)
	assert.Equal(t, "boursorama", config.Import.DefaultFormat)
	assert.Equal(t, int64(1), config.Import.DefaultAccount)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	t.Setenv("BOURSO_LOG_LEVEL", "debug")
	t.Setenv("BOURSO_LOG_FORMAT", "json")
	t.Setenv("BOURSO_DATABASE_HOST", "db.internal")
	t.Setenv("BOURSO_DATABASE_PORT", "5433")
	t.Setenv("PGPASSWORD", "secret")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "db.internal", config.Database.Host)
	assert.Equal(t, 5433, config.Database.Port)
	assert.Equal(t, "secret", config.Database.Password)
}

func TestInitializeConfig_InvalidLogLevel(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("BOURSO_LOG_LEVEL", "verbose")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitializeConfig_InvalidLogFormat(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("BOURSO_LOG_FORMAT", "xml")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestDSN(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("BOURSO_DATABASE_HOST", "db.internal")
	t.Setenv("BOURSO_DATABASE_USER", "importer")
	t.Setenv("PGPASSWORD", "secret")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.internal port=5432 user=importer password=secret dbname=bourso_import sslmode=disable",
		config.DSN())
}
