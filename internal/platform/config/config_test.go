package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE", "SQLITE_PATH", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "shelter.db", cfg.SQLitePath)
	assert.Equal(t, "pet-shelter", cfg.AppName)
}

func TestLoad_DSNSelectsPostgres(t *testing.T) {
	t.Setenv("STORAGE", "")
	t.Setenv("DB_DSN", "postgres://localhost/shelter")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage)
}

func TestLoad_ExplicitStorage(t *testing.T) {
	t.Setenv("STORAGE", "Memory")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestLoad_Rejects(t *testing.T) {
	t.Setenv("DB_DSN", "")

	t.Setenv("STORAGE", "postgres")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORAGE", "redis")
	_, err = Load()
	assert.Error(t, err)
}
