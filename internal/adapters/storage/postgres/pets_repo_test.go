package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"pet-shelter/internal/adapters/storage/postgres"
	"pet-shelter/internal/adapters/storage/storagetest"
	"pet-shelter/internal/domain/pets"
)

// Necesita un Postgres real: PETS_TEST_PG_DSN=postgres://...
func TestPetsRepo(t *testing.T) {
	dsn := os.Getenv("PETS_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("PETS_TEST_PG_DSN not set")
	}

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	storagetest.RunPetsRepo(t, func(t *testing.T) pets.Repository {
		// tabla nueva por subtest para que la identidad arranque en 1
		_, err := db.ExecContext(context.Background(), `DROP TABLE IF EXISTS pets`)
		require.NoError(t, err)
		require.NoError(t, postgres.EnsureSchema(context.Background(), db))
		return postgres.NewPetsRepo(db)
	})
}
