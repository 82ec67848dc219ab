// Package storagetest tiene la suite de contrato que corre contra cada
// adapter de pets.Repository.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shelter/internal/domain/pets"
)

// RunPetsRepo ejecuta la suite. newRepo debe devolver un repo vacío en cada llamada.
func RunPetsRepo(t *testing.T, newRepo func(t *testing.T) pets.Repository) {
	t.Helper()

	t.Run("insert assigns increasing ids", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id1, err := repo.Insert(ctx, pets.Pet{Name: "Toto", Breed: "Terrier", Gender: pets.GenderMale, Weight: 7})
		require.NoError(t, err)
		id2, err := repo.Insert(ctx, pets.Pet{Name: "Milo"})
		require.NoError(t, err)

		assert.Equal(t, int64(1), id1)
		assert.Greater(t, id2, id1)
	})

	t.Run("list returns insertion order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"a", "b", "c"} {
			_, err := repo.Insert(ctx, pets.Pet{Name: name})
			require.NoError(t, err)
		}

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "a", items[0].Name)
		assert.Equal(t, "b", items[1].Name)
		assert.Equal(t, "c", items[2].Name)
	})

	t.Run("list on empty table", func(t *testing.T) {
		repo := newRepo(t)

		items, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("get by id round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		in := pets.Pet{Name: "Luna", Breed: "Siamese", Gender: pets.GenderFemale, Weight: 4}
		id, err := repo.Insert(ctx, in)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		in.ID = id
		assert.Equal(t, in, got)
	})

	t.Run("largest editor weight round trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.Insert(ctx, pets.Pet{Name: "Rex", Weight: pets.MaxWeight})
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pets.MaxWeight, got.Weight)
	})

	t.Run("get by id missing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), 42)
		assert.True(t, errors.Is(err, pets.ErrNotFound), "got %v", err)
	})

	t.Run("update replaces full record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.Insert(ctx, pets.Pet{Name: "Toto", Breed: "Terrier", Gender: pets.GenderMale, Weight: 7})
		require.NoError(t, err)

		n, err := repo.Update(ctx, pets.Pet{ID: id, Name: "Toto II", Gender: pets.GenderUnknown})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, pets.Pet{ID: id, Name: "Toto II"}, got)
	})

	t.Run("update missing affects zero rows", func(t *testing.T) {
		repo := newRepo(t)

		n, err := repo.Update(context.Background(), pets.Pet{ID: 99, Name: "ghost"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("delete one", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.Insert(ctx, pets.Pet{Name: "Toto"})
		require.NoError(t, err)

		n, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("delete all counts rows and ids are not reused", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		last := int64(0)
		for i := 0; i < 3; i++ {
			id, err := repo.Insert(ctx, pets.Pet{Name: "x"})
			require.NoError(t, err)
			last = id
		}

		n, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		n, err = repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		id, err := repo.Insert(ctx, pets.Pet{Name: "y"})
		require.NoError(t, err)
		assert.Greater(t, id, last)
	})
}
