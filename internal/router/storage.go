package router

import (
	"database/sql"
	"fmt"

	mem "pet-shelter/internal/adapters/storage/memory"
	pg "pet-shelter/internal/adapters/storage/postgres"
	"pet-shelter/internal/adapters/storage/sqlite"
	"pet-shelter/internal/domain/pets"
	"pet-shelter/internal/platform/config"
)

// OpenRepo elige el adapter según config. closeFn es no-op para memory.
func OpenRepo(cfg config.Config) (repo pets.Repository, closeFn func() error, err error) {
	var db *sql.DB

	switch cfg.Storage {
	case config.StorageMemory:
		return mem.NewPetRepo(), func() error { return nil }, nil

	case config.StoragePostgres:
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return pg.NewPetsRepo(db), db.Close, nil

	case config.StorageSQLite, "":
		db, err = sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewPetsRepo(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
