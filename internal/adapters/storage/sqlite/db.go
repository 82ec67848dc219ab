package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// DefaultPath es el archivo de la base local.
const DefaultPath = "shelter.db"

// Versión 1 del esquema, sin camino de migración.
const schema = `
CREATE TABLE IF NOT EXISTS pets (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	name   TEXT,
	breed  TEXT,
	gender INTEGER NOT NULL DEFAULT 0 CHECK (gender IN (0, 1, 2)),
	weight INTEGER
)`

// Open abre (o crea) el archivo y deja la tabla pets lista.
// Una sola conexión: el acceso es de un único escritor.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create pets table: %w", err)
	}

	return db, nil
}
