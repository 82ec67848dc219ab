package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Storage string

const (
	StorageSQLite   Storage = "sqlite"
	StoragePostgres Storage = "postgres"
	StorageMemory   Storage = "memory"
)

type Config struct {
	Port string

	Storage    Storage
	SQLitePath string
	DBDSN      string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Addr devuelve ":PORT" para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load lee la configuración desde env:
// - PORT (default 8080)
// - STORAGE=sqlite|postgres|memory (default sqlite; postgres si hay DB_DSN)
// - SQLITE_PATH (default shelter.db)
// - DB_DSN (postgres)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("port", "8080")
	v.SetDefault("sqlite_path", "shelter.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "pet-shelter")

	for _, key := range []string{"port", "storage", "sqlite_path", "db_dsn", "log_level", "log_format", "app_name"} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := Config{
		Port:       strings.TrimSpace(v.GetString("port")),
		SQLitePath: strings.TrimSpace(v.GetString("sqlite_path")),
		DBDSN:      strings.TrimSpace(v.GetString("db_dsn")),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
		AppName:    v.GetString("app_name"),
	}

	storage := Storage(strings.ToLower(strings.TrimSpace(v.GetString("storage"))))
	switch storage {
	case "":
		// como antes: si hay DSN, Postgres
		if cfg.DBDSN != "" {
			storage = StoragePostgres
		} else {
			storage = StorageSQLite
		}
	case StorageSQLite, StorageMemory:
	case StoragePostgres:
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("STORAGE=postgres requires DB_DSN")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE %q (sqlite, postgres or memory)", storage)
	}
	cfg.Storage = storage

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
