package envconfig

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type postgresEnv struct {
	Host          string `env:"POSTGRES_HOST"`
	Port          int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User          string `env:"POSTGRES_USER"`
	Password      string `env:"POSTGRES_PASSWORD"`
	DBName        string `env:"POSTGRES_DB"`
	SSLMode       string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MigrationsDir string `env:"MIGRATION_DIRECTORY" envDefault:"migrations"`
}

type postgres struct {
	raw postgresEnv
}

// NewPostgresConfig requires the connection settings unless the in-memory storage is selected.
func NewPostgresConfig(optional bool) (*postgres, error) {
	var raw postgresEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if !optional && (raw.Host == "" || raw.User == "" || raw.DBName == "") {
		return nil, errors.New("POSTGRES_HOST, POSTGRES_USER and POSTGRES_DB are required")
	}

	return &postgres{raw: raw}, nil
}

func (cfg *postgres) MigrationDirectory() string {
	return cfg.raw.MigrationsDir
}

func (cfg *postgres) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.SSLMode,
	)
}
