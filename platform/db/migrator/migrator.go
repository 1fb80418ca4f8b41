package migrator

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

const dialect = "postgres"

type Migrator struct {
	db            *sql.DB
	migrationsDir string
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{
		db:            db,
		migrationsDir: migrationsDir,
	}
}

func (m *Migrator) Up() error {
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.Up(m.db, m.migrationsDir)
}

// Down rolls back the most recent migration.
func (m *Migrator) Down() error {
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	return goose.Down(m.db, m.migrationsDir)
}

func (m *Migrator) Version() (int64, error) {
	if err := goose.SetDialect(dialect); err != nil {
		return 0, err
	}

	return goose.GetDBVersion(m.db)
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
