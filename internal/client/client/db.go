// Package client bootstraps the local SQLite database and wires up the
// repositories backed by it.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/teamhub/teamhub-cli/internal/client/migrations"
	"github.com/teamhub/teamhub-cli/internal/client/repositories/audit"
	"github.com/teamhub/teamhub-cli/internal/client/repositories/metadata"
)

type Repositories struct {
	Metadata metadata.Repository
	Audit    audit.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Audit:    audit.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
