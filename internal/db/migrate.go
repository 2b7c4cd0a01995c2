package db

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/todoboard/backend/internal/config"
	"github.com/todoboard/backend/migrations"
)

// Migrate applies all pending schema migrations from the embedded filesystem.
// Both services run this on startup; goose's version table makes it a no-op
// when the schema is current.
func Migrate(ctx context.Context, cfg config.PostgresConfig) error {
	dsn, err := BuildPostgresURL(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, sqlDB, ".")
}
