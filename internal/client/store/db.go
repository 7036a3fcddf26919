package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/sellhub/internal/client/migrations"
	"github.com/dmitrijs2005/sellhub/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens (creating it and its directory if needed) the SQLite
// file at dsn and applies the embedded migrations. ":memory:" is accepted
// for tests.
//
// The pool is capped at one connection: SQLite allows a single writer and an
// in-memory database is private to the connection that created it.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
