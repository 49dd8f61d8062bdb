// Package migrate applies the embedded dokaadmin, keymanager and
// sessionmanager schema migrations on startup, ported from and161185-goph-keeper's internal/migrate package.
package migrate

import (
	"context"
	"database/sql"
	"embed"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var migrationFS embed.FS

// Up runs every pending embedded migration (dokaadmin, keymanager,
// sessionmanager schemas) against dsn. It is the only
// place a Doka service opens a database/sql connection — everywhere else
// uses pgx's native pool directly.
func Up(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrationFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, "sql")
}
