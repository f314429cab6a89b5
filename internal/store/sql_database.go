package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"database/sql"

	"github.com/MKhiriev/go-translation-webhooks/internal/config"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/migrations"
)

// DB wraps the sql.DB connection together with the placeholder style of the
// active backend. Repositories build their queries through the embedded
// squirrel builder so the same code serves both postgres and sqlite.
type DB struct {
	*sql.DB

	builder sq.StatementBuilderType
	dialect string
	logger  *logger.Logger
}

// Connect opens the lookup database selected by cfg.Driver and verifies the
// connection with a ping.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the active dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
