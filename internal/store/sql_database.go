package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/migrations"
)

// Dialect names the SQL backend behind a [DB]. The values double as goose
// dialect names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DialectFromDSN picks PostgreSQL for postgres:// and postgresql:// URLs and
// SQLite for everything else.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}

	return DialectSQLite
}

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB connects to the backend selected by cfg.DSN and applies migrations.
func NewDB(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error migrating local storage")
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// Dialect reports the backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectPostgres {
		return sq.Dollar
	}

	return sq.Question
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

// wrapError tags transient failures with [ErrStorageBusy] so callers can tell
// them apart from permanent ones.
func (db *DB) wrapError(op string, err error) error {
	if db.classify(err) == Retryable {
		return fmt.Errorf("%s: %w: %w", op, ErrStorageBusy, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
