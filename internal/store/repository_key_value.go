package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Ahcene43/WAW/internal/logger"
)

// sqlKeyValueStore is the SQL implementation of [KeyValueStore] over the
// local_storage table.
type sqlKeyValueStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLKeyValueStore constructs a [KeyValueStore] backed by db.
func NewSQLKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating key/value repository")
	return &sqlKeyValueStore{db: db, logger: log}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetValueQuery(s.db.placeholder(), key)
	if err != nil {
		return "", err
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error reading value")
		return "", s.db.wrapError("read value", err)
	}

	return value, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertValueQuery(s.db.placeholder(), key, value)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error writing value")
		return s.db.wrapError("write value", err)
	}

	return nil
}

func (s *sqlKeyValueStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(s.db.placeholder(), key)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Delete").Str("key", key).Msg("error deleting value")
		return s.db.wrapError("delete value", err)
	}

	return nil
}

func (s *sqlKeyValueStore) Keys(ctx context.Context) ([]string, error) {
	query, args, err := buildListKeysQuery()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Keys").Msg("error listing keys")
		return nil, s.db.wrapError("list keys", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, s.db.wrapError("scan key", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, s.db.wrapError("list keys", err)
	}

	return keys, nil
}

func (s *sqlKeyValueStore) Clear(ctx context.Context) error {
	query, args, err := buildClearQuery()
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStore.Clear").Msg("error clearing storage")
		return s.db.wrapError("clear storage", err)
	}

	return nil
}
