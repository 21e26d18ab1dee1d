package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable = "local_storage"
	colKey            = "storage_key"
	colValue          = "storage_value"
	colUpdatedAt      = "updated_at"

	upsertSuffix = "ON CONFLICT (" + colKey + ") DO UPDATE SET " +
		colValue + " = excluded." + colValue + ", " +
		colUpdatedAt + " = excluded." + colUpdatedAt
)

func buildGetValueQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.Select(colValue).
		From(localStorageTable).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertValueQuery(ph sq.PlaceholderFormat, key, value string) (string, []any, error) {
	query, args, err := sq.Insert(localStorageTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(upsertSuffix).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteValueQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.Delete(localStorageTable).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListKeysQuery() (string, []any, error) {
	query, args, err := sq.Select(colKey).
		From(localStorageTable).
		OrderBy(colKey).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildClearQuery() (string, []any, error) {
	query, args, err := sq.Delete(localStorageTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
