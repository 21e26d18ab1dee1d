package store

import (
	"context"

	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
)

// Storages groups the local storage components handed to the service layer.
type Storages struct {
	KeyValue    KeyValueStore
	Documents   DocumentCache
	Credentials CredentialsRepository

	db *DB
}

// NewStorages opens the database named by cfg.DSN, applies migrations and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	s := newStorages(NewSQLKeyValueStore(db, log), log)
	s.db = db

	return s, nil
}

// NewMemoryStorages builds the repositories over an in-memory store.
func NewMemoryStorages(log *logger.Logger) *Storages {
	return newStorages(NewMemoryKeyValueStore(), log)
}

func newStorages(kv KeyValueStore, log *logger.Logger) *Storages {
	return &Storages{
		KeyValue:    kv,
		Documents:   NewDocumentCache(kv, log),
		Credentials: NewCredentialsRepository(kv, log),
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
