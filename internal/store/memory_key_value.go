package store

import (
	"context"
	"slices"
	"sync"
)

// memoryKeyValueStore is an in-process [KeyValueStore]. Nothing survives the
// process; it backs tests and embedders that bring no database.
type memoryKeyValueStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyValueStore returns an empty in-memory [KeyValueStore].
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{values: make(map[string]string)}
}

func (m *memoryKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}

	return value, nil
}

func (m *memoryKeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value

	return nil
}

func (m *memoryKeyValueStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)

	return nil
}

func (m *memoryKeyValueStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	slices.Sort(keys)
	return keys, nil
}

func (m *memoryKeyValueStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.values)

	return nil
}
