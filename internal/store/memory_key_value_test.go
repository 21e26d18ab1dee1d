package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyValue_Lifecycle(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	_, err := kv.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "b", "2"))
	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "a", "1bis"))

	v, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1bis", v)

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, kv.Delete(ctx, "a"))
	require.NoError(t, kv.Delete(ctx, "missing"))
	_, err = kv.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Clear(ctx))
	keys, err = kv.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// TestMemoryKeyValue_CancelledContext verifies that a cancelled context is
// reported instead of touching the map.
func TestMemoryKeyValue_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	kv := NewMemoryKeyValueStore()
	assert.ErrorIs(t, kv.Set(ctx, "a", "1"), context.Canceled)
	_, err := kv.Get(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
}
