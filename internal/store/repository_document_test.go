package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/models"
)

func TestDocumentCache_EmptyStore(t *testing.T) {
	cache := NewDocumentCache(NewMemoryKeyValueStore(), logger.Nop())

	_, err := cache.Load(context.Background())
	assert.ErrorIs(t, err, ErrCacheEmpty)
}

// TestDocumentCache_Corrupt verifies that values which are not a JSON object
// are reported as corrupt rather than empty.
func TestDocumentCache_Corrupt(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	cache := NewDocumentCache(kv, logger.Nop())

	for _, value := range []string{"{not json", "null", "[1,2]"} {
		require.NoError(t, kv.Set(ctx, KeyStoreConfig, value))
		_, err := cache.Load(ctx)
		assert.ErrorIs(t, err, ErrCacheCorrupt, value)
	}
}

func TestDocumentCache_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	cache := NewDocumentCache(kv, logger.Nop())

	doc := models.Document{
		Discounts:      &models.Discounts{MinQuantityForDiscount: 4, DiscountPerItem: 150},
		AvailableSizes: []string{"S", "M"},
	}
	require.NoError(t, cache.Save(ctx, doc))

	raw, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, raw, 2)

	got, err := raw.Decode()
	require.NoError(t, err)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("cached document mismatch (-want +got):\n%s", diff)
	}

	stored, err := kv.Get(ctx, KeyStoreConfig)
	require.NoError(t, err)
	assert.JSONEq(t, `{"DISCOUNTS":{"minQuantityForDiscount":4,"discountPerItem":150},"AVAILABLE_SIZES":["S","M"]}`, stored)
}
