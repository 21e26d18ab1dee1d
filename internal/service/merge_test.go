package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahcene43/WAW/models"
)

func TestMergeLayers_ShallowReplace(t *testing.T) {
	cache := models.RawDocument{
		models.KeyProducts:  json.RawMessage(`{"1":{"name":"a"},"2":{"name":"b"}}`),
		models.KeyDiscounts: json.RawMessage(`{"minQuantityForDiscount":2,"discountPerItem":300}`),
	}
	remote := models.RawDocument{
		models.KeyProducts: json.RawMessage(`{"3":{"name":"c"}}`),
	}

	merged, err := mergeLayers(cache, remote)
	require.NoError(t, err)

	assert.JSONEq(t, `{"3":{"name":"c"}}`, string(merged[models.KeyProducts]))
	assert.JSONEq(t, `{"minQuantityForDiscount":2,"discountPerItem":300}`, string(merged[models.KeyDiscounts]))
}

// TestMergeLayers_InputsUntouched verifies that merging does not write into
// the layers.
func TestMergeLayers_InputsUntouched(t *testing.T) {
	low := models.RawDocument{models.KeyAvailableSizes: json.RawMessage(`["S"]`)}
	high := models.RawDocument{models.KeyAvailableSizes: json.RawMessage(`["M"]`)}

	merged, err := mergeLayers(low, high)
	require.NoError(t, err)

	assert.Equal(t, `["M"]`, string(merged[models.KeyAvailableSizes]))
	assert.Equal(t, `["S"]`, string(low[models.KeyAvailableSizes]))
	assert.Len(t, low, 1)
}

func TestMergeLayers_Empty(t *testing.T) {
	merged, err := mergeLayers(nil, models.RawDocument{})
	require.NoError(t, err)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
