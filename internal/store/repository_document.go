package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/models"
)

// documentCache is the [DocumentCache] over a [KeyValueStore]. The document is
// stored as compact JSON under [KeyStoreConfig].
type documentCache struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewDocumentCache constructs a [DocumentCache] on top of kv.
func NewDocumentCache(kv KeyValueStore, log *logger.Logger) DocumentCache {
	return &documentCache{kv: kv, logger: log}
}

// Load implements [DocumentCache].
func (c *documentCache) Load(ctx context.Context) (models.RawDocument, error) {
	value, err := c.kv.Get(ctx, KeyStoreConfig)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrCacheEmpty
		}
		return nil, fmt.Errorf("read cached configuration: %w", err)
	}

	doc, err := models.ParseRawDocument([]byte(value))
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "*documentCache.Load").Msg("cached configuration is not a JSON object")
		return nil, fmt.Errorf("%w: %w", ErrCacheCorrupt, err)
	}

	return doc, nil
}

// Save implements [DocumentCache].
func (c *documentCache) Save(ctx context.Context, doc models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}

	if err = c.kv.Set(ctx, KeyStoreConfig, string(data)); err != nil {
		c.logger.Err(err).Str("func", "*documentCache.Save").Msg("error caching configuration")
		return fmt.Errorf("write cached configuration: %w", err)
	}

	return nil
}
