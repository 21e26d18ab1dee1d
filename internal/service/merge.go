package service

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/Ahcene43/WAW/models"
)

// mergeLayers shallow-merges documents given lowest priority first. A
// top-level key present in a later layer replaces the whole value of that key
// from earlier layers; nested members are never combined.
func mergeLayers(layers ...models.RawDocument) (models.RawDocument, error) {
	merged := models.RawDocument{}
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging configuration layers: %w", err)
		}
	}

	return merged, nil
}
