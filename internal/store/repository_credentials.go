package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/models"
)

// credentialsRepository is the [CredentialsRepository] over a
// [KeyValueStore]. Records are JSON except [KeyCurrentStore], which holds the
// bare store name.
type credentialsRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewCredentialsRepository constructs a [CredentialsRepository] on top of kv.
func NewCredentialsRepository(kv KeyValueStore, log *logger.Logger) CredentialsRepository {
	return &credentialsRepository{kv: kv, logger: log}
}

// Current implements [CredentialsRepository].
func (r *credentialsRepository) Current(ctx context.Context) (models.Credentials, bool, error) {
	stores, err := r.Stores(ctx)
	if err != nil {
		return models.Credentials{}, false, err
	}

	current, err := r.getOptional(ctx, KeyCurrentStore)
	if err != nil {
		return models.Credentials{}, false, err
	}
	if profile, ok := stores[current]; current != "" && ok && profile.Github != nil && profile.Github.CanRead() {
		return *profile.Github, true, nil
	}

	var global models.Credentials
	found, err := r.getJSON(ctx, KeyGithubConfig, &global)
	if err != nil {
		return models.Credentials{}, false, err
	}
	if found && global.CanRead() {
		return global, true, nil
	}

	return models.Credentials{}, false, nil
}

// SaveGlobal implements [CredentialsRepository].
func (r *credentialsRepository) SaveGlobal(ctx context.Context, creds models.Credentials) error {
	return r.setJSON(ctx, KeyGithubConfig, creds)
}

// SaveStore implements [CredentialsRepository].
func (r *credentialsRepository) SaveStore(ctx context.Context, name string, profile models.StoreProfile) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyStoreName
	}

	stores, err := r.Stores(ctx)
	if err != nil {
		return err
	}
	stores[name] = profile

	return r.setJSON(ctx, KeyStores, stores)
}

// SelectStore implements [CredentialsRepository].
func (r *credentialsRepository) SelectStore(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyStoreName
	}

	if err := r.kv.Set(ctx, KeyCurrentStore, name); err != nil {
		return fmt.Errorf("select store: %w", err)
	}

	return nil
}

// Stores implements [CredentialsRepository].
func (r *credentialsRepository) Stores(ctx context.Context) (map[string]models.StoreProfile, error) {
	var stores map[string]models.StoreProfile
	found, err := r.getJSON(ctx, KeyStores, &stores)
	if err != nil {
		return nil, err
	}
	if !found || stores == nil {
		stores = make(map[string]models.StoreProfile)
	}

	return stores, nil
}

func (r *credentialsRepository) getOptional(ctx context.Context, key string) (string, error) {
	value, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}

	return value, nil
}

// getJSON decodes the value of key into dst. found is false for a missing or
// malformed value; malformed values are logged and otherwise ignored.
func (r *credentialsRepository) getJSON(ctx context.Context, key string, dst any) (found bool, err error) {
	value, err := r.getOptional(ctx, key)
	if err != nil || value == "" {
		return false, err
	}

	if err = json.Unmarshal([]byte(value), dst); err != nil {
		r.logger.Warn().Err(err).Str("func", "*credentialsRepository.getJSON").Str("key", key).
			Msg("ignoring malformed stored value")
		return false, nil
	}

	return true, nil
}

func (r *credentialsRepository) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err = r.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}
