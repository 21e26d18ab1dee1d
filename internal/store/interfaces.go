package store

import (
	"context"

	"github.com/Ahcene43/WAW/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Keys used in the local key/value storage.
const (
	KeyStoreConfig  = "storeConfig"
	KeyGithubConfig = "github_config"
	KeyStores       = "stores"
	KeyCurrentStore = "currentStore"
)

// KeyValueStore is the local persistent string store, modelled on browser
// localStorage.
type KeyValueStore interface {
	// Get returns the value of key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
	// Clear removes every key.
	Clear(ctx context.Context) error
}

// DocumentCache stores the last known configuration document under
// [KeyStoreConfig].
type DocumentCache interface {
	// Load returns the cached document split into top-level members.
	// Returns [ErrCacheEmpty] or [ErrCacheCorrupt] when nothing usable is
	// cached.
	Load(ctx context.Context) (models.RawDocument, error)
	// Save overwrites the cached document.
	Save(ctx context.Context, doc models.Document) error
}

// CredentialsRepository reads and writes the remote-host credentials kept in
// local storage.
type CredentialsRepository interface {
	// Current returns the credentials that address the remote document: the
	// selected store's credentials first, then the global record. ok is
	// false when neither holds a username and repo.
	Current(ctx context.Context) (creds models.Credentials, ok bool, err error)
	// SaveGlobal overwrites the global record under [KeyGithubConfig].
	SaveGlobal(ctx context.Context, creds models.Credentials) error
	// SaveStore adds or replaces one entry of the stores map.
	SaveStore(ctx context.Context, name string, profile models.StoreProfile) error
	// SelectStore sets [KeyCurrentStore].
	SelectStore(ctx context.Context, name string) error
	// Stores returns the stores map; a missing or malformed value yields an
	// empty map.
	Stores(ctx context.Context) (map[string]models.StoreProfile, error)
}
