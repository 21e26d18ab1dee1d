package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahcene43/WAW/internal/config"
	"github.com/Ahcene43/WAW/internal/logger"
	"github.com/Ahcene43/WAW/models"
)

// TestNewStorages_SQLite opens a file-backed database, writes through every
// repository, and reopens it to check that the values survive.
func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DSN: filepath.Join(t.TempDir(), "storefront.db")}

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Documents.Save(ctx, models.Document{AvailableSizes: []string{"S"}}))
	require.NoError(t, s.Credentials.SaveGlobal(ctx, models.Credentials{Username: "u", Repo: "r"}))
	require.NoError(t, s.KeyValue.Set(ctx, "extra", "1"))
	require.NoError(t, s.KeyValue.Set(ctx, "extra", "2"))
	require.NoError(t, s.Close())

	reopened, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	raw, err := reopened.Documents.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, raw, models.KeyAvailableSizes)

	creds, ok, err := reopened.Credentials.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u", creds.Username)

	v, err := reopened.KeyValue.Get(ctx, "extra")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	keys, err := reopened.KeyValue.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"extra", KeyGithubConfig, KeyStoreConfig}, keys)
}

func TestNewMemoryStorages_Close(t *testing.T) {
	s := NewMemoryStorages(logger.Nop())
	require.NotNil(t, s.KeyValue)
	require.NotNil(t, s.Documents)
	require.NotNil(t, s.Credentials)
	assert.NoError(t, s.Close())
}

func TestDialectFromDSN(t *testing.T) {
	assert.Equal(t, DialectPostgres, DialectFromDSN("postgres://u:p@localhost/db"))
	assert.Equal(t, DialectPostgres, DialectFromDSN("PostgreSQL://localhost/db"))
	assert.Equal(t, DialectSQLite, DialectFromDSN("storefront.db"))
	assert.Equal(t, DialectSQLite, DialectFromDSN(":memory:"))
}
