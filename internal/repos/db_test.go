package repos_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopconnect/internal/repos"
)

// A fresh in-memory database must come up fully seeded: schema, demo shop,
// and a generated api key plus the informational apiUrl for every shop.
func TestOpenDBInMemorySeedsAPIAccess(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	settings := repos.NewSettingsRepo(db)

	key, err := settings.Get(repos.SettingsModule, "apiKey", "oxbaseshop")
	require.NoError(t, err)
	assert.NotEmpty(t, key, "a key is generated on first start")

	apiURL, err := settings.Get(repos.SettingsModule, "apiUrl", "oxbaseshop")
	require.NoError(t, err)
	assert.Equal(t, "https://demoshop.local/api", apiURL)
}

// Reopening an existing database must keep the key that was generated on the
// first start instead of rotating it.
func TestOpenDBKeepsExistingAPIKey(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "shop.db")

	db, err := repos.OpenDB(dsn)
	require.NoError(t, err)
	first, err := repos.NewSettingsRepo(db).Get(repos.SettingsModule, "apiKey", "oxbaseshop")
	require.NoError(t, err)
	require.NotEmpty(t, first)
	require.NoError(t, db.Close())

	db, err = repos.OpenDB(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	second, err := repos.NewSettingsRepo(db).Get(repos.SettingsModule, "apiKey", "oxbaseshop")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
