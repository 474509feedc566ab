package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-pos/config"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
	assert.Contains(t, names, "report")
	assert.Contains(t, names, "menu")
}

func TestOpenStoreSQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Backend:    "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "pos.db"),
		},
	}

	store, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, err := openStore(context.Background(), &config.Config{
		Storage: config.StorageConfig{Backend: "mysql"},
	})
	assert.ErrorContains(t, err, "mysql")
}
