package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devkit/internal/config"
	"github.com/alexisbeaulieu97/devkit/internal/ports"
	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

func backends(t *testing.T) map[string]ports.KVStore {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileStore(filepath.Join(dir, "nested", "storage.json"))
	require.NoError(t, err)
	db, err := NewSQLiteStore(filepath.Join(dir, "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]ports.KVStore{
		BackendFile:   file,
		BackendSQLite: db,
		BackendMemory: NewMemoryStore(),
	}
}

func TestKVStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := store.Get(ctx, "devtools-snippets")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.Set(ctx, "devtools-snippets", `[]`))
			require.NoError(t, store.Set(ctx, "devtools-snippets", `[{"id":"1"}]`))

			value, found, err := store.Get(ctx, "devtools-snippets")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[{"id":"1"}]`, value)

			require.NoError(t, store.Delete(ctx, "devtools-snippets"))
			require.NoError(t, store.Delete(ctx, "devtools-snippets"))

			_, found, err = store.Get(ctx, "devtools-snippets")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", "v"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must be renamed away")

	second, err := NewFileStore(path)
	require.NoError(t, err)
	value, found, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path)
	var storageErr *deverrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, BackendFile, storageErr.Backend)
}

func TestSQLiteStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.db")

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", "v"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	value, found, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestSQLiteStoreInMemory(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "a", "1"))
	value, found, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", value)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(config.StorageConfig{Backend: BackendFile, Path: filepath.Join(dir, "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	store, err = Open(config.StorageConfig{Backend: BackendSQLite, Path: filepath.Join(dir, "s.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, store.Close())

	store, err = Open(config.StorageConfig{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = Open(config.StorageConfig{Backend: "redis"})
	require.Error(t, err)
}
