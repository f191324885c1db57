// Package storage provides the key/value backends behind ports.KVStore: a
// JSON document on disk, an SQLite table and an in-memory map.
package storage

import (
	"fmt"

	"github.com/alexisbeaulieu97/devkit/internal/config"
	"github.com/alexisbeaulieu97/devkit/internal/ports"
	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

// Backend names accepted in storage.backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var (
	_ ports.KVStore = (*FileStore)(nil)
	_ ports.KVStore = (*SQLiteStore)(nil)
	_ ports.KVStore = (*MemoryStore)(nil)
)

// Open builds the backend selected by cfg.
func Open(cfg config.StorageConfig) (ports.KVStore, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileStore(cfg.Path)
	case BackendSQLite:
		return NewSQLiteStore(cfg.Path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, deverrors.NewStorageError(cfg.Backend, "open", "", fmt.Errorf("unknown backend %q", cfg.Backend))
	}
}
