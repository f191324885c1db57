package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

const (
	sqliteDriver      = "sqlite"
	sqliteBusyTimeout = 10_000
	memoryDSN         = ":memory:"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL DEFAULT (unixepoch())
)`

// SQLiteStore keeps keys in a single "kv" table.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (creating if needed) the database at path and applies
// WAL journaling, a busy timeout and NORMAL synchronous mode. ":memory:"
// opens a private in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != memoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, deverrors.NewStorageError(BackendSQLite, "init", "", fmt.Errorf("create directory: %w", err))
		}
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, deverrors.NewStorageError(BackendSQLite, "open", "", err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", sqliteBusyTimeout),
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range append(pragmas, kvSchema) {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, deverrors.NewStorageError(BackendSQLite, "init", "", fmt.Errorf("%s: %w", p, err))
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, deverrors.NewStorageError(BackendSQLite, "ping", "", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, deverrors.NewStorageError(BackendSQLite, "get", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, unixepoch())
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return deverrors.NewStorageError(BackendSQLite, "set", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return deverrors.NewStorageError(BackendSQLite, "delete", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
