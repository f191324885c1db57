package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	deverrors "github.com/alexisbeaulieu97/devkit/pkg/errors"
)

const fileVersion = "1.0"

// fileDocument is the on-disk layout of a FileStore.
type fileDocument struct {
	Version string            `json:"version"`
	Entries map[string]string `json:"entries"`
}

// FileStore keeps every key in one JSON document on disk. Each write
// rewrites the document atomically.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	entries map[string]string
}

// NewFileStore creates a FileStore and loads it from disk. A missing file
// starts an empty store.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: fileVersion,
		entries: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, deverrors.NewStorageError(BackendFile, "init", "", fmt.Errorf("create directory: %w", err))
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return deverrors.NewStorageError(BackendFile, "load", "", fmt.Errorf("parse %s: %w", s.path, err))
	}

	if doc.Version != "" {
		s.version = doc.Version
	}
	if doc.Entries != nil {
		s.entries = doc.Entries
	}
	return nil
}

// Get returns the value stored under key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	return v, ok, nil
}

// Set stores value under key and persists the document.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[key]
	s.entries[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return deverrors.NewStorageError(BackendFile, "set", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[key]
	if !existed {
		return nil
	}
	delete(s.entries, key)
	if err := s.save(); err != nil {
		s.entries[key] = prev
		return deverrors.NewStorageError(BackendFile, "delete", key, err)
	}
	return nil
}

// Close is a no-op; every write is already on disk.
func (s *FileStore) Close() error { return nil }

// save writes the document to a temporary file and renames it into place.
// Callers hold the write lock.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(fileDocument{Version: s.version, Entries: s.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}
