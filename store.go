package shoply

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// LedgerKey is the fixed key under which the serialized ledger is stored.
const LedgerKey = "stocks"

// Store is an opaque key-value byte store. Get reports a missing key with an
// error satisfying errors.Is(err, fs.ErrNotExist).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// DirStore is a Store keeping one file per key under a directory. The
// directory is created on first write.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir. The directory does not need to
// exist yet.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".jsonl")
}

func (s *DirStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return data, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot delete key %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	values map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return slices.Clone(value), nil
}

func (s *MemStore) Set(key string, value []byte) error {
	s.values[key] = slices.Clone(value)
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
