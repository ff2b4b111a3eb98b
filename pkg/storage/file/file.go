// Package file implements storage.Storage on a single JSON document on disk.
// It is the default backend and needs no external services.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"notfound/pkg/storage"
	"os"
	"path/filepath"
	"sync"
)

const fileMode = 0o600

// Store keeps all keys in one JSON object. Every write rewrites the document
// through a temp file and a rename, so readers never see a partial file.
type Store struct {
	path string
	mu   sync.Mutex
}

// New returns a Store persisting to path. Parent directories are created on
// the first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Get returns the value stored under key. A missing file behaves like an
// empty store.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, storage.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := doc[key]

	return v, ok, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc[key] = value

	return s.write(doc)
}

// WithTx runs cb against an in-memory copy of the document and writes it
// back only when cb succeeds. The store is locked for the whole callback.
func (s *Store) WithTx(ctx context.Context, cb func(kv storage.KV) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	tx := &txView{doc: maps.Clone(doc)}
	if err := cb(tx); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}

	return s.write(tx.doc)
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error { return nil }

func (s *Store) read() (map[string]string, error) {
	doc := make(map[string]string)

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", s.path, err)
	}

	return doc, nil
}

func (s *Store) write(doc map[string]string) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode preferences: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()

		return fmt.Errorf("could not write temp file: %w", err)
	}
	if err := f.Chmod(fileMode); err != nil {
		_ = f.Close()

		return fmt.Errorf("could not chmod temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("could not replace %s: %w", s.path, err)
	}

	return nil
}

// txView is the KV handed to WithTx callbacks.
type txView struct {
	doc   map[string]string
	dirty bool
}

func (t *txView) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, storage.ErrEmptyKey
	}
	v, ok := t.doc[key]

	return v, ok, nil
}

func (t *txView) Set(_ context.Context, key, value string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	t.doc[key] = value
	t.dirty = true

	return nil
}

var _ storage.Storage = (*Store)(nil)
