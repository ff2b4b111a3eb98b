// Package storage defines the key/value port the dashboard persists its
// preferences through. Backends live in subpackages (file, postgres).
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// KV is a string key/value store. A missing key is reported with ok=false and
// a nil error.
type KV interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// TxStorage is a KV bound to an open transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	KV

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional handle with lifecycle management.
type Storage interface {
	KV

	// Close releases any resources held by the implementation. After Close,
	// the instance should not be used.
	Close() error

	// WithTx runs cb against a transactional view of the store. Changes made
	// through that view are persisted only when cb returns nil.
	WithTx(ctx context.Context, cb func(kv KV) error) error
}
