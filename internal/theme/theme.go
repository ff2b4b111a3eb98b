// Package theme persists the dashboard's light/dark preference.
package theme

import (
	"context"
	"fmt"
	"notfound/pkg/domain"
	"notfound/pkg/logger"
	"notfound/pkg/storage"

	"go.uber.org/zap"
)

// Key is the storage key the preference lives under.
const Key = "theme"

// Store reads and writes the theme preference through a storage port.
type Store struct {
	kv storage.Storage
}

// NewStore returns a Store backed by kv.
func NewStore(kv storage.Storage) *Store {
	return &Store{kv: kv}
}

// Load returns the persisted theme. A missing or unrecognized value yields
// domain.ThemeLight; a storage failure is returned alongside ThemeLight so
// callers can still render.
func (s *Store) Load(ctx context.Context) (domain.Theme, error) {
	v, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return domain.ThemeLight, fmt.Errorf("could not load theme: %w", err)
	}
	if !ok {
		return domain.ThemeLight, nil
	}

	t, known := domain.ParseTheme(v)
	if !known {
		logger.Debug(ctx, "ignoring unrecognized stored theme", zap.String("value", v))
	}

	return t, nil
}

// Save persists t.
func (s *Store) Save(ctx context.Context, t domain.Theme) error {
	if err := s.kv.Set(ctx, Key, t.String()); err != nil {
		return fmt.Errorf("could not save theme: %w", err)
	}

	return nil
}

// Toggle flips the stored theme in one transaction and returns the new value.
func (s *Store) Toggle(ctx context.Context) (domain.Theme, error) {
	var next domain.Theme
	err := s.kv.WithTx(ctx, func(kv storage.KV) error {
		v, _, err := kv.Get(ctx, Key)
		if err != nil {
			return err //nolint: wrapcheck
		}
		current, _ := domain.ParseTheme(v)
		next = current.Toggle()

		return kv.Set(ctx, Key, next.String()) //nolint: wrapcheck
	})
	if err != nil {
		return "", fmt.Errorf("could not toggle theme: %w", err)
	}

	return next, nil
}
