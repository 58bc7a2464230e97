// internal/adapters/out/localstore/cart_store.go
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	cartdom "coutellerie/internal/domain/cart"
)

// CartStore is the durable local key/value store carts survive reloads in:
// one JSON blob per key, under a single directory. Local, schemaless and
// best-effort, like the browser storage it replaces.
//
// Writes go through a temp file + rename so a crash mid-write leaves the
// previous blob intact.
type CartStore struct {
	dir string
	mu  sync.Mutex
}

// NewCartStore ensures dir exists and returns the store.
func NewCartStore(dir string) (*CartStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("localstore: dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir: %w", err)
	}
	return &CartStore{dir: dir}, nil
}

// Load reads the blob for key. A missing file maps to cart.ErrNotFound;
// corrupt JSON is returned as an error for the caller to degrade on.
func (s *CartStore) Load(_ context.Context, key string) ([]cartdom.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cartdom.ErrNotFound
		}
		return nil, fmt.Errorf("localstore: read %q: %w", key, err)
	}

	var items []cartdom.LineItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("localstore: parse %q: %w", key, err)
	}
	return items, nil
}

// Save serializes the full item list under key, replacing any previous blob.
func (s *CartStore) Save(_ context.Context, key string, items []cartdom.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []cartdom.LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("localstore: marshal %q: %w", key, err)
	}

	final := s.path(key)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("localstore: write %q: %w", key, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("localstore: commit %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob for key; absent is fine.
func (s *CartStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: delete %q: %w", key, err)
	}
	return nil
}

// path maps a key to its file, sanitized so a hostile key cannot escape dir.
func (s *CartStore) path(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "cart"
	}
	key = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, key+".json")
}
