// internal/adapters/out/localstore/cart_store_test.go
package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "coutellerie/internal/domain/cart"
)

func newStore(t *testing.T) *CartStore {
	t.Helper()
	s, err := NewCartStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCartStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	items := []cartdom.LineItem{
		{ID: "p1", Name: "Couteau pliant", UnitPrice: 42, Quantity: 2,
			Engraving: &cartdom.EngravingSelection{OptionID: "grav-1", Label: "Texte", Price: 5, Text: "JD"}},
	}
	require.NoError(t, s.Save(ctx, "sess-1", items))

	got, err := s.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, 2, got[0].Quantity)
	require.NotNil(t, got[0].Engraving)
	assert.Equal(t, "JD", got[0].Engraving.Text)
}

func TestCartStoreMissingKey(t *testing.T) {
	s := newStore(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, cartdom.ErrNotFound)
}

func TestCartStoreCorruptBlob(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "sess-1.json"), []byte("{not json"), 0o644))

	_, err := s.Load(ctx, "sess-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, cartdom.ErrNotFound)
}

func TestCartStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Save(ctx, "sess-1", []cartdom.LineItem{{ID: "p1", Quantity: 1}}))

	require.NoError(t, s.Delete(ctx, "sess-1"))
	_, err := s.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, cartdom.ErrNotFound)

	// deleting an absent key is fine
	assert.NoError(t, s.Delete(ctx, "sess-1"))
}

func TestCartStoreSanitizesKeys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Save(ctx, "../escape", []cartdom.LineItem{{ID: "p1", Quantity: 1}}))
	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "___escape.json", entries[0].Name())
}
