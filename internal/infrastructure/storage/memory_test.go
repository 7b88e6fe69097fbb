package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDocumentStorage_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and retrieves documents", func(t *testing.T) {
		store := NewMemoryDocumentStorage()

		err := store.Upload(ctx, "receipts/REC-2026-413000.pdf", "application/pdf", []byte("%PDF-1.4"))
		require.NoError(t, err)

		data, ok := store.Get("receipts/REC-2026-413000.pdf")
		assert.True(t, ok)
		assert.Equal(t, []byte("%PDF-1.4"), data)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("same key overwrites", func(t *testing.T) {
		store := NewMemoryDocumentStorage()

		require.NoError(t, store.Upload(ctx, "k", "application/pdf", []byte("v1")))
		require.NoError(t, store.Upload(ctx, "k", "application/pdf", []byte("v2")))

		data, ok := store.Get("k")
		assert.True(t, ok)
		assert.Equal(t, []byte("v2"), data)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		store := NewMemoryDocumentStorage()
		assert.Error(t, store.Upload(ctx, "", "application/pdf", nil))
	})

	t.Run("stored bytes are detached from the caller's slice", func(t *testing.T) {
		store := NewMemoryDocumentStorage()

		buf := []byte("original")
		require.NoError(t, store.Upload(ctx, "k", "application/pdf", buf))
		buf[0] = 'X'

		data, _ := store.Get("k")
		assert.Equal(t, []byte("original"), data)
	})

	t.Run("missing key reports absence", func(t *testing.T) {
		store := NewMemoryDocumentStorage()
		_, ok := store.Get("missing")
		assert.False(t, ok)
	})
}
