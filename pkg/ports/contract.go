package ports

import (
	"context"
	"testing"

	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBackendContract runs a suite of tests to verify that a Backend implementation
// adheres to the defined interface contract. The backend must start empty.
func RunBackendContract(t *testing.T, backend Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load Missing Pointer", func(t *testing.T) {
		_, err := backend.LoadPointer(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Load Missing Document", func(t *testing.T) {
		for _, side := range domain.Sides {
			_, err := backend.LoadDocument(ctx, side)
			assert.ErrorIs(t, err, domain.ErrNotFound, "side %s", side)
		}
	})

	t.Run("Store and Load Pointer", func(t *testing.T) {
		require.NoError(t, backend.StorePointer(ctx, "42"))
		text, err := backend.LoadPointer(ctx)
		require.NoError(t, err)
		assert.Equal(t, "42", text)

		require.NoError(t, backend.StorePointer(ctx, "7"))
		text, err = backend.LoadPointer(ctx)
		require.NoError(t, err)
		assert.Equal(t, "7", text, "StorePointer should overwrite")
	})

	t.Run("Store and Load Documents Independently", func(t *testing.T) {
		require.NoError(t, backend.StoreDocument(ctx, domain.Left, "Hello\n\nWorld"))
		require.NoError(t, backend.StoreDocument(ctx, domain.Right, "Hola\n\nMundo"))

		left, err := backend.LoadDocument(ctx, domain.Left)
		require.NoError(t, err)
		assert.Equal(t, "Hello\n\nWorld", left)

		right, err := backend.LoadDocument(ctx, domain.Right)
		require.NoError(t, err)
		assert.Equal(t, "Hola\n\nMundo", right)
	})

	t.Run("Store Preserves Bytes", func(t *testing.T) {
		content := "  leading\r\n\n\n\ttrailing  \n"
		require.NoError(t, backend.StoreDocument(ctx, domain.Left, content))
		got, err := backend.LoadDocument(ctx, domain.Left)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("Store Empty Document", func(t *testing.T) {
		require.NoError(t, backend.StoreDocument(ctx, domain.Right, ""))
		got, err := backend.LoadDocument(ctx, domain.Right)
		require.NoError(t, err, "an empty book exists and is not ErrNotFound")
		assert.Equal(t, "", got)
	})
}
