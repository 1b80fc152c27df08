package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/bilingua/pkg/adapters/memory"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/aretw0/bilingua/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Backend = (*memory.Backend)(nil)

func TestMemoryBackend_Contract(t *testing.T) {
	ports.RunBackendContract(t, memory.NewBackend())
}

func TestMemoryBackend_Seeded(t *testing.T) {
	b := memory.NewBackendWith("A", "B")
	ctx := context.Background()

	left, err := b.LoadDocument(ctx, domain.Left)
	require.NoError(t, err)
	assert.Equal(t, "A", left)

	require.NoError(t, b.StoreDocument(ctx, domain.Right, "C"))
	assert.Equal(t, 0, b.Writes("left"))
	assert.Equal(t, 1, b.Writes("right"))
}
