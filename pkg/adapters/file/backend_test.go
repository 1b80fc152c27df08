package file_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aretw0/bilingua/pkg/adapters/file"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/aretw0/bilingua/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Backend implements ports.Backend
var _ ports.Backend = (*file.Backend)(nil)

func TestFileBackend_Contract(t *testing.T) {
	backend := file.New(t.TempDir(), "en.txt", "es.txt")
	ports.RunBackendContract(t, backend)
}

func TestFileBackend_Layout(t *testing.T) {
	dir := t.TempDir()
	backend := file.New(dir, "en.txt", "es.txt")
	ctx := context.Background()

	require.NoError(t, backend.StorePointer(ctx, "12"))
	require.NoError(t, backend.StoreDocument(ctx, domain.Left, "A\n\nB"))
	require.NoError(t, backend.StoreDocument(ctx, domain.Right, "C"))

	ptr, err := os.ReadFile(filepath.Join(dir, "ptr.txt"))
	require.NoError(t, err)
	assert.Equal(t, "12", string(ptr), "pointer is written without trailing newline")

	left, err := os.ReadFile(filepath.Join(dir, "en.txt"))
	require.NoError(t, err)
	assert.Equal(t, "A\n\nB", string(left))

	right, err := os.ReadFile(filepath.Join(dir, "es.txt"))
	require.NoError(t, err)
	assert.Equal(t, "C", string(right))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "temporary files must not be left behind")
}

func TestFileBackend_PreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	backend := file.New(dir, "en.txt", "es.txt")
	require.NoError(t, backend.StoreDocument(context.Background(), domain.Left, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileBackend_WriteFailure(t *testing.T) {
	backend := file.New(filepath.Join(t.TempDir(), "missing"), "en.txt", "es.txt")
	err := backend.StoreDocument(context.Background(), domain.Left, "text")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
