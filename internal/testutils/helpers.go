package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/stretchr/testify/require"
)

// SetupDataDir creates a temporary data directory holding bi.properties (en.txt
// and es.txt as the two books) plus the given files, keyed by name.
// It fails the test immediately on error.
func SetupDataDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	props := "left_name=en.txt\nright_name=es.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.PropertiesFileName), []byte(props), 0o644),
		"Failed to write properties")

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644),
			"Failed to write %s", name)
	}
	return dir
}

// ReadFile returns the content of name inside dir.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err, "Failed to read %s", name)
	return string(data)
}
