package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/aretw0/bilingua/pkg/domain"
)

// Backend implements ports.Backend over a data directory holding the two books
// and the pointer file.
type Backend struct {
	Dir       string
	LeftName  string
	RightName string
}

// New creates a Backend rooted at dir.
// The book names are taken as given; no path traversal validation is performed.
func New(dir, leftName, rightName string) *Backend {
	return &Backend{
		Dir:       dir,
		LeftName:  leftName,
		RightName: rightName,
	}
}

// Path returns the file backing the book for side.
func (b *Backend) Path(side domain.Side) string {
	if side == domain.Right {
		return filepath.Join(b.Dir, b.RightName)
	}
	return filepath.Join(b.Dir, b.LeftName)
}

// PointerPath returns the pointer file location.
func (b *Backend) PointerPath() string {
	return filepath.Join(b.Dir, domain.PointerFileName)
}

// LoadPointer reads the raw pointer text.
func (b *Backend) LoadPointer(ctx context.Context) (string, error) {
	return readFile(b.PointerPath())
}

// StorePointer overwrites the pointer file with text (no trailing newline).
func (b *Backend) StorePointer(ctx context.Context, text string) error {
	return writeFileAtomic(b.PointerPath(), []byte(text))
}

// LoadDocument reads the full content of a book.
func (b *Backend) LoadDocument(ctx context.Context, side domain.Side) (string, error) {
	return readFile(b.Path(side))
}

// StoreDocument overwrites a book.
func (b *Backend) StoreDocument(ctx context.Context, side domain.Side, content string) error {
	return writeFileAtomic(b.Path(side), []byte(content))
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return string(data), nil
}

// writeFileAtomic writes to a temporary file first, syncs it, and then renames it over path.
// Readers never observe a half-written book.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(path); err == nil && runtime.GOOS == "windows" {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s for overwrite: %w", filepath.Base(path), err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
