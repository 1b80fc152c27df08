package memory

import (
	"context"
	"sync"

	"github.com/aretw0/bilingua/pkg/domain"
)

// Backend implements ports.Backend in memory.
// Safe for concurrent use.
type Backend struct {
	mu         sync.RWMutex
	pointer    *string
	documents  map[domain.Side]string
	writeCount map[string]int
}

// NewBackend creates an empty in-memory backend.
func NewBackend() *Backend {
	return &Backend{
		documents:  make(map[domain.Side]string),
		writeCount: make(map[string]int),
	}
}

// NewBackendWith creates a backend pre-seeded with the two books.
func NewBackendWith(left, right string) *Backend {
	b := NewBackend()
	b.documents[domain.Left] = left
	b.documents[domain.Right] = right
	return b
}

// LoadPointer returns the stored pointer text.
func (b *Backend) LoadPointer(ctx context.Context) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.pointer == nil {
		return "", domain.ErrNotFound
	}
	return *b.pointer, nil
}

// StorePointer overwrites the pointer text.
func (b *Backend) StorePointer(ctx context.Context, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pointer = &text
	b.writeCount["ptr"]++
	return nil
}

// LoadDocument returns the book for side.
func (b *Backend) LoadDocument(ctx context.Context, side domain.Side) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	content, ok := b.documents[side]
	if !ok {
		return "", domain.ErrNotFound
	}
	return content, nil
}

// StoreDocument overwrites the book for side.
func (b *Backend) StoreDocument(ctx context.Context, side domain.Side, content string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.documents[side] = content
	b.writeCount[string(side)]++
	return nil
}

// Writes reports how many times the pointer ("ptr") or a book ("left", "right") was written.
func (b *Backend) Writes(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.writeCount[name]
}
