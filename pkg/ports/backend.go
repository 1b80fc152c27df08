package ports

import (
	"context"

	"github.com/aretw0/bilingua/pkg/domain"
)

// Backend persists the pointer and the two books as raw text.
// Parsing, paragraph splitting and fallback policy belong to the store.
type Backend interface {
	// LoadPointer returns the stored pointer text.
	// Returns domain.ErrNotFound if no pointer was ever written.
	LoadPointer(ctx context.Context) (string, error)

	// StorePointer overwrites the pointer text.
	StorePointer(ctx context.Context, text string) error

	// LoadDocument returns the full content of the book for side.
	// Returns domain.ErrNotFound if the book does not exist.
	LoadDocument(ctx context.Context, side domain.Side) (string, error)

	// StoreDocument overwrites the book for side.
	StoreDocument(ctx context.Context, side domain.Side, content string) error
}
