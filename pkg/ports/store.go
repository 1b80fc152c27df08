package ports

import (
	"context"

	"github.com/aretw0/bilingua/pkg/domain"
)

// ParagraphStore is the narrow interface transports call into.
type ParagraphStore interface {
	// Reload re-reads the pointer and both books from the backend.
	Reload(ctx context.Context) error

	// Pointer returns the current shared pointer.
	Pointer() int

	// SetPointer moves the pointer. Negative values fail with domain.ErrInvalidArgument.
	SetPointer(ctx context.Context, n int) error

	// Pair returns the paragraphs at pointer+shift; out-of-range sides are "".
	Pair(shift int) domain.ParagraphPair

	// Save writes pair at the current pointer, rewriting only the books that changed.
	Save(ctx context.Context, pair domain.ParagraphPair) error

	// SaveAt is Save returning the index saved at and the pair stored there afterwards.
	SaveAt(ctx context.Context, pair domain.ParagraphPair) (int, domain.ParagraphPair, error)
}
