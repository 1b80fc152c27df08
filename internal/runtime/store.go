package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/bilingua/internal/logging"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/aretw0/bilingua/pkg/ports"
)

// lockKey is the distributed lock name shared by every replica.
const lockKey = "books"

// Status is a snapshot of the store used by info endpoints and the CLI.
type Status struct {
	Pointer    int `json:"pointer" yaml:"pointer"`
	LeftCount  int `json:"left_paragraphs" yaml:"left_paragraphs"`
	RightCount int `json:"right_paragraphs" yaml:"right_paragraphs"`
}

// Store is the paragraph store: two books, one shared pointer and a single lock.
//
// Every public method holds mu for its full duration, reads included, so a save
// and the reload that follows it appear atomic to other callers.
type Store struct {
	mu sync.Mutex

	backend ports.Backend
	locker  ports.Locker
	lockTTL time.Duration
	hooks   domain.Hooks
	logger  *slog.Logger

	pointer int
	left    domain.Document
	right   domain.Document
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithHooks registers lifecycle observers (metrics, audit logs).
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Store) {
		s.hooks = hooks
	}
}

// WithLocker makes mutations take a cross-process lock and refresh the books
// from the backend before applying an edit. Use it when replicas share a backend.
func WithLocker(locker ports.Locker, ttl time.Duration) Option {
	return func(s *Store) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

// NewStore creates an empty store over backend. Call Reload before serving.
func NewStore(backend ports.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		lockTTL: 5 * time.Second,
		logger:  logging.NewNop(),
		left:    domain.Document{},
		right:   domain.Document{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and performs the initial load.
func Open(ctx context.Context, backend ports.Backend, opts ...Option) (*Store, error) {
	s := NewStore(backend, opts...)
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the pointer and both books, replacing all in-memory state.
// A failure while loading the books leaves whatever was loaded so far in place.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointer = s.loadPointer(ctx)
	return s.loadDocuments(ctx)
}

// Pointer returns the current pointer.
func (s *Store) Pointer() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer
}

// SetPointer moves the shared pointer and persists it.
// The in-memory value is updated before the write, so an IO failure leaves
// memory ahead of the backend.
func (s *Store) SetPointer(ctx context.Context, n int) (err error) {
	if n < 0 {
		return fmt.Errorf("%w: pointer cannot be negative, got %d", domain.ErrInvalidArgument, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	event := domain.PointerEvent{From: s.pointer, To: n}
	defer func() {
		event.Err = err
		if s.hooks.OnPointerSet != nil {
			s.hooks.OnPointerSet(ctx, event)
		}
	}()

	s.pointer = n
	if err := s.backend.StorePointer(ctx, strconv.Itoa(n)); err != nil {
		s.logger.Error("Pointer write failed, memory and backend diverge", "pointer", n, "error", err)
		return domain.IOFailure("store pointer", err)
	}
	s.logger.Debug("Pointer set", "from", event.From, "to", n)
	return nil
}

// Pair returns the paragraphs at pointer+shift. Each side is checked against its
// own book, so books of different length simply yield "" past their end.
func (s *Store) Pair(shift int) domain.ParagraphPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.pointer + shift
	return domain.ParagraphPair{
		Left:  s.left.At(index),
		Right: s.right.At(index),
	}
}

// Save stores pair at the current pointer.
//
// A side is rewritten only when its index exists and its text differs. When
// anything changed, the books are reloaded from the backend afterwards so memory
// matches what was persisted. Writes are not transactional: if the right book
// fails after the left one was written, the left change stays.
func (s *Store) Save(ctx context.Context, pair domain.ParagraphPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, pair)
}

// SaveAt is Save that also reports, under the same lock, the index the pair was
// saved at and the pair now stored there.
func (s *Store) SaveAt(ctx context.Context, pair domain.ParagraphPair) (int, domain.ParagraphPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, pair); err != nil {
		return s.pointer, domain.ParagraphPair{}, err
	}
	return s.pointer, domain.ParagraphPair{
		Left:  s.left.At(s.pointer),
		Right: s.right.At(s.pointer),
	}, nil
}

// save reports every outcome to OnSave, lock and refresh failures included.
func (s *Store) save(ctx context.Context, pair domain.ParagraphPair) (err error) {
	event := domain.SaveEvent{Index: s.pointer}
	defer func() {
		event.Err = err
		if s.hooks.OnSave != nil {
			s.hooks.OnSave(ctx, event)
		}
	}()

	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if s.locker != nil {
		// Another replica may have written since our last load.
		if err := s.loadDocuments(ctx); err != nil {
			return err
		}
	}

	event.LeftChanged = s.left.Replace(s.pointer, pair.Left)
	event.RightChanged = s.right.Replace(s.pointer, pair.Right)

	if event.LeftChanged {
		if err := s.writeDocument(ctx, domain.Left, s.left); err != nil {
			return err
		}
		event.LeftWritten = true
	}
	if event.RightChanged {
		if err := s.writeDocument(ctx, domain.Right, s.right); err != nil {
			return err
		}
		event.RightWritten = true
	}

	if !event.Changed() {
		s.logger.Debug("Save skipped, nothing changed", "index", event.Index)
		return nil
	}

	s.logger.Info("Paragraphs saved", "index", event.Index, "left", event.LeftChanged, "right", event.RightChanged)
	return s.loadDocuments(ctx)
}

// Status returns the pointer and the paragraph count of each book.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Pointer:    s.pointer,
		LeftCount:  s.left.Len(),
		RightCount: s.right.Len(),
	}
}

// -- Helpers (callers hold mu) --

// loadPointer never fails: a missing, unreadable or malformed pointer means 0.
func (s *Store) loadPointer(ctx context.Context) int {
	text, err := s.backend.LoadPointer(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("Pointer unreadable, defaulting to 0", "error", err)
		}
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		s.logger.Warn("Pointer malformed, defaulting to 0", "content", text)
		return 0
	}
	return n
}

// loadDocuments replaces both books; a missing book is an empty one.
func (s *Store) loadDocuments(ctx context.Context) error {
	left, err := s.loadDocument(ctx, domain.Left)
	if err != nil {
		return err
	}
	s.left = left

	right, err := s.loadDocument(ctx, domain.Right)
	if err != nil {
		return err
	}
	s.right = right

	if s.hooks.OnReload != nil {
		s.hooks.OnReload(ctx, domain.ReloadEvent{
			Pointer:    s.pointer,
			LeftCount:  s.left.Len(),
			RightCount: s.right.Len(),
		})
	}
	return nil
}

func (s *Store) loadDocument(ctx context.Context, side domain.Side) (domain.Document, error) {
	content, err := s.backend.LoadDocument(ctx, side)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug("Book missing, treating as empty", "side", side)
			return domain.Document{}, nil
		}
		return nil, domain.IOFailure(fmt.Sprintf("load %s book", side), err)
	}
	return domain.SplitParagraphs(content), nil
}

func (s *Store) writeDocument(ctx context.Context, side domain.Side, doc domain.Document) error {
	if err := s.backend.StoreDocument(ctx, side, doc.Join()); err != nil {
		s.logger.Error("Book write failed", "side", side, "error", err)
		return domain.IOFailure(fmt.Sprintf("store %s book", side), err)
	}
	return nil
}

// acquire takes the distributed lock when one is configured.
func (s *Store) acquire(ctx context.Context) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}
	unlock, err := s.locker.Lock(ctx, lockKey, s.lockTTL)
	if err != nil {
		return nil, domain.IOFailure("acquire lock", err)
	}
	return func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("Failed to release lock", "error", err)
		}
	}, nil
}
