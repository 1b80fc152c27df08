package bilingua

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/bilingua/internal/config"
	"github.com/aretw0/bilingua/internal/logging"
	"github.com/aretw0/bilingua/internal/runtime"
	"github.com/aretw0/bilingua/pkg/adapters/file"
	"github.com/aretw0/bilingua/pkg/adapters/redis"
	"github.com/aretw0/bilingua/pkg/domain"
	"github.com/aretw0/bilingua/pkg/ports"
)

// Version is the release of the service, reported by /info and the version command.
//
//go:embed VERSION
var Version string

// Status is a snapshot of the pointer and paragraph counts.
type Status = runtime.Status

// Service is the high-level entry point: a paragraph store bound to its backend.
type Service struct {
	store   *runtime.Store
	backend ports.Backend
	locker  ports.Locker
	config  *config.Config
	hooks   domain.Hooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithBackend injects a custom backend, bypassing bi.properties and the file system.
func WithBackend(b ports.Backend) Option {
	return func(s *Service) {
		s.backend = b
	}
}

// WithConfig uses an already loaded configuration instead of reading the directory.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// New opens the books in dir and performs the initial load.
// If WithBackend is provided, dir can be empty and no configuration is read.
// Any failure here is fatal: the caller must not start serving.
func New(dir string, opts ...Option) (*Service, error) {
	return NewContext(context.Background(), dir, opts...)
}

// NewContext is New with a context for the initial load.
func NewContext(ctx context.Context, dir string, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = logging.NewNop()
	}

	if svc.backend == nil {
		if svc.config == nil {
			cfg, err := config.Load(dir, nil)
			if err != nil {
				return nil, err
			}
			svc.config = cfg
		}
		backend, locker, err := NewBackend(svc.config)
		if err != nil {
			return nil, err
		}
		svc.backend, svc.locker = backend, locker
	}

	storeOpts := []runtime.Option{
		runtime.WithLogger(svc.logger),
		runtime.WithHooks(svc.hooks),
	}
	if svc.locker != nil {
		storeOpts = append(storeOpts, runtime.WithLocker(svc.locker, svc.config.LockTTL))
	}

	store, err := runtime.Open(ctx, svc.backend, storeOpts...)
	if err != nil {
		_ = svc.Close()
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	svc.store = store

	st := store.Status()
	svc.logger.Info("Books loaded", "pointer", st.Pointer, "left", st.LeftCount, "right", st.RightCount)
	return svc, nil
}

// NewBackend builds the backend selected by cfg. The redis backend comes with a
// distributed locker sharing its connection.
func NewBackend(cfg *config.Config) (ports.Backend, ports.Locker, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return file.New(cfg.Dir, cfg.LeftName, cfg.RightName), nil, nil
	case config.BackendRedis:
		b := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithPrefix(cfg.RedisPrefix))
		return b, redis.NewLocker(b.Client(), cfg.RedisPrefix), nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Reload re-reads the pointer and both books.
func (s *Service) Reload(ctx context.Context) error {
	return s.store.Reload(ctx)
}

// Pointer returns the shared pointer.
func (s *Service) Pointer() int {
	return s.store.Pointer()
}

// SetPointer moves the shared pointer. Negative values fail with domain.ErrInvalidArgument.
func (s *Service) SetPointer(ctx context.Context, n int) error {
	return s.store.SetPointer(ctx, n)
}

// Pair returns the paragraph pair at pointer+shift.
func (s *Service) Pair(shift int) domain.ParagraphPair {
	return s.store.Pair(shift)
}

// Save writes pair at the current pointer.
func (s *Service) Save(ctx context.Context, pair domain.ParagraphPair) error {
	return s.store.Save(ctx, pair)
}

// SaveAt writes pair at the current pointer and returns that index with the stored pair.
func (s *Service) SaveAt(ctx context.Context, pair domain.ParagraphPair) (int, domain.ParagraphPair, error) {
	return s.store.SaveAt(ctx, pair)
}

// Status returns the pointer and paragraph counts.
func (s *Service) Status() Status {
	return s.store.Status()
}

// Config returns the configuration the service was built from (nil with WithBackend).
func (s *Service) Config() *config.Config {
	return s.config
}

// Close releases backend resources (e.g. the redis connection pool).
func (s *Service) Close() error {
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
