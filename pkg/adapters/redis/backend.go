package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/bilingua/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the backend.
const DefaultPrefix = "bilingua:"

// Backend implements ports.Backend using Redis.
// Several server replicas can share the same books through it.
type Backend struct {
	client *backend.Client
	prefix string
}

type Option func(*Backend)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(b *Backend) {
		b.prefix = prefix
	}
}

// New creates a new Redis backend with options.
func New(address, password string, db int, opts ...Option) *Backend {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis backend from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Backend {
	b := &Backend{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Client exposes the underlying client so a Locker can share the connection pool.
func (b *Backend) Client() *backend.Client {
	return b.client
}

func (b *Backend) pointerKey() string {
	return b.prefix + "ptr"
}

func (b *Backend) documentKey(side domain.Side) string {
	return b.prefix + "book:" + string(side)
}

// LoadPointer retrieves the pointer text.
func (b *Backend) LoadPointer(ctx context.Context) (string, error) {
	return b.get(ctx, b.pointerKey())
}

// StorePointer overwrites the pointer text.
func (b *Backend) StorePointer(ctx context.Context, text string) error {
	if err := b.client.Set(ctx, b.pointerKey(), text, 0).Err(); err != nil {
		return fmt.Errorf("failed to store pointer in redis: %w", err)
	}
	return nil
}

// LoadDocument retrieves a book.
func (b *Backend) LoadDocument(ctx context.Context, side domain.Side) (string, error) {
	return b.get(ctx, b.documentKey(side))
}

// StoreDocument overwrites a book.
func (b *Backend) StoreDocument(ctx context.Context, side domain.Side, content string) error {
	if err := b.client.Set(ctx, b.documentKey(side), content, 0).Err(); err != nil {
		return fmt.Errorf("failed to store %s book in redis: %w", side, err)
	}
	return nil
}

func (b *Backend) get(ctx context.Context, key string) (string, error) {
	val, err := b.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return val, nil
}

// Close closes the redis client.
func (b *Backend) Close() error {
	return b.client.Close()
}
