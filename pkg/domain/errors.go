package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller passes a value the store rejects
// (e.g. a negative pointer). State is never mutated when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIOFailure is returned when the backing store cannot be read or written.
var ErrIOFailure = errors.New("io failure")

// ErrNotFound is returned by backends when a pointer or book does not exist yet.
var ErrNotFound = errors.New("not found")

// IOFailure wraps cause so that it matches both ErrIOFailure and the original error.
func IOFailure(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIOFailure, cause)
}
