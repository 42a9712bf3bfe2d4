// Package task describes task domain.
package task

import (
	"context"
	"errors"
)

// Domain errors reported by storage backends.
var (
	ErrInvalid     = errors.New("task name and date are required")
	ErrNotFound    = errors.New("task not found")
	ErrUnavailable = errors.New("task storage is unavailable")
)

// Lister lists tasks.
//
// Empty owner disables scoping.
type Lister interface {
	List(ctx context.Context, owner string) ([]Entity, error)
}

// Creator creates tasks.
type Creator interface {
	Create(ctx context.Context, owner string, value Value) (Entity, error)
}

// Updater updates tasks.
type Updater interface {
	Update(ctx context.Context, identity Identity, owner string, patch Patch) (Entity, error)
}

// Deleter deletes tasks.
type Deleter interface {
	Delete(ctx context.Context, identity Identity, owner string) error
}
