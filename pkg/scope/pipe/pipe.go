package pipe

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/scopefn/pkg/scope"
)

// Pipe wraps a value with a trace identity so it can be followed through
// a chain of scope operations.
type Pipe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
}

// From starts a pipe from a value.
func From[T any](v T) Pipe[T] {
	return Pipe[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
	}
}

// Value returns the carried value.
func (p Pipe[T]) Value() T {
	return p.value
}

// Id returns the pipe's trace id, assigned by From and kept by every step.
func (p Pipe[T]) Id() uuid.UUID {
	return p.id
}

// CreatedAt returns when the pipe was started (UTC).
func (p Pipe[T]) CreatedAt() time.Time {
	return p.createdAt
}

// Also runs action with the carried value for its side effect and returns
// a pipe with the same value and identity. The action must treat the value
// as read-only.
func (p Pipe[T]) Also(action func(T)) Pipe[T] {
	return Pipe[T]{
		id:        p.id,
		createdAt: p.createdAt,
		value:     scope.Also(p.value, action),
	}
}

// Apply runs action with a pointer to the carried value and returns a pipe
// carrying the mutated value under the same identity.
func (p Pipe[T]) Apply(action func(*T)) Pipe[T] {
	return Pipe[T]{
		id:        p.id,
		createdAt: p.createdAt,
		value:     scope.Apply(p.value, action),
	}
}

// Map transforms the carried value without changing its type.
func (p Pipe[T]) Map(f func(T) T) Pipe[T] {
	return Pipe[T]{
		id:        p.id,
		createdAt: p.createdAt,
		value:     scope.Using(p.value, f),
	}
}

// Using switches a pipe to a new value type, preserving its identity.
func Using[In, Out any](p Pipe[In], f func(In) Out) Pipe[Out] {
	return Pipe[Out]{
		id:        p.id,
		createdAt: p.createdAt,
		value:     scope.Using(p.value, f),
	}
}

// UsingTry switches a pipe to a new value type via a function that can
// fail. The error is returned unmodified; on error the returned pipe
// carries the zero Out under the original identity.
func UsingTry[In, Out any](p Pipe[In], f func(In) (Out, error)) (Pipe[Out], error) {
	v, err := scope.UsingTry(p.value, f)
	return Pipe[Out]{
		id:        p.id,
		createdAt: p.createdAt,
		value:     v,
	}, err
}
