package frunk

import (
	"time"

	"github.com/google/uuid"
)

// Fallible is implemented by any two-variant outcome that can be lifted into
// a validation accumulator.
type Fallible[T, E any] interface {
	// IsOk reports whether the computation succeeded
	IsOk() bool
	// Value returns the successful value
	Value() T
	// Error returns the failure, meaningful only when IsOk is false
	Error() E
}

// Tracked exposes the identity and creation time of an outcome.
type Tracked interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ Fallible[int, error] = Result[int, error]{}
	_ Tracked              = Result[int, error]{}
)
