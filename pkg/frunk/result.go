package frunk

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a single fallible computation: either a value of
// type T or a failure of type E.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Try converts the usual (value, error) pair into a Result.
func Try[T any](v T, err error) Result[T, error] {
	if !IsNil(err) {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// FromFallible copies any Fallible outcome into a Result.
func FromFallible[T, E any](f Fallible[T, E]) Result[T, E] {
	if f.IsOk() {
		return Ok[T, E](f.Value())
	}
	return Err[T](f.Error())
}

// MapErr rewrites the failure side, keeping id and creation time.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	out := Result[T, F]{
		id:        r.id,
		createdAt: r.createdAt,
		value:     r.value,
		isOk:      r.isOk,
	}
	if !r.isOk {
		out.err = fn(r.err)
	}
	return out
}

// Match collapses the result into a single value.
func Match[T, E, Out any](r Result[T, E], onOk func(T) Out, onErr func(E) Out) Out {
	if r.isOk {
		return onOk(r.value)
	}
	return onErr(r.err)
}

func (r Result[T, E]) Value() T {
	return r.value
}

func (r Result[T, E]) Error() E {
	return r.err
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Get returns the value, the failure and whether the result succeeded.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.isOk
}

func (r Result[T, E]) OrElse(def T) T {
	if r.isOk {
		return r.value
	}
	return def
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
