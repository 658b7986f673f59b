// Package option provides Option[T], a value that may be absent.
package option

import "fmt"

type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer returns None for a nil pointer and Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
