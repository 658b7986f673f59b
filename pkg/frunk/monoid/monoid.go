package monoid

import "github.com/ib-77/frunk/pkg/frunk/semigroup"

// Identity is Combinable with a neutral element. Empty is called on the zero
// value of T, so it must not depend on the receiver.
type Identity[T any] interface {
	semigroup.Combinable[T]
	Empty() T
}

// Monoid is a semigroup instance record with a neutral element:
// Combine(Empty(), a) == a == Combine(a, Empty()).
type Monoid[T any] interface {
	semigroup.Semigroup[T]
	Empty() T
}

type instance[T any] struct {
	semigroup.Semigroup[T]
	empty func() T
}

func (m instance[T]) Empty() T {
	return m.empty()
}

// New builds a Monoid from a semigroup and a constructor of its identity.
func New[T any](s semigroup.Semigroup[T], empty func() T) Monoid[T] {
	return instance[T]{Semigroup: s, empty: empty}
}

// Native returns the instance record backed by T's own methods.
func Native[T Identity[T]]() Monoid[T] {
	return New(semigroup.Native[T](), Empty[T])
}

// Empty returns the identity of T.
func Empty[T Identity[T]]() T {
	var zero T
	return zero.Empty()
}

// CombineAll folds xs left to right starting from the identity; no values
// yields the identity.
func CombineAll[T Identity[T]](xs ...T) T {
	acc := Empty[T]()
	for _, v := range xs {
		acc = acc.Combine(v)
	}
	return acc
}

// Fold is CombineAll for an instance record.
func Fold[T any](m Monoid[T], xs ...T) T {
	acc := m.Empty()
	for _, v := range xs {
		acc = m.Combine(acc, v)
	}
	return acc
}
