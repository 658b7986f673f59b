package monoid

import (
	"github.com/ib-77/frunk/pkg/frunk/hlist"
	"github.com/ib-77/frunk/pkg/frunk/option"
	"github.com/ib-77/frunk/pkg/frunk/semigroup"
	"github.com/ib-77/frunk/pkg/frunk/tuple"
)

// Add is addition over plain numbers, identity 0.
func Add[N semigroup.Number]() Monoid[N] {
	return New(semigroup.Add[N](), func() N { return 0 })
}

// Mul is multiplication over plain numbers, identity 1.
func Mul[N semigroup.Number]() Monoid[N] {
	return New(semigroup.Mul[N](), func() N { return 1 })
}

// Option needs only a semigroup for T: None is the identity.
func Option[T any](s semigroup.Semigroup[T]) Monoid[option.Option[T]] {
	return New(semigroup.Option(s), option.None[T])
}

func Slice[T any]() Monoid[[]T] {
	return New(semigroup.Slice[T](), func() []T { return nil })
}

func Map[K comparable, V any](s semigroup.Semigroup[V]) Monoid[map[K]V] {
	return New(semigroup.Map[K](s), func() map[K]V { return map[K]V{} })
}

// Pair has the pair of identities as its identity.
func Pair[A, B any](first Monoid[A], second Monoid[B]) Monoid[tuple.Pair[A, B]] {
	return New(semigroup.Pair[A, B](first, second), func() tuple.Pair[A, B] {
		return tuple.Of(first.Empty(), second.Empty())
	})
}

func HNil() Monoid[hlist.HNil] {
	return New(semigroup.HNil(), hlist.Empty)
}

// HCons requires an identity for the head and for every element of the tail.
func HCons[H any, T hlist.HList](head Monoid[H], tail Monoid[T]) Monoid[hlist.HCons[H, T]] {
	return New(semigroup.HCons[H, T](head, tail), func() hlist.HCons[H, T] {
		return hlist.Prepend(tail.Empty(), head.Empty())
	})
}
