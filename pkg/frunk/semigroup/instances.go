package semigroup

import (
	"github.com/ib-77/frunk/pkg/frunk/hlist"
	"github.com/ib-77/frunk/pkg/frunk/option"
	"github.com/ib-77/frunk/pkg/frunk/tuple"
)

// Add combines plain numbers by addition.
func Add[N Number]() Semigroup[N] {
	return Func[N](func(a, b N) N { return a + b })
}

// Mul combines plain numbers by multiplication.
func Mul[N Number]() Semigroup[N] {
	return Func[N](func(a, b N) N { return a * b })
}

// Option treats None as neutral and combines two Somes with s.
func Option[T any](s Semigroup[T]) Semigroup[option.Option[T]] {
	return Func[option.Option[T]](func(a, b option.Option[T]) option.Option[T] {
		av, aok := a.Get()
		bv, bok := b.Get()
		switch {
		case !aok:
			return b
		case !bok:
			return a
		default:
			return option.Some(s.Combine(av, bv))
		}
	})
}

// Slice concatenates a then b into a new slice.
func Slice[T any]() Semigroup[[]T] {
	return Func[[]T](func(a, b []T) []T {
		out := make([]T, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	})
}

// Map merges two maps into a new one; values present under the same key in
// both are combined with s, left value first.
func Map[K comparable, V any](s Semigroup[V]) Semigroup[map[K]V] {
	return Func[map[K]V](func(a, b map[K]V) map[K]V {
		out := make(map[K]V, len(a)+len(b))
		for k, v := range a {
			out[k] = v
		}
		for k, v := range b {
			if prev, ok := out[k]; ok {
				out[k] = s.Combine(prev, v)
				continue
			}
			out[k] = v
		}
		return out
	})
}

// Pair combines element-wise. Wider tuples are nested pairs, so
// Pair(sa, Pair(sb, sc)) combines a three-element tuple.
func Pair[A, B any](first Semigroup[A], second Semigroup[B]) Semigroup[tuple.Pair[A, B]] {
	return Func[tuple.Pair[A, B]](func(a, b tuple.Pair[A, B]) tuple.Pair[A, B] {
		return tuple.Of(first.Combine(a.First, b.First), second.Combine(a.Second, b.Second))
	})
}

func HNil() Semigroup[hlist.HNil] {
	return Func[hlist.HNil](func(hlist.HNil, hlist.HNil) hlist.HNil { return hlist.Empty() })
}

// HCons combines head with head and tail with tail. Both operands share one
// static type, so lists of different shapes cannot be combined.
func HCons[H any, T hlist.HList](head Semigroup[H], tail Semigroup[T]) Semigroup[hlist.HCons[H, T]] {
	return Func[hlist.HCons[H, T]](func(a, b hlist.HCons[H, T]) hlist.HCons[H, T] {
		return hlist.Prepend(tail.Combine(a.Tail, b.Tail), head.Combine(a.Head, b.Head))
	})
}
