package semigroup

// Combinable is satisfied by types that know how to combine themselves with
// another value of the same type. Combine must be associative.
type Combinable[T any] interface {
	Combine(other T) T
}

// Semigroup is an instance record combining two values of T, for types that
// cannot carry the method themselves (slices, maps, options, hlists).
// Combine must be associative.
type Semigroup[T any] interface {
	Combine(a, b T) T
}

// Func adapts a plain function to Semigroup.
type Func[T any] func(a, b T) T

func (f Func[T]) Combine(a, b T) T {
	return f(a, b)
}

type native[T Combinable[T]] struct{}

func (native[T]) Combine(a, b T) T {
	return a.Combine(b)
}

// Native returns the instance record backed by T's own Combine method.
func Native[T Combinable[T]]() Semigroup[T] {
	return native[T]{}
}

func Combine[T Combinable[T]](a, b T) T {
	return a.Combine(b)
}

// CombineAll folds first and rest left to right. At least one value is
// required by the signature.
func CombineAll[T Combinable[T]](first T, rest ...T) T {
	acc := first
	for _, v := range rest {
		acc = acc.Combine(v)
	}
	return acc
}

// Fold is CombineAll for an instance record.
func Fold[T any](s Semigroup[T], first T, rest ...T) T {
	acc := first
	for _, v := range rest {
		acc = s.Combine(acc, v)
	}
	return acc
}

// Reduce folds a slice that may be empty; ok is false when xs is empty.
func Reduce[T any](s Semigroup[T], xs []T) (res T, ok bool) {
	if len(xs) == 0 {
		return res, false
	}
	return Fold(s, xs[0], xs[1:]...), true
}
