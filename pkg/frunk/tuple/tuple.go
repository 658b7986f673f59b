// Package tuple provides the right-nested pair used to flatten heterogeneous
// lists into tuples: (a, b) is Pair[A, B], (a, b, c) is Pair[A, Pair[B, C]].
package tuple

import "fmt"

type Pair[A, B any] struct {
	First  A
	Second B
}

func Of[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack destructures the pair.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
