package validated

import (
	"github.com/ib-77/frunk/pkg/frunk"
	"github.com/ib-77/frunk/pkg/frunk/hlist"
)

// Append2 .. Append10 add one more outcome to an accumulator, growing its
// value list by one slot at the end. Calls nest left to right:
//
//	Append3(Append2(Lift(a), b), c)
//
// Successes are kept only while nothing has failed; failures are all kept,
// in order.
func Append2[A, B, E any](v Validated[hlist.L1[A], E], r frunk.Result[B, E]) Validated[hlist.L2[A, B], E] {
	return grow(v, r, hlist.Append2[A, B])
}

func Append3[A, B, C, E any](v Validated[hlist.L2[A, B], E], r frunk.Result[C, E]) Validated[hlist.L3[A, B, C], E] {
	return grow(v, r, hlist.Append3[A, B, C])
}

func Append4[A, B, C, D, E any](v Validated[hlist.L3[A, B, C], E], r frunk.Result[D, E]) Validated[hlist.L4[A, B, C, D], E] {
	return grow(v, r, hlist.Append4[A, B, C, D])
}

func Append5[A, B, C, D, F, E any](v Validated[hlist.L4[A, B, C, D], E], r frunk.Result[F, E]) Validated[hlist.L5[A, B, C, D, F], E] {
	return grow(v, r, hlist.Append5[A, B, C, D, F])
}

func Append6[A, B, C, D, F, G, E any](v Validated[hlist.L5[A, B, C, D, F], E], r frunk.Result[G, E]) Validated[hlist.L6[A, B, C, D, F, G], E] {
	return grow(v, r, hlist.Append6[A, B, C, D, F, G])
}

func Append7[A, B, C, D, F, G, H, E any](v Validated[hlist.L6[A, B, C, D, F, G], E], r frunk.Result[H, E]) Validated[hlist.L7[A, B, C, D, F, G, H], E] {
	return grow(v, r, hlist.Append7[A, B, C, D, F, G, H])
}

func Append8[A, B, C, D, F, G, H, I, E any](v Validated[hlist.L7[A, B, C, D, F, G, H], E], r frunk.Result[I, E]) Validated[hlist.L8[A, B, C, D, F, G, H, I], E] {
	return grow(v, r, hlist.Append8[A, B, C, D, F, G, H, I])
}

func Append9[A, B, C, D, F, G, H, I, J, E any](v Validated[hlist.L8[A, B, C, D, F, G, H, I], E], r frunk.Result[J, E]) Validated[hlist.L9[A, B, C, D, F, G, H, I, J], E] {
	return grow(v, r, hlist.Append9[A, B, C, D, F, G, H, I, J])
}

func Append10[A, B, C, D, F, G, H, I, J, K, E any](v Validated[hlist.L9[A, B, C, D, F, G, H, I, J], E], r frunk.Result[K, E]) Validated[hlist.L10[A, B, C, D, F, G, H, I, J, K], E] {
	return grow(v, r, hlist.Append10[A, B, C, D, F, G, H, I, J, K])
}
