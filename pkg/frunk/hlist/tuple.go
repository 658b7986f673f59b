package hlist

import "github.com/ib-77/frunk/pkg/frunk/tuple"

// ToTuple1 .. ToTuple10 flatten a list into right-nested pairs: one element
// is the element itself, two become (a, b), three become (a, (b, c)), and so
// on. FromTuple1 .. FromTuple10 are the inverse.
func ToTuple1[A any](l L1[A]) A {
	return l.Head
}

func ToTuple2[A, B any](l L2[A, B]) tuple.T2[A, B] {
	return tuple.Of(l.Head, l.Tail.Head)
}

func ToTuple3[A, B, C any](l L3[A, B, C]) tuple.T3[A, B, C] {
	return tuple.Of(l.Head, ToTuple2(l.Tail))
}

func ToTuple4[A, B, C, D any](l L4[A, B, C, D]) tuple.T4[A, B, C, D] {
	return tuple.Of(l.Head, ToTuple3(l.Tail))
}

func ToTuple5[A, B, C, D, E any](l L5[A, B, C, D, E]) tuple.T5[A, B, C, D, E] {
	return tuple.Of(l.Head, ToTuple4(l.Tail))
}

func ToTuple6[A, B, C, D, E, F any](l L6[A, B, C, D, E, F]) tuple.T6[A, B, C, D, E, F] {
	return tuple.Of(l.Head, ToTuple5(l.Tail))
}

func ToTuple7[A, B, C, D, E, F, G any](l L7[A, B, C, D, E, F, G]) tuple.T7[A, B, C, D, E, F, G] {
	return tuple.Of(l.Head, ToTuple6(l.Tail))
}

func ToTuple8[A, B, C, D, E, F, G, H any](l L8[A, B, C, D, E, F, G, H]) tuple.T8[A, B, C, D, E, F, G, H] {
	return tuple.Of(l.Head, ToTuple7(l.Tail))
}

func ToTuple9[A, B, C, D, E, F, G, H, I any](l L9[A, B, C, D, E, F, G, H, I]) tuple.T9[A, B, C, D, E, F, G, H, I] {
	return tuple.Of(l.Head, ToTuple8(l.Tail))
}

func ToTuple10[A, B, C, D, E, F, G, H, I, J any](l L10[A, B, C, D, E, F, G, H, I, J]) tuple.T10[A, B, C, D, E, F, G, H, I, J] {
	return tuple.Of(l.Head, ToTuple9(l.Tail))
}

func FromTuple1[A any](a A) L1[A] {
	return Make1(a)
}

func FromTuple2[A, B any](t tuple.T2[A, B]) L2[A, B] {
	return Make2(t.First, t.Second)
}

func FromTuple3[A, B, C any](t tuple.T3[A, B, C]) L3[A, B, C] {
	return Prepend(FromTuple2(t.Second), t.First)
}

func FromTuple4[A, B, C, D any](t tuple.T4[A, B, C, D]) L4[A, B, C, D] {
	return Prepend(FromTuple3(t.Second), t.First)
}

func FromTuple5[A, B, C, D, E any](t tuple.T5[A, B, C, D, E]) L5[A, B, C, D, E] {
	return Prepend(FromTuple4(t.Second), t.First)
}

func FromTuple6[A, B, C, D, E, F any](t tuple.T6[A, B, C, D, E, F]) L6[A, B, C, D, E, F] {
	return Prepend(FromTuple5(t.Second), t.First)
}

func FromTuple7[A, B, C, D, E, F, G any](t tuple.T7[A, B, C, D, E, F, G]) L7[A, B, C, D, E, F, G] {
	return Prepend(FromTuple6(t.Second), t.First)
}

func FromTuple8[A, B, C, D, E, F, G, H any](t tuple.T8[A, B, C, D, E, F, G, H]) L8[A, B, C, D, E, F, G, H] {
	return Prepend(FromTuple7(t.Second), t.First)
}

func FromTuple9[A, B, C, D, E, F, G, H, I any](t tuple.T9[A, B, C, D, E, F, G, H, I]) L9[A, B, C, D, E, F, G, H, I] {
	return Prepend(FromTuple8(t.Second), t.First)
}

func FromTuple10[A, B, C, D, E, F, G, H, I, J any](t tuple.T10[A, B, C, D, E, F, G, H, I, J]) L10[A, B, C, D, E, F, G, H, I, J] {
	return Prepend(FromTuple9(t.Second), t.First)
}
