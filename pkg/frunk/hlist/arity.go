package hlist

// L0 .. L10 name list types by arity, so L3[A, B, C] is
// HCons[A, HCons[B, HCons[C, HNil]]].
type L0 = HNil

type L1[A any] = HCons[A, HNil]
type L2[A, B any] = HCons[A, L1[B]]
type L3[A, B, C any] = HCons[A, L2[B, C]]
type L4[A, B, C, D any] = HCons[A, L3[B, C, D]]
type L5[A, B, C, D, E any] = HCons[A, L4[B, C, D, E]]
type L6[A, B, C, D, E, F any] = HCons[A, L5[B, C, D, E, F]]
type L7[A, B, C, D, E, F, G any] = HCons[A, L6[B, C, D, E, F, G]]
type L8[A, B, C, D, E, F, G, H any] = HCons[A, L7[B, C, D, E, F, G, H]]
type L9[A, B, C, D, E, F, G, H, I any] = HCons[A, L8[B, C, D, E, F, G, H, I]]
type L10[A, B, C, D, E, F, G, H, I, J any] = HCons[A, L9[B, C, D, E, F, G, H, I, J]]

// Make1 .. Make10 build a list literal from their arguments, in order.
func Make1[A any](a A) L1[A] {
	return Prepend(Empty(), a)
}

func Make2[A, B any](a A, b B) L2[A, B] {
	return Prepend(Make1(b), a)
}

func Make3[A, B, C any](a A, b B, c C) L3[A, B, C] {
	return Prepend(Make2(b, c), a)
}

func Make4[A, B, C, D any](a A, b B, c C, d D) L4[A, B, C, D] {
	return Prepend(Make3(b, c, d), a)
}

func Make5[A, B, C, D, E any](a A, b B, c C, d D, e E) L5[A, B, C, D, E] {
	return Prepend(Make4(b, c, d, e), a)
}

func Make6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) L6[A, B, C, D, E, F] {
	return Prepend(Make5(b, c, d, e, f), a)
}

func Make7[A, B, C, D, E, F, G any](a A, b B, c C, d D, e E, f F, g G) L7[A, B, C, D, E, F, G] {
	return Prepend(Make6(b, c, d, e, f, g), a)
}

func Make8[A, B, C, D, E, F, G, H any](a A, b B, c C, d D, e E, f F, g G, h H) L8[A, B, C, D, E, F, G, H] {
	return Prepend(Make7(b, c, d, e, f, g, h), a)
}

func Make9[A, B, C, D, E, F, G, H, I any](a A, b B, c C, d D, e E, f F, g G, h H, i I) L9[A, B, C, D, E, F, G, H, I] {
	return Prepend(Make8(b, c, d, e, f, g, h, i), a)
}

func Make10[A, B, C, D, E, F, G, H, I, J any](a A, b B, c C, d D, e E, f F, g G, h H, i I, j J) L10[A, B, C, D, E, F, G, H, I, J] {
	return Prepend(Make9(b, c, d, e, f, g, h, i, j), a)
}

// Append1 .. Append10 add last as the new final element of a list one
// slot shorter.
func Append1[A any](_ HNil, last A) L1[A] {
	return Make1(last)
}

func Append2[A, B any](l L1[A], last B) L2[A, B] {
	return Prepend(Append1(l.Tail, last), l.Head)
}

func Append3[A, B, C any](l L2[A, B], last C) L3[A, B, C] {
	return Prepend(Append2(l.Tail, last), l.Head)
}

func Append4[A, B, C, D any](l L3[A, B, C], last D) L4[A, B, C, D] {
	return Prepend(Append3(l.Tail, last), l.Head)
}

func Append5[A, B, C, D, E any](l L4[A, B, C, D], last E) L5[A, B, C, D, E] {
	return Prepend(Append4(l.Tail, last), l.Head)
}

func Append6[A, B, C, D, E, F any](l L5[A, B, C, D, E], last F) L6[A, B, C, D, E, F] {
	return Prepend(Append5(l.Tail, last), l.Head)
}

func Append7[A, B, C, D, E, F, G any](l L6[A, B, C, D, E, F], last G) L7[A, B, C, D, E, F, G] {
	return Prepend(Append6(l.Tail, last), l.Head)
}

func Append8[A, B, C, D, E, F, G, H any](l L7[A, B, C, D, E, F, G], last H) L8[A, B, C, D, E, F, G, H] {
	return Prepend(Append7(l.Tail, last), l.Head)
}

func Append9[A, B, C, D, E, F, G, H, I any](l L8[A, B, C, D, E, F, G, H], last I) L9[A, B, C, D, E, F, G, H, I] {
	return Prepend(Append8(l.Tail, last), l.Head)
}

func Append10[A, B, C, D, E, F, G, H, I, J any](l L9[A, B, C, D, E, F, G, H, I], last J) L10[A, B, C, D, E, F, G, H, I, J] {
	return Prepend(Append9(l.Tail, last), l.Head)
}
