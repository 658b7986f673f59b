package tuple

// T2 .. T10 name right-nested pairs by arity: T3[A, B, C] is
// Pair[A, Pair[B, C]].
type T2[A, B any] = Pair[A, B]
type T3[A, B, C any] = Pair[A, T2[B, C]]
type T4[A, B, C, D any] = Pair[A, T3[B, C, D]]
type T5[A, B, C, D, E any] = Pair[A, T4[B, C, D, E]]
type T6[A, B, C, D, E, F any] = Pair[A, T5[B, C, D, E, F]]
type T7[A, B, C, D, E, F, G any] = Pair[A, T6[B, C, D, E, F, G]]
type T8[A, B, C, D, E, F, G, H any] = Pair[A, T7[B, C, D, E, F, G, H]]
type T9[A, B, C, D, E, F, G, H, I any] = Pair[A, T8[B, C, D, E, F, G, H, I]]
type T10[A, B, C, D, E, F, G, H, I, J any] = Pair[A, T9[B, C, D, E, F, G, H, I, J]]
