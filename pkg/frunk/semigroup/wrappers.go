package semigroup

import "cmp"

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Sum combines by addition. Identity 0.
type Sum[N Number] struct {
	Value N
}

func SumOf[N Number](v N) Sum[N] {
	return Sum[N]{Value: v}
}

func (s Sum[N]) Combine(other Sum[N]) Sum[N] {
	return Sum[N]{Value: s.Value + other.Value}
}

func (Sum[N]) Empty() Sum[N] {
	return Sum[N]{}
}

// Product combines by multiplication. Identity 1.
type Product[N Number] struct {
	Value N
}

func ProductOf[N Number](v N) Product[N] {
	return Product[N]{Value: v}
}

func (p Product[N]) Combine(other Product[N]) Product[N] {
	return Product[N]{Value: p.Value * other.Value}
}

func (Product[N]) Empty() Product[N] {
	return Product[N]{Value: 1}
}

// All is logical AND. Identity true.
type All bool

func (a All) Combine(other All) All {
	return a && other
}

func (All) Empty() All {
	return true
}

// Any is logical OR. Identity false.
type Any bool

func (a Any) Combine(other Any) Any {
	return a || other
}

func (Any) Empty() Any {
	return false
}

// Xor is exclusive OR. Identity false.
type Xor bool

func (x Xor) Combine(other Xor) Xor {
	return x != other
}

func (Xor) Empty() Xor {
	return false
}

// String concatenates. Identity "".
type String string

func (s String) Combine(other String) String {
	return s + other
}

func (String) Empty() String {
	return ""
}

// Max keeps the larger value. There is no identity for an arbitrary ordered
// type, so Max is only a semigroup.
type Max[T cmp.Ordered] struct {
	Value T
}

func MaxOf[T cmp.Ordered](v T) Max[T] {
	return Max[T]{Value: v}
}

func (m Max[T]) Combine(other Max[T]) Max[T] {
	return Max[T]{Value: max(m.Value, other.Value)}
}

// Min keeps the smaller value. Semigroup only.
type Min[T cmp.Ordered] struct {
	Value T
}

func MinOf[T cmp.Ordered](v T) Min[T] {
	return Min[T]{Value: v}
}

func (m Min[T]) Combine(other Min[T]) Min[T] {
	return Min[T]{Value: min(m.Value, other.Value)}
}

// First keeps the left operand.
type First[T any] struct {
	Value T
}

func (f First[T]) Combine(First[T]) First[T] {
	return f
}

// Last keeps the right operand.
type Last[T any] struct {
	Value T
}

func (Last[T]) Combine(other Last[T]) Last[T] {
	return other
}
