// Package hlist provides heterogeneous lists: ordered sequences whose
// elements each keep their own static type.
//
// A list is either HNil or HCons[H, T] where T is itself a list, so
// Make3(1, 2.5, "hi") has type HCons[int, HCons[float64, HCons[string, HNil]]]
// (spelled L3[int, float64, string]). Nothing is checked at run time: wrong
// arity or element types fail to compile.
//
// Key operations:
// - Empty/Prepend: build lists one element at a time
// - Make1..Make10: list literals
// - Pop: split a non-empty list into head and tail
// - Len: number of elements
// - Append1..Append10: add a final element
// - ToTuple1..ToTuple10 / FromTuple1..FromTuple10: convert to and from
//   right-nested tuple.Pair values
package hlist
