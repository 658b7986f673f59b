// Package semigroup defines the combination capability: an associative
// operation joining two values of one type into a third.
//
// A type opts in either by carrying the method itself (Combinable, used with
// Combine and CombineAll) or through an instance record (Semigroup, used with
// Fold and Reduce) when the method cannot be declared on the type.
//
// Built-in wrappers: Sum, Product, All, Any, Xor, String, Max, Min, First, Last.
// Built-in instances: Add, Mul, Option, Slice, Map, Pair, HNil, HCons.
//
// HCons instances are assembled element by element, for example
//
//	s := semigroup.HCons(semigroup.Add[int](),
//		semigroup.HCons(semigroup.Slice[string](), semigroup.HNil()))
//
// combines hlist.L2[int, []string] values.
package semigroup
