// Package monoid refines semigroup with an identity element, which makes it
// safe to fold an empty run of values.
//
// - Identity/Empty/CombineAll: method-based monoids such as semigroup.Sum
// - Monoid/New/Native/Fold: instance records
// - Add, Mul, Option, Slice, Map, Pair, HNil, HCons: built-in instances
//
// For a non-empty input Fold(m, xs...) equals semigroup.Fold(m, xs[0], xs[1:]...).
package monoid
