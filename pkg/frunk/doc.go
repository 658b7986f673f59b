// Package frunk is a small functional toolkit built from three pieces:
// heterogeneous lists (package hlist), combination algebra (packages
// semigroup and monoid) and error-accumulating validation (package
// validated).
//
// This root package holds the fallible outcome shared by all of them:
// - Result[T, E]: a value or a failure, tagged with a uuid and a UTC timestamp
// - Ok/Err/Try: construct results (Try adapts the (value, error) idiom)
// - Fallible: the interface user outcome types implement to be lifted
// - Match/MapErr: inspect and reshape results
// - GetErrors/JoinErrors: move between []error and errors.Join values
package frunk
