// Package validated accumulates independent fallible computations without
// stopping at the first failure.
//
// Each outcome is a frunk.Result. Lifting one starts an accumulator, and each
// AppendN adds the next outcome as a new last slot, so the success side is a
// fully typed hlist:
//
//	v := validated.Append3(
//		validated.Append2(
//			validated.Lift(name),
//			age),
//		email)
//	res := v.Into() // frunk.Result[hlist.L3[string, int, string], []E]
//
// On success Into yields every value in the order added. If anything failed
// it yields every failure in the order added; values that succeeded are not
// kept once a failure is seen.
//
// Key operations:
// - Lift/LiftTry/LiftFallible: start from a single outcome
// - Append2..Append10: add one outcome at the end
// - Cons: add one outcome at the front, for lists of any length
// - Into/IntoError: finish with a single Result
// - Check/CheckAll: build outcomes from predicates
// - Sequence: accumulate a slice of outcomes of one type
package validated
