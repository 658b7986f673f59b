package validated

import (
	"errors"
	"slices"

	"github.com/ib-77/frunk/pkg/frunk"
	"github.com/ib-77/frunk/pkg/frunk/hlist"
)

// Validated accumulates the outcomes of independent fallible computations.
// While every outcome has succeeded it holds their values as an hlist, in
// the order they were added. Once any outcome fails it holds every failure
// seen so far, in order, and later successes are dropped.
//
// The zero value is a failed accumulator with no failures. Start from Lift,
// Valid, Invalid or Cons and grow with the AppendN family.
type Validated[L hlist.HList, E any] struct {
	values L
	errs   []E
	valid  bool
}

// Valid starts an accumulator from values that already succeeded.
func Valid[L hlist.HList, E any](values L) Validated[L, E] {
	return Validated[L, E]{values: values, valid: true}
}

// Invalid starts a failed accumulator. At least one failure is expected.
func Invalid[L hlist.HList, E any](first E, rest ...E) Validated[L, E] {
	errs := make([]E, 0, len(rest)+1)
	errs = append(errs, first)
	return Validated[L, E]{errs: append(errs, rest...)}
}

// Lift turns a single outcome into a one-slot accumulator.
func Lift[T, E any](r frunk.Result[T, E]) Validated[hlist.L1[T], E] {
	return grow(Valid[hlist.L0, E](hlist.Empty()), r, hlist.Append1[T])
}

// LiftTry lifts the usual (value, error) pair.
func LiftTry[T any](v T, err error) Validated[hlist.L1[T], error] {
	return Lift(frunk.Try(v, err))
}

func LiftFallible[T, E any](f frunk.Fallible[T, E]) Validated[hlist.L1[T], E] {
	return Lift(frunk.FromFallible(f))
}

// Cons adds r in front of v. Unlike the AppendN family it works for lists of
// any length; failures of r come before the failures already in v.
func Cons[T any, L hlist.HList, E any](r frunk.Result[T, E], v Validated[L, E]) Validated[hlist.HCons[T, L], E] {
	val, err, ok := r.Get()
	switch {
	case ok && v.valid:
		return Valid[hlist.HCons[T, L], E](hlist.Prepend(v.values, val))
	case ok:
		return Validated[hlist.HCons[T, L], E]{errs: v.errs}
	case v.valid:
		return Invalid[hlist.HCons[T, L]](err)
	default:
		return Invalid[hlist.HCons[T, L]](err, v.errs...)
	}
}

// grow applies one outcome to the accumulator; snoc places a success at the
// end of the value list.
func grow[L, M hlist.HList, U, E any](v Validated[L, E], r frunk.Result[U, E], snoc func(L, U) M) Validated[M, E] {
	val, err, ok := r.Get()
	switch {
	case v.valid && ok:
		return Valid[M, E](snoc(v.values, val))
	case v.valid:
		return Invalid[M](err)
	case ok:
		return Validated[M, E]{errs: v.errs}
	default:
		errs := make([]E, 0, len(v.errs)+1)
		errs = append(append(errs, v.errs...), err)
		return Validated[M, E]{errs: errs}
	}
}

func (v Validated[L, E]) IsValid() bool {
	return v.valid
}

// Values returns the accumulated values; ok is false once anything failed.
func (v Validated[L, E]) Values() (values L, ok bool) {
	return v.values, v.valid
}

// Errors returns a copy of the collected failures.
func (v Validated[L, E]) Errors() []E {
	return slices.Clone(v.errs)
}

// Into ends accumulation: every value on success, every failure otherwise.
func (v Validated[L, E]) Into() frunk.Result[L, []E] {
	return Into(v)
}

func Into[L hlist.HList, E any](v Validated[L, E]) frunk.Result[L, []E] {
	if v.valid {
		return frunk.Ok[L, []E](v.values)
	}
	return frunk.Err[L](slices.Clone(v.errs))
}

// ErrInvalid stands in when every collected failure is a nil error.
var ErrInvalid = errors.New("validated: failed without a non-nil error")

// IntoError is Into for error failures, joined with errors.Join.
func IntoError[L hlist.HList](v Validated[L, error]) frunk.Result[L, error] {
	if v.valid {
		return frunk.Ok[L, error](v.values)
	}
	if err := frunk.JoinErrors(v.errs); err != nil {
		return frunk.Err[L](err)
	}
	return frunk.Err[L](ErrInvalid)
}
