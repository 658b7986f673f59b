package validated

import "github.com/ib-77/frunk/pkg/frunk"

// Check runs a predicate over v. A false verdict becomes a failure carrying
// the returned E.
func Check[T, E any](v T, check func(in T) (valid bool, failure E)) frunk.Result[T, E] {
	if valid, failure := check(v); !valid {
		return frunk.Err[T](failure)
	}
	return frunk.Ok[T, E](v)
}

// CheckAll runs every check over v and keeps all failures, in order.
func CheckAll[T, E any](v T, checks ...func(in T) (valid bool, failure E)) frunk.Result[T, []E] {
	var errs []E
	for _, check := range checks {
		if valid, failure := check(v); !valid {
			errs = append(errs, failure)
		}
	}
	if len(errs) > 0 {
		return frunk.Err[T](errs)
	}
	return frunk.Ok[T, []E](v)
}

// Sequence accumulates a slice of outcomes of one type: all values in order,
// or every failure in order.
func Sequence[T, E any](rs []frunk.Result[T, E]) frunk.Result[[]T, []E] {
	values := make([]T, 0, len(rs))
	var errs []E
	for _, r := range rs {
		v, err, ok := r.Get()
		if !ok {
			errs = append(errs, err)
			continue
		}
		if errs == nil {
			values = append(values, v)
		}
	}
	if len(errs) > 0 {
		return frunk.Err[[]T](errs)
	}
	return frunk.Ok[[]T, []E](values)
}
