package validated

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/frunk/pkg/frunk"
	"github.com/ib-77/frunk/pkg/frunk/hlist"
)

func TestLift_Success(t *testing.T) {
	t.Parallel()
	v := Lift(frunk.Ok[int, string](1))

	require.True(t, v.IsValid())
	values, ok := v.Values()
	assert.True(t, ok)
	assert.Equal(t, hlist.Make1(1), values)
	assert.Empty(t, v.Errors())
}

func TestLift_Failure(t *testing.T) {
	t.Parallel()
	v := Lift(frunk.Err[int]("bad"))

	require.False(t, v.IsValid())
	assert.Equal(t, []string{"bad"}, v.Errors())
}

func TestAllSuccess(t *testing.T) {
	t.Parallel()
	res := Append3(
		Append2(
			Lift(frunk.Ok[int, string](1)),
			frunk.Ok[float64, string](2.5)),
		frunk.Ok[string, string]("hi")).Into()

	require.True(t, res.IsOk())
	assert.Equal(t, hlist.Make3(1, 2.5, "hi"), res.Value())

	n, rest := res.Value().Pop()
	f, rest2 := rest.Pop()
	s, _ := rest2.Pop()
	assert.Equal(t, 1, n)
	assert.Equal(t, 2.5, f)
	assert.Equal(t, "hi", s)
}

func TestMixedFailure(t *testing.T) {
	t.Parallel()
	res := Append3(
		Append2(
			Lift(frunk.Err[string]("crap name")),
			frunk.Ok[int, string](5)),
		frunk.Err[string]("crap age")).Into()

	require.True(t, res.IsErr())
	assert.Equal(t, []string{"crap name", "crap age"}, res.Error())
}

func TestTransitions(t *testing.T) {
	t.Parallel()

	t.Run("accumulating + failure drops values", func(t *testing.T) {
		v := Append3(
			Append2(Lift(frunk.Ok[int, string](1)), frunk.Ok[int, string](2)),
			frunk.Err[int]("third"))
		assert.False(t, v.IsValid())
		assert.Equal(t, []string{"third"}, v.Errors())
	})

	t.Run("failed + success keeps failures unchanged", func(t *testing.T) {
		v := Append2(Lift(frunk.Err[int]("first")), frunk.Ok[bool, string](true))
		assert.Equal(t, []string{"first"}, v.Errors())
	})

	t.Run("failed + failure appends", func(t *testing.T) {
		v := Append3(
			Append2(Lift(frunk.Err[int]("a")), frunk.Err[bool]("b")),
			frunk.Err[string]("c"))
		assert.Equal(t, []string{"a", "b", "c"}, v.Errors())
	})
}

func TestAppend_LongChain(t *testing.T) {
	t.Parallel()
	ok := func(i int) frunk.Result[int, error] { return frunk.Ok[int, error](i) }

	v := Append10(Append9(Append8(Append7(Append6(Append5(Append4(Append3(Append2(
		Lift(ok(1)), frunk.Ok[string, error]("2")), ok(3)), ok(4)), ok(5)), ok(6)), ok(7)), ok(8)), ok(9)),
		frunk.Ok[bool, error](true))

	res := v.Into()
	require.True(t, res.IsOk())
	assert.Equal(t, hlist.Make10(1, "2", 3, 4, 5, 6, 7, 8, 9, true), res.Value())
	assert.Equal(t, 10, res.Value().Len())
}

func TestAppend_DoesNotShareErrors(t *testing.T) {
	t.Parallel()
	base := Append2(Lift(frunk.Err[int]("a")), frunk.Err[int]("b"))

	left := Append3(base, frunk.Err[int]("left"))
	right := Append3(base, frunk.Err[int]("right"))

	assert.Equal(t, []string{"a", "b", "left"}, left.Errors())
	assert.Equal(t, []string{"a", "b", "right"}, right.Errors())
	assert.Equal(t, []string{"a", "b"}, base.Errors())
}

func TestErrors_ReturnsCopy(t *testing.T) {
	t.Parallel()
	v := Lift(frunk.Err[int]("x"))
	errs := v.Errors()
	errs[0] = "mutated"
	assert.Equal(t, []string{"x"}, v.Errors())
}

func TestCons(t *testing.T) {
	t.Parallel()
	v := Cons(frunk.Ok[int, string](1),
		Cons(frunk.Ok[float64, string](2.5),
			Lift(frunk.Ok[string, string]("hi"))))
	res := Into(v)
	require.True(t, res.IsOk())
	assert.Equal(t, hlist.Make3(1, 2.5, "hi"), res.Value())

	failed := Cons(frunk.Err[int]("crap name"),
		Cons(frunk.Ok[int, string](5),
			Lift(frunk.Err[int]("crap age"))))
	assert.Equal(t, []string{"crap name", "crap age"}, failed.Errors())

	headOnly := Cons(frunk.Err[int]("head"), Lift(frunk.Ok[int, string](1)))
	assert.Equal(t, []string{"head"}, headOnly.Errors())
}

func TestValidInvalid(t *testing.T) {
	t.Parallel()
	v := Append2(Valid[hlist.L1[int], string](hlist.Make1(1)), frunk.Ok[int, string](2))
	assert.Equal(t, hlist.Make2(1, 2), v.Into().Value())

	inv := Append2(Invalid[hlist.L1[int]]("x", "y"), frunk.Err[int]("z"))
	assert.Equal(t, []string{"x", "y", "z"}, inv.Errors())
}

func TestLiftTry(t *testing.T) {
	t.Parallel()
	v := Append2(LiftTry(strconv.Atoi("12")), frunk.Try(strconv.ParseBool("true")))
	res := IntoError(v)
	require.True(t, res.IsOk())
	assert.Equal(t, hlist.Make2(12, true), res.Value())

	bad := Append2(LiftTry(strconv.Atoi("x")), frunk.Try(strconv.ParseBool("nope")))
	badRes := IntoError(bad)
	require.True(t, badRes.IsErr())
	assert.Len(t, frunk.GetErrors(badRes.Error()), 2)
	var numErr *strconv.NumError
	assert.True(t, errors.As(badRes.Error(), &numErr))
}

type outcome struct {
	v   string
	err error
}

func (o outcome) IsOk() bool    { return o.err == nil }
func (o outcome) Value() string { return o.v }
func (o outcome) Error() error  { return o.err }

func TestLiftFallible(t *testing.T) {
	t.Parallel()
	v := LiftFallible[string, error](outcome{v: "ok"})
	assert.Equal(t, hlist.Make1("ok"), v.Into().Value())

	boom := errors.New("boom")
	v = LiftFallible[string, error](outcome{err: boom})
	assert.Equal(t, []error{boom}, v.Errors())
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var v Validated[hlist.L1[int], string]

	assert.False(t, v.IsValid())
	res := v.Into()
	require.True(t, res.IsErr())
	assert.Empty(t, res.Error())
}

func TestIntoError_NilFailure(t *testing.T) {
	t.Parallel()
	v := Lift(frunk.Err[int, error](nil))

	res := IntoError(v)
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.Error(), ErrInvalid)

	var zero Validated[hlist.L0, error]
	assert.ErrorIs(t, IntoError(zero).Error(), ErrInvalid)
}
