package semigroup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/frunk/pkg/frunk/hlist"
	"github.com/ib-77/frunk/pkg/frunk/option"
	"github.com/ib-77/frunk/pkg/frunk/tuple"
)

func assertAssociative[T any](t *testing.T, s Semigroup[T], a, b, c T) {
	t.Helper()
	left := s.Combine(s.Combine(a, b), c)
	right := s.Combine(a, s.Combine(b, c))
	assert.Equal(t, left, right)
}

func TestSum(t *testing.T) {
	t.Parallel()
	assert.Equal(t, SumOf(8), Combine(SumOf(3), SumOf(5)))
	assert.Equal(t, SumOf(10), CombineAll(SumOf(1), SumOf(2), SumOf(3), SumOf(4)))
}

func TestProduct(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ProductOf(24), CombineAll(ProductOf(2), ProductOf(3), ProductOf(4)))
	assert.Equal(t, ProductOf(1.5), Combine(ProductOf(0.5), ProductOf(3.0)))
}

func TestBooleans(t *testing.T) {
	t.Parallel()
	assert.Equal(t, All(false), Combine(All(true), All(false)))
	assert.Equal(t, All(true), Combine(All(true), All(true)))
	assert.Equal(t, Any(true), Combine(Any(false), Any(true)))
	assert.Equal(t, Any(false), Combine(Any(false), Any(false)))
	assert.Equal(t, Xor(true), Combine(Xor(true), Xor(false)))
	assert.Equal(t, Xor(false), Combine(Xor(true), Xor(true)))
}

func TestMaxMin(t *testing.T) {
	t.Parallel()
	assert.Equal(t, MaxOf(9), CombineAll(MaxOf(3), MaxOf(9), MaxOf(-1)))
	assert.Equal(t, MinOf("a"), CombineAll(MinOf("c"), MinOf("a"), MinOf("b")))
}

func TestFirstLast(t *testing.T) {
	t.Parallel()
	assert.Equal(t, First[int]{Value: 1}, CombineAll(First[int]{Value: 1}, First[int]{Value: 2}))
	assert.Equal(t, Last[int]{Value: 2}, CombineAll(Last[int]{Value: 1}, Last[int]{Value: 2}))
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, String("foobar"), Combine(String("foo"), String("bar")))
}

func TestCombineAll_Single(t *testing.T) {
	t.Parallel()
	assert.Equal(t, SumOf(7), CombineAll(SumOf(7)))
}

func TestFoldAndReduce(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 6, Fold(Add[int](), 1, 2, 3))
	assert.Equal(t, 24, Fold(Mul[int](), 2, 3, 4))

	v, ok := Reduce(Slice[int](), [][]int{{1}, {2, 3}, {}})
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)

	_, ok = Reduce(Add[int](), nil)
	assert.False(t, ok)
}

func TestNative(t *testing.T) {
	t.Parallel()
	s := Native[Sum[int]]()
	assert.Equal(t, SumOf(3), s.Combine(SumOf(1), SumOf(2)))
}

func TestOption(t *testing.T) {
	t.Parallel()
	s := Option(Add[int]())

	assert.Equal(t, option.Some(4), s.Combine(option.Some(1), option.Some(3)))
	assert.Equal(t, option.Some(1), s.Combine(option.Some(1), option.None[int]()))
	assert.Equal(t, option.Some(1), s.Combine(option.None[int](), option.Some(1)))
	assert.Equal(t, option.None[int](), s.Combine(option.None[int](), option.None[int]()))
}

func TestOption_OfWrapper(t *testing.T) {
	t.Parallel()
	s := Option(Native[Sum[int]]())
	assert.Equal(t, option.Some(SumOf(4)), s.Combine(option.Some(SumOf(1)), option.Some(SumOf(3))))
}

func TestSlice(t *testing.T) {
	t.Parallel()
	a := []string{"a"}
	b := []string{"b", "c"}
	out := Slice[string]().Combine(a, b)

	assert.Equal(t, []string{"a", "b", "c"}, out)
	// inputs are not aliased
	out[0] = "z"
	assert.Equal(t, []string{"a"}, a)
	assert.Equal(t, []string{}, Slice[string]().Combine([]string{}, nil))
	assert.NotNil(t, Slice[string]().Combine(nil, nil))
}

func TestMap(t *testing.T) {
	t.Parallel()
	s := Map[string](Slice[int]())
	out := s.Combine(
		map[string][]int{"a": {1}, "b": {2}},
		map[string][]int{"b": {3}, "c": {4}},
	)
	assert.Equal(t, map[string][]int{"a": {1}, "b": {2, 3}, "c": {4}}, out)
}

func TestPair(t *testing.T) {
	t.Parallel()
	s := Pair(Add[int](), Slice[string]())
	out := s.Combine(tuple.Of(1, []string{"x"}), tuple.Of(2, []string{"y"}))
	assert.Equal(t, tuple.Of(3, []string{"x", "y"}), out)
}

func TestPair_Nested(t *testing.T) {
	t.Parallel()
	s := Pair(Add[int](), Pair(Native[All](), Native[String]()))
	out := s.Combine(
		tuple.Of(1, tuple.Of(All(true), String("a"))),
		tuple.Of(2, tuple.Of(All(false), String("b"))),
	)
	assert.Equal(t, tuple.Of(3, tuple.Of(All(false), String("ab"))), out)
}

func TestHList(t *testing.T) {
	t.Parallel()
	s := HCons(Add[int](), HCons(Slice[string](), HCons(Option(Mul[float64]()), HNil())))

	a := hlist.Make3(1, []string{"a"}, option.Some(2.0))
	b := hlist.Make3(5, []string{"b"}, option.Some(4.0))
	assert.Equal(t, hlist.Make3(6, []string{"a", "b"}, option.Some(8.0)), s.Combine(a, b))

	assert.Equal(t, hlist.Empty(), HNil().Combine(hlist.Empty(), hlist.Empty()))
}

func TestAssociativity(t *testing.T) {
	t.Parallel()
	assertAssociative(t, Native[Sum[int]](), SumOf(1), SumOf(2), SumOf(3))
	assertAssociative(t, Native[Product[int]](), ProductOf(2), ProductOf(5), ProductOf(7))
	assertAssociative(t, Native[All](), All(true), All(false), All(true))
	assertAssociative(t, Native[Any](), Any(false), Any(false), Any(true))
	assertAssociative(t, Native[Xor](), Xor(true), Xor(true), Xor(false))
	assertAssociative(t, Native[String](), String("a"), String("b"), String("c"))
	assertAssociative(t, Native[Max[int]](), MaxOf(4), MaxOf(1), MaxOf(9))
	assertAssociative(t, Native[Min[int]](), MinOf(4), MinOf(1), MinOf(9))
	assertAssociative(t, Slice[int](), []int{1}, []int{2, 3}, []int{4})
	assertAssociative(t, Option(Add[int]()), option.Some(1), option.None[int](), option.Some(5))
	assertAssociative(t, Map[string](Add[int]()),
		map[string]int{"a": 1}, map[string]int{"a": 2, "b": 1}, map[string]int{"b": 3})
	assertAssociative(t, Pair(Add[int](), Native[String]()),
		tuple.Of(1, String("x")), tuple.Of(2, String("y")), tuple.Of(3, String("z")))

	hs := HCons(Add[int](), HCons(Native[String](), HNil()))
	assertAssociative(t, hs,
		hlist.Make2(1, String("a")), hlist.Make2(2, String("b")), hlist.Make2(3, String("c")))
}
