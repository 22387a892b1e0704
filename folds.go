// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types the arithmetic folds accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of element types the statistical folds accept.
type Float interface {
	constraints.Float
}

// Length counts the elements. The element values are ignored.
func Length[E any]() Fold[E, int] {
	return New(0, countStep[E], identity[int])
}

func countStep[E any](n int, _ E) int { return n + 1 }

// Null yields true when no element was consumed.
func Null[E any]() Fold[E, bool] {
	return New(true, func(bool, E) bool { return false }, identity[bool])
}

// Sum adds the elements. Overflow wraps as Go arithmetic does.
func Sum[N Number]() Fold[N, N] {
	return New(N(0), add[N], identity[N])
}

func add[N Number](a, b N) N { return a + b }

// Product multiplies the elements. The product of no elements is 1.
func Product[N Number]() Fold[N, N] {
	return New(N(1), mul[N], identity[N])
}

func mul[N Number](a, b N) N { return a * b }

// meanState is the accumulator of Mean.
type meanState[F Float] struct {
	mean F
	n    int
}

// Mean computes the arithmetic mean with an incremental update,
// mean' = mean + (x-mean)/(n+1), instead of dividing a running sum.
// The mean of no elements is 0.
func Mean[F Float]() Fold[F, F] {
	return New(meanState[F]{}, meanStep[F], func(s meanState[F]) F { return s.mean })
}

func meanStep[F Float](s meanState[F], x F) meanState[F] {
	n := s.n + 1
	return meanState[F]{mean: s.mean + (x-s.mean)/F(n), n: n}
}

// welford is the accumulator of Variance.
type welford[F Float] struct {
	n    int
	mean F
	m2   F
}

// Variance computes the population variance with Welford's online algorithm.
//
// Variance requires at least one element: on empty input the result is
// 0/0, which is NaN. Callers that may see empty input should guard it,
// for example with Map2(Length, Variance, ...).
func Variance[F Float]() Fold[F, F] {
	return New(welford[F]{}, welfordStep[F], func(s welford[F]) F { return s.m2 / F(s.n) })
}

func welfordStep[F Float](s welford[F], x F) welford[F] {
	n := s.n + 1
	delta := x - s.mean
	mean := s.mean + delta/F(n)
	return welford[F]{n: n, mean: mean, m2: s.m2 + delta*(x-mean)}
}

// Std is the square root of Variance, with the same precondition.
func Std[F Float]() Fold[F, F] {
	return Map(Variance[F](), func(v F) F { return F(math.Sqrt(float64(v))) })
}

// Head yields the first element, or None on empty input.
func Head[E any]() Fold[E, Option[E]] {
	return New(None[E](), headStep[E], identity[Option[E]])
}

func headStep[E any](o Option[E], e E) Option[E] {
	if o.ok {
		return o
	}
	return Some(e)
}

// Last yields the last element, or None on empty input.
func Last[E any]() Fold[E, Option[E]] {
	return New(None[E](), lastStep[E], identity[Option[E]])
}

func lastStep[E any](_ Option[E], e E) Option[E] { return Some(e) }

// MinimumFunc yields the least element under compare, or None on empty input.
// compare must be a total order returning a negative number when a < b,
// zero when a == b and a positive number when a > b. Among equal elements
// the first one seen is kept.
func MinimumFunc[E any](compare func(a, b E) int) Fold[E, Option[E]] {
	return New(None[E](), func(o Option[E], e E) Option[E] {
		if !o.ok || compare(e, o.value) < 0 {
			return Some(e)
		}
		return o
	}, identity[Option[E]])
}

// MaximumFunc yields the greatest element under compare, or None on empty input.
// Among equal elements the first one seen is kept.
func MaximumFunc[E any](compare func(a, b E) int) Fold[E, Option[E]] {
	return New(None[E](), func(o Option[E], e E) Option[E] {
		if !o.ok || compare(e, o.value) > 0 {
			return Some(e)
		}
		return o
	}, identity[Option[E]])
}

// Minimum is MinimumFunc with the natural order of E.
func Minimum[E cmp.Ordered]() Fold[E, Option[E]] {
	return MinimumFunc(cmp.Compare[E])
}

// Maximum is MaximumFunc with the natural order of E.
func Maximum[E cmp.Ordered]() Fold[E, Option[E]] {
	return MaximumFunc(cmp.Compare[E])
}

// FoldMap maps every element into the monoid m with to, combines them with
// m.Concat starting from m.Empty, and converts the total with from.
// m.Concat must leave its arguments untouched; see [Monoid].
func FoldMap[E, M, B any](m Monoid[M], to func(E) M, from func(M) B) Fold[E, B] {
	return New(m.Empty(), func(acc M, e E) M { return m.Concat(acc, to(e)) }, from)
}

// All yields true when every element satisfies p. It is true on empty input.
func All[E any](p func(E) bool) Fold[E, bool] {
	return New(true, func(ok bool, e E) bool { return ok && p(e) }, identity[bool])
}

// Any yields true when some element satisfies p. It is false on empty input.
func Any[E any](p func(E) bool) Fold[E, bool] {
	return New(false, func(ok bool, e E) bool { return ok || p(e) }, identity[bool])
}

// Find yields the first element that satisfies p, or None.
func Find[E any](p func(E) bool) Fold[E, Option[E]] {
	return New(None[E](), func(o Option[E], e E) Option[E] {
		if o.ok || !p(e) {
			return o
		}
		return Some(e)
	}, identity[Option[E]])
}
