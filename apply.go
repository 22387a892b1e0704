// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

// Applicative fusion.
//
// Minimal definition: Of (unit) and Ap are sufficient. Zip, Map2, Map3,
// ApFirst, ApSecond and ApS are derived but built directly on the paired
// accumulator to avoid allocating an intermediate func(A) B per execution.

// Of returns a fold that ignores its input and always yields a.
// Of is the identity element for Ap.
func Of[E, A any](a A) Fold[E, A] {
	c := &constant[E, A]{a: a}
	return Fold[E, A]{begin: c.self}
}

type constant[E, A any] struct{ a A }

func (c *constant[E, A]) self() Accumulator[E, A] { return c }

func (*constant[E, A]) Step(E) {}

func (c *constant[E, A]) Done() A { return c.a }

func (c *constant[E, A]) Fork() Accumulator[E, A] { return c }

// both steps two accumulators in lock-step on the same element.
// Its state is the pair of the two hidden states.
type both[E, A, B, C any] struct {
	l    Accumulator[E, A]
	r    Accumulator[E, B]
	join func(A, B) C
}

func (p *both[E, A, B, C]) Step(e E) {
	p.l.Step(e)
	p.r.Step(e)
}

func (p *both[E, A, B, C]) Done() C { return p.join(p.l.Done(), p.r.Done()) }

func (p *both[E, A, B, C]) Fork() Accumulator[E, C] {
	return &both[E, A, B, C]{l: p.l.Fork(), r: p.r.Fork(), join: p.join}
}

// Map2 fuses fa and fb into one fold that steps both on every element and
// combines their results with f. The source is traversed once.
func Map2[E, A, B, C any](fa Fold[E, A], fb Fold[E, B], f func(A, B) C) Fold[E, C] {
	return Fold[E, C]{begin: func() Accumulator[E, C] {
		return &both[E, A, B, C]{l: fa.begin(), r: fb.begin(), join: f}
	}}
}

// Map3 fuses three folds with a ternary combining function.
func Map3[E, A, B, C, D any](fa Fold[E, A], fb Fold[E, B], fc Fold[E, C], f func(A, B, C) D) Fold[E, D] {
	return Map2(Zip(fa, fb), fc, func(ab Pair[A, B], c C) D {
		return f(ab.Fst, ab.Snd, c)
	})
}

// Ap applies the function produced by ff to the value produced by fa.
// Both folds run in the same pass over the source.
func Ap[E, A, B any](ff Fold[E, func(A) B], fa Fold[E, A]) Fold[E, B] {
	return Map2(ff, fa, apply[A, B])
}

func apply[A, B any](f func(A) B, a A) B { return f(a) }

// Zip fuses two folds into one that yields both results.
func Zip[E, A, B any](fa Fold[E, A], fb Fold[E, B]) Fold[E, Pair[A, B]] {
	return Map2(fa, fb, MakePair[A, B])
}

// ApFirst runs both folds and keeps the result of fa.
func ApFirst[E, A, B any](fa Fold[E, A], fb Fold[E, B]) Fold[E, A] {
	return Map2(fa, fb, first[A, B])
}

// ApSecond runs both folds and keeps the result of fb.
func ApSecond[E, A, B any](fa Fold[E, A], fb Fold[E, B]) Fold[E, B] {
	return Map2(fa, fb, second[A, B])
}

func first[A, B any](a A, _ B) A { return a }

func second[A, B any](_ A, b B) B { return b }

// Do starts a field-by-field fused fold over a record type S.
// It is Of(zero S); fields are filled in by ApS.
//
// Example:
//
//	type stats struct {
//		n   int
//		sum float64
//	}
//	f := foldl.ApS(
//		foldl.ApS(foldl.Do[float64, stats](), foldl.Length[float64](),
//			func(s stats, n int) stats { s.n = n; return s }),
//		foldl.Sum[float64](),
//		func(s stats, v float64) stats { s.sum = v; return s },
//	)
func Do[E, S any]() Fold[E, S] {
	var zero S
	return Of[E](zero)
}

// ApS sets one field of the record produced by fs from the result of fb.
// fb is an independent fold; it runs in the same pass as fs.
func ApS[E, S, B any](fs Fold[E, S], fb Fold[E, B], set func(S, B) S) Fold[E, S] {
	return Map2(fs, fb, set)
}
