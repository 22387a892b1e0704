// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

// Fold describes a left fold that consumes elements of type E and
// produces a value of type A.
//
// A Fold is the triple (seed, step, done) over some accumulator type X.
// X is captured when the Fold is built and never appears in its type:
// two folds with unrelated accumulators share the type Fold[E, A] as long
// as they agree on E and A.
//
// A Fold is an immutable description. Building one never traverses a
// source, and every execution starts from a fresh accumulator at the seed,
// so the same Fold may be executed any number of times, concurrently.
//
// The zero Fold is not usable; build folds with [New] or the combinators.
type Fold[E, A any] struct {
	begin func() Accumulator[E, A]
}

// Accumulator is the per-execution state of an opened [Fold].
//
// Step feeds one element. Done extracts the result from the current state;
// execution drivers call it once, after the last Step. Fork returns an
// independent copy of the current state: further steps on either copy are
// not observed by the other.
//
// An Accumulator is owned by a single execution and is not safe for
// concurrent use.
type Accumulator[E, A any] interface {
	Step(e E)
	Done() A
	Fork() Accumulator[E, A]
}

// New packages a seed, a step function and an extraction function into a Fold.
// The accumulator type X is hidden: only E and A are visible on the result.
//
// step must be total over every reachable (X, E) pair and must treat its
// accumulator argument as a value: Fork copies X shallowly.
func New[X, E, A any](seed X, step func(X, E) X, done func(X) A) Fold[E, A] {
	return Fold[E, A]{begin: func() Accumulator[E, A] {
		return &triple[X, E, A]{x: seed, step: step, done: done}
	}}
}

// Open returns a fresh accumulator positioned at the seed.
//
// Open is the only way to reach the hidden state. The caller drives the
// accumulator with Step and finishes it with Done:
//
//	acc := foldl.Sum[int]().Open()
//	for _, x := range xs {
//		acc.Step(x)
//	}
//	total := acc.Done()
func (f Fold[E, A]) Open() Accumulator[E, A] {
	return f.begin()
}

// triple is the accumulator of a Fold built by New.
type triple[X, E, A any] struct {
	x    X
	step func(X, E) X
	done func(X) A
}

func (t *triple[X, E, A]) Step(e E) { t.x = t.step(t.x, e) }

func (t *triple[X, E, A]) Done() A { return t.done(t.x) }

func (t *triple[X, E, A]) Fork() Accumulator[E, A] {
	c := *t
	return &c
}

// identity is the extraction function of folds whose accumulator is the result.
func identity[A any](a A) A { return a }
