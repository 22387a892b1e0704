// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

import "iter"

// Execution drivers. Each opens the fold once, steps it once per element
// in source order, and calls Done once at the end.

// Run executes f over seq in a single pass.
func Run[E, A any](f Fold[E, A], seq iter.Seq[E]) A {
	acc := f.begin()
	for e := range seq {
		acc.Step(e)
	}
	return acc.Done()
}

// RunSlice executes f over xs in order.
func RunSlice[E, A any](f Fold[E, A], xs []E) A {
	acc := f.begin()
	for _, e := range xs {
		acc.Step(e)
	}
	return acc.Done()
}

// Foldable is a finite ordered source that can be iterated once per call to All.
type Foldable[E any] interface {
	All() iter.Seq[E]
}

// RunFoldable executes f over the elements of src.
func RunFoldable[E, A any](f Fold[E, A], src Foldable[E]) A {
	return Run(f, src.All())
}

// Reducer left-reduces a source S: starting from seed, it threads the
// accumulator through step once per element, in order, and returns the
// final accumulator.
//
// Any generic left reduce of the shape
//
//	func Reduce[X, E any](src S, seed X, step func(X, E) X) X
//
// satisfies Reducer[S, E, A] when instantiated with X = Accumulator[E, A].
type Reducer[S, E, A any] func(src S, seed Accumulator[E, A], step func(Accumulator[E, A], E) Accumulator[E, A]) Accumulator[E, A]

// FromReduce builds an execution driver from a left-reduce primitive, so a
// fold can run over any source that knows how to reduce itself without the
// fold knowing which source it is.
//
// Example:
//
//	run := foldl.FromReduce(ReduceList[foldl.Accumulator[int, int], int])
//	total := run(foldl.Sum[int](), list)
func FromReduce[S, E, A any](reduce Reducer[S, E, A]) func(Fold[E, A], S) A {
	return func(f Fold[E, A], src S) A {
		return reduce(src, f.begin(), Advance[E, A]).Done()
	}
}

// Advance steps acc with e and returns it. It is the step function handed
// to a Reducer.
func Advance[E, A any](acc Accumulator[E, A], e E) Accumulator[E, A] {
	acc.Step(e)
	return acc
}
