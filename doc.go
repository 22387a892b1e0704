// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package foldl provides composable, single-pass left folds in Go.
//
// The core type [Fold] describes an aggregation over a sequence of
// elements: a seed, a step function and an extraction function over an
// accumulator type that is hidden from the Fold's type. Folds are built,
// transformed and fused without touching any data, then executed exactly
// once over a source. However many folds were fused, each element is
// visited once.
//
// # Design Philosophy
//
// foldl provides:
//   - A hidden accumulator: Fold[E, A] exposes only the element type E and
//     the result type A, so folds with unrelated state shapes compose freely
//   - Immutable descriptions: a Fold can be executed any number of times,
//     concurrently, and every execution starts from the seed
//   - Source independence: the same Fold runs over slices, iterators, or any
//     source that can left-reduce itself
//
// # Representation
//
// Go has no existential types and no generic methods. A Fold therefore
// captures its (seed, step, done) triple in a closure and exposes it only
// as an [Accumulator], a per-execution state object with Step, Done and
// Fork. The concrete accumulator type is created by [New] and never leaks.
//
//   - [New]: Package a seed, step and done into a Fold
//   - [Fold.Open]: Obtain a fresh accumulator and drive it by hand
//
// # Structural Operations
//
// Build a new Fold from an existing one without running it:
//
//   - [Map]: Transform the result
//   - [Premap]: Project each input element before stepping
//   - [Promap]: Premap and Map together
//   - [Prefilter]: Skip elements that fail a predicate
//   - [Take]: Consume at most n elements
//   - [Extend]: Expose the fold frozen at its final state as a sub-fold
//   - [Duplicate]: Extend with the identity
//   - [Extract]: The result on no input
//
// # Fusion
//
// Fused folds step every component on the same element in one pass:
//
//   - [Of]: A fold that ignores its input
//   - [Ap]: Apply a fold of functions to a fold of values
//   - [Zip], [Map2], [Map3], [ApFirst], [ApSecond]: Derived fusion
//   - [Do], [ApS]: Fill a record field by field from independent folds
//
// # Execution
//
//   - [Run]: Execute over an iter.Seq
//   - [RunSlice]: Execute over a slice
//   - [RunFoldable]: Execute over a [Foldable]
//   - [FromReduce]: Build a driver from any left-reduce primitive ([Reducer])
//
// # Pipelines
//
// [Transform] is the curried form of a structural operation. [Mapped],
// [Premapped], [Filtered], [Taken] and [Extended] build transforms;
// [Chain] and [Pipe1]–[Pipe4] apply them in read order; [FoldSlice] and
// [FoldSlice1]–[FoldSlice4] apply them and execute over a slice at once.
//
// # Folds
//
//   - [Length], [Null], [Sum], [Product]
//   - [Mean], [Variance], [Std]: Numerically stable running statistics
//   - [Head], [Last], [Find]: First, last and first matching element as [Option]
//   - [Minimum], [Maximum], [MinimumFunc], [MaximumFunc]: Extremes as [Option]
//   - [All], [Any]: Predicates over the whole input
//   - [FoldMap]: Combine through a [Monoid]
//
// [Variance] and [Std] require non-empty input; on empty input they yield NaN.
//
// # Example
//
//	mean := foldl.Map2(foldl.Sum[float64](), foldl.Length[float64](),
//		func(sum float64, n int) float64 { return sum / float64(n) })
//	avg := foldl.RunSlice(mean, []float64{1, 2, 3, 4})
//	// avg == 2.5, computed in one pass
package foldl
