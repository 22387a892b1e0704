// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

// Pipelines apply structural operations in read order: the leftmost
// transform is applied to the base fold first, so the rightmost one sees
// raw elements first. For example
//
//	FoldSlice2(xs, Sum[int](), Filtered[int](isEven), Premapped[int](inc))
//
// increments every element, keeps the even results and sums them.
//
// The curried constructors list the fold's result type first so that it is
// the only type argument that has to be written out.

// Transform builds a Fold[E2, B] from a Fold[E, A] without running it.
type Transform[E, A, E2, B any] func(Fold[E, A]) Fold[E2, B]

// Mapped is the curried form of Map.
func Mapped[E, A, B any](g func(A) B) Transform[E, A, E, B] {
	return func(f Fold[E, A]) Fold[E, B] { return Map(f, g) }
}

// Premapped is the curried form of Premap.
func Premapped[A, D, E any](g func(D) E) Transform[E, A, D, A] {
	return func(f Fold[E, A]) Fold[D, A] { return Premap(f, g) }
}

// Filtered is the curried form of Prefilter.
func Filtered[A, E any](p func(E) bool) Transform[E, A, E, A] {
	return func(f Fold[E, A]) Fold[E, A] { return Prefilter(f, p) }
}

// Taken is the curried form of Take.
func Taken[E, A any](n int) Transform[E, A, E, A] {
	return func(f Fold[E, A]) Fold[E, A] { return Take(f, n) }
}

// Extended is the curried form of Extend.
func Extended[E, A, B any](g func(Fold[E, A]) B) Transform[E, A, E, B] {
	return func(f Fold[E, A]) Fold[E, B] { return Extend(f, g) }
}

// Chain applies ts to f from left to right. It accepts any number of
// transforms that preserve the fold's type.
func Chain[E, A any](f Fold[E, A], ts ...Transform[E, A, E, A]) Fold[E, A] {
	for _, t := range ts {
		f = t(f)
	}
	return f
}

// Pipe1 applies one transform.
func Pipe1[E0, A0, E1, A1 any](f Fold[E0, A0], t1 Transform[E0, A0, E1, A1]) Fold[E1, A1] {
	return t1(f)
}

// Pipe2 applies two transforms in read order.
func Pipe2[E0, A0, E1, A1, E2, A2 any](
	f Fold[E0, A0],
	t1 Transform[E0, A0, E1, A1],
	t2 Transform[E1, A1, E2, A2],
) Fold[E2, A2] {
	return t2(t1(f))
}

// Pipe3 applies three transforms in read order.
func Pipe3[E0, A0, E1, A1, E2, A2, E3, A3 any](
	f Fold[E0, A0],
	t1 Transform[E0, A0, E1, A1],
	t2 Transform[E1, A1, E2, A2],
	t3 Transform[E2, A2, E3, A3],
) Fold[E3, A3] {
	return t3(t2(t1(f)))
}

// Pipe4 applies four transforms in read order.
func Pipe4[E0, A0, E1, A1, E2, A2, E3, A3, E4, A4 any](
	f Fold[E0, A0],
	t1 Transform[E0, A0, E1, A1],
	t2 Transform[E1, A1, E2, A2],
	t3 Transform[E2, A2, E3, A3],
	t4 Transform[E3, A3, E4, A4],
) Fold[E4, A4] {
	return t4(t3(t2(t1(f))))
}

// FoldSlice applies ts to base in read order and runs the result over xs.
// This is the fallback for chains of any length whose transforms preserve
// the fold's type; FoldSlice1 through FoldSlice4 accept type-changing chains.
func FoldSlice[E, A any](xs []E, base Fold[E, A], ts ...Transform[E, A, E, A]) A {
	return RunSlice(Chain(base, ts...), xs)
}

// FoldSlice1 applies one transform to base and runs the result over xs.
func FoldSlice1[E0, A0, E1, A1 any](xs []E1, base Fold[E0, A0], t1 Transform[E0, A0, E1, A1]) A1 {
	return RunSlice(Pipe1(base, t1), xs)
}

// FoldSlice2 applies two transforms to base in read order and runs the result over xs.
func FoldSlice2[E0, A0, E1, A1, E2, A2 any](
	xs []E2,
	base Fold[E0, A0],
	t1 Transform[E0, A0, E1, A1],
	t2 Transform[E1, A1, E2, A2],
) A2 {
	return RunSlice(Pipe2(base, t1, t2), xs)
}

// FoldSlice3 applies three transforms to base in read order and runs the result over xs.
func FoldSlice3[E0, A0, E1, A1, E2, A2, E3, A3 any](
	xs []E3,
	base Fold[E0, A0],
	t1 Transform[E0, A0, E1, A1],
	t2 Transform[E1, A1, E2, A2],
	t3 Transform[E2, A2, E3, A3],
) A3 {
	return RunSlice(Pipe3(base, t1, t2, t3), xs)
}

// FoldSlice4 applies four transforms to base in read order and runs the result over xs.
func FoldSlice4[E0, A0, E1, A1, E2, A2, E3, A3, E4, A4 any](
	xs []E4,
	base Fold[E0, A0],
	t1 Transform[E0, A0, E1, A1],
	t2 Transform[E1, A1, E2, A2],
	t3 Transform[E2, A2, E3, A3],
	t4 Transform[E3, A3, E4, A4],
) A4 {
	return RunSlice(Pipe4(base, t1, t2, t3, t4), xs)
}
