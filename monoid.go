// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

import "slices"

// Monoid is an associative binary operation with an identity element.
// Concat must be associative and Empty must be its identity.
//
// Concat must not modify its arguments. That includes the spare capacity of
// a slice: append(a, b...) writes into a's backing array, which a forked
// accumulator (see [Extend]) still shares. Use [SliceMonoid] for slices.
type Monoid[M any] interface {
	Empty() M
	Concat(a, b M) M
}

// monoidFunc is a Monoid backed by a value and a function.
type monoidFunc[M any] struct {
	empty  M
	concat func(M, M) M
}

func (m monoidFunc[M]) Empty() M { return m.empty }

func (m monoidFunc[M]) Concat(a, b M) M { return m.concat(a, b) }

// MonoidOf creates a Monoid from an identity element and a combining function.
//
// Example:
//
//	concat := foldl.MonoidOf("", func(a, b string) string { return a + b })
func MonoidOf[M any](empty M, concat func(M, M) M) Monoid[M] {
	return monoidFunc[M]{empty: empty, concat: concat}
}

// SliceMonoid is concatenation of slices. Concat always returns a fresh
// slice, so folds built on it can be forked and resumed safely.
func SliceMonoid[T any]() Monoid[[]T] {
	return MonoidOf([]T(nil), concatSlices[T])
}

func concatSlices[T any](a, b []T) []T { return slices.Concat(a, b) }
