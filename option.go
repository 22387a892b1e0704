// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

import "fmt"

// Option represents a value that may be absent.
// Folds such as Head, Last, Minimum and Maximum yield None when no element
// contributed, so "empty" is never confused with a valid element value.
type Option[A any] struct {
	ok    bool
	value A
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// GetOrElse returns the value, or def when absent.
func (o Option[A]) GetOrElse(def A) A {
	if o.ok {
		return o.value
	}
	return def
}

// String formats the Option as Some(v) or None.
func (o Option[A]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to a present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}
