// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a Pair from its two components.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}
