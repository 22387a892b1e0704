// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl

// Structural operations build a new Fold from an existing one without
// running either. Each wraps the inner accumulator; the inner accumulator
// type stays hidden behind the Accumulator interface.

// Map applies g to the result of f. Seed and step are unchanged.
func Map[E, A, B any](f Fold[E, A], g func(A) B) Fold[E, B] {
	return Fold[E, B]{begin: func() Accumulator[E, B] {
		return &mapped[E, A, B]{inner: f.begin(), g: g}
	}}
}

type mapped[E, A, B any] struct {
	inner Accumulator[E, A]
	g     func(A) B
}

func (m *mapped[E, A, B]) Step(e E) { m.inner.Step(e) }

func (m *mapped[E, A, B]) Done() B { return m.g(m.inner.Done()) }

func (m *mapped[E, A, B]) Fork() Accumulator[E, B] {
	return &mapped[E, A, B]{inner: m.inner.Fork(), g: m.g}
}

// Premap adapts f to consume elements of type D by projecting each one with g
// before it reaches f's step.
func Premap[D, E, A any](f Fold[E, A], g func(D) E) Fold[D, A] {
	return Fold[D, A]{begin: func() Accumulator[D, A] {
		return &premapped[D, E, A]{inner: f.begin(), g: g}
	}}
}

type premapped[D, E, A any] struct {
	inner Accumulator[E, A]
	g     func(D) E
}

func (m *premapped[D, E, A]) Step(d D) { m.inner.Step(m.g(d)) }

func (m *premapped[D, E, A]) Done() A { return m.inner.Done() }

func (m *premapped[D, E, A]) Fork() Accumulator[D, A] {
	return &premapped[D, E, A]{inner: m.inner.Fork(), g: m.g}
}

// Promap is Premap followed by Map.
func Promap[D, E, A, B any](f Fold[E, A], pre func(D) E, post func(A) B) Fold[D, B] {
	return Map(Premap(f, pre), post)
}

// Prefilter skips the step of f for elements that fail p.
// p is evaluated exactly once per element, during execution.
func Prefilter[E, A any](f Fold[E, A], p func(E) bool) Fold[E, A] {
	return Fold[E, A]{begin: func() Accumulator[E, A] {
		return &filtered[E, A]{inner: f.begin(), p: p}
	}}
}

type filtered[E, A any] struct {
	inner Accumulator[E, A]
	p     func(E) bool
}

func (m *filtered[E, A]) Step(e E) {
	if m.p(e) {
		m.inner.Step(e)
	}
}

func (m *filtered[E, A]) Done() A { return m.inner.Done() }

func (m *filtered[E, A]) Fork() Accumulator[E, A] {
	return &filtered[E, A]{inner: m.inner.Fork(), p: m.p}
}

// Take bounds f to the first n elements it receives. Later elements are
// ignored. Take(f, 0) yields f's result on no input; a negative n is treated
// as 0. When n exceeds the number of elements Take has no effect.
func Take[E, A any](f Fold[E, A], n int) Fold[E, A] {
	n = max(n, 0)
	return Fold[E, A]{begin: func() Accumulator[E, A] {
		return &taken[E, A]{inner: f.begin(), left: n}
	}}
}

type taken[E, A any] struct {
	inner Accumulator[E, A]
	left  int
}

func (m *taken[E, A]) Step(e E) {
	if m.left == 0 {
		return
	}
	m.left--
	m.inner.Step(e)
}

func (m *taken[E, A]) Done() A { return m.inner.Done() }

func (m *taken[E, A]) Fork() Accumulator[E, A] {
	return &taken[E, A]{inner: m.inner.Fork(), left: m.left}
}

// Extend turns f into a fold whose result is g applied to the sub-fold that
// continues from f's final state. The sub-fold is itself a Fold: executing it
// over more elements resumes where the outer execution stopped, and it can be
// executed any number of times.
//
// Extend(f, g) steps exactly like f; no intermediate states are collected.
func Extend[E, A, B any](f Fold[E, A], g func(Fold[E, A]) B) Fold[E, B] {
	return Fold[E, B]{begin: func() Accumulator[E, B] {
		return &extended[E, A, B]{inner: f.begin(), g: g}
	}}
}

type extended[E, A, B any] struct {
	inner Accumulator[E, A]
	g     func(Fold[E, A]) B
}

func (m *extended[E, A, B]) Step(e E) { m.inner.Step(e) }

// Done freezes the current state and hands g a Fold rooted at it.
// Each execution of that Fold forks the frozen state again.
func (m *extended[E, A, B]) Done() B {
	frozen := m.inner.Fork()
	return m.g(Fold[E, A]{begin: frozen.Fork})
}

func (m *extended[E, A, B]) Fork() Accumulator[E, B] {
	return &extended[E, A, B]{inner: m.inner.Fork(), g: m.g}
}

// Duplicate is Extend with the identity: the result of the outer fold is the
// inner fold frozen at the final state.
func Duplicate[E, A any](f Fold[E, A]) Fold[E, Fold[E, A]] {
	return Extend(f, identity[Fold[E, A]])
}

// Extract returns what f yields on no input: done applied to the seed.
//
// Extract(Extend(f, g)) ≡ g(f); in particular Extract(Duplicate(f)) is a Fold
// that behaves exactly like f.
func Extract[E, A any](f Fold[E, A]) A {
	return f.begin().Done()
}
