// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/foldl"
)

const propertyN = 1000

// randInts returns a random slice of length [0, 32] with values in [-1000, 1000].
func randInts(rng *rand.Rand) []int {
	xs := make([]int, rng.IntN(33))
	for i := range xs {
		xs[i] = rng.IntN(2001) - 1000
	}
	return xs
}

// randStrings returns a random slice of short ASCII strings.
func randStrings(rng *rand.Rand) []string {
	xs := make([]string, rng.IntN(33))
	for i := range xs {
		b := make([]byte, rng.IntN(9))
		for j := range b {
			b[j] = byte(rng.IntN(95) + 32)
		}
		xs[i] = string(b)
	}
	return xs
}

func filter(xs []int, p func(int) bool) []int {
	var out []int
	for _, x := range xs {
		if p(x) {
			out = append(out, x)
		}
	}
	return out
}

func mapInts(xs []int, f func(int) int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// --- Group 1: Native Equivalence ---

// TestPropertyLength: RunSlice(Length, xs) ≡ len(xs)
func TestPropertyLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randStrings(rng)
		if got := foldl.RunSlice(foldl.Length[string](), xs); got != len(xs) {
			t.Fatalf("length: %d != %d", got, len(xs))
		}
	}
}

// TestPropertySum: RunSlice(Sum, xs) ≡ loop sum
func TestPropertySum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		want := 0
		for _, x := range xs {
			want += x
		}
		if got := foldl.RunSlice(foldl.Sum[int](), xs); got != want {
			t.Fatalf("sum: %d != %d (xs=%v)", got, want, xs)
		}
	}
}

// TestPropertyHeadLastMinMax: Head, Last, Minimum, Maximum ≡ slice indexing and slices.Min/Max
func TestPropertyHeadLastMinMax(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		got := foldl.RunSlice(foldl.Zip(
			foldl.Zip(foldl.Head[int](), foldl.Last[int]()),
			foldl.Zip(foldl.Minimum[int](), foldl.Maximum[int]()),
		), xs)
		if len(xs) == 0 {
			if got.Fst.Fst.IsSome() || got.Fst.Snd.IsSome() || got.Snd.Fst.IsSome() || got.Snd.Snd.IsSome() {
				t.Fatalf("empty input: got %v, want all None", got)
			}
			continue
		}
		want := foldl.MakePair(
			foldl.MakePair(foldl.Some(xs[0]), foldl.Some(xs[len(xs)-1])),
			foldl.MakePair(foldl.Some(slices.Min(xs)), foldl.Some(slices.Max(xs))),
		)
		if got != want {
			t.Fatalf("got %v, want %v (xs=%v)", got, want, xs)
		}
	}
}

// --- Group 2: Input Transforms ---

// TestPropertyPrefilter: RunSlice(Prefilter(f, p), xs) ≡ RunSlice(f, filter(xs, p))
func TestPropertyPrefilter(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := foldl.Zip(foldl.Length[int](), foldl.Sum[int]())
	for range propertyN {
		xs := randInts(rng)
		left := foldl.RunSlice(foldl.Prefilter(f, isEven), xs)
		right := foldl.RunSlice(f, filter(xs, isEven))
		if left != right {
			t.Fatalf("prefilter: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// TestPropertyPremap: RunSlice(Premap(f, g), xs) ≡ RunSlice(f, map(xs, g))
func TestPropertyPremap(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	g := func(n int) int { return n*3 - 1 }
	f := foldl.Zip(foldl.Maximum[int](), foldl.Sum[int]())
	for range propertyN {
		xs := randInts(rng)
		left := foldl.RunSlice(foldl.Premap(f, g), xs)
		right := foldl.RunSlice(f, mapInts(xs, g))
		if left != right {
			t.Fatalf("premap: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// TestPropertyTake: RunSlice(Take(f, n), xs) ≡ RunSlice(f, xs[:min(n, len(xs))])
func TestPropertyTake(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := foldl.Zip(foldl.Last[int](), foldl.Sum[int]())
	for range propertyN {
		xs := randInts(rng)
		n := rng.IntN(40)
		left := foldl.RunSlice(foldl.Take(f, n), xs)
		right := foldl.RunSlice(f, xs[:min(n, len(xs))])
		if left != right {
			t.Fatalf("take %d: %v != %v (xs=%v)", n, left, right, xs)
		}
	}
}

// TestPropertyTakeZero: RunSlice(Take(f, 0), xs) ≡ RunSlice(f, nil)
func TestPropertyTakeZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := foldl.Zip(foldl.Head[int](), foldl.Length[int]())
	for range propertyN {
		xs := randInts(rng)
		if left, right := foldl.RunSlice(foldl.Take(f, 0), xs), foldl.RunSlice(f, nil); left != right {
			t.Fatalf("take 0: %v != %v", left, right)
		}
	}
}

// --- Group 3: Fusion ---

// TestPropertyFusion: RunSlice(Zip(f1, f2), xs) ≡ (RunSlice(f1, xs), RunSlice(f2, xs))
func TestPropertyFusion(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f1 := foldl.Take(foldl.Prefilter(foldl.Sum[int](), isEven), 5)
	f2 := foldl.Premap(foldl.Minimum[int](), func(n int) int { return -n })
	for range propertyN {
		xs := randInts(rng)
		got := foldl.RunSlice(foldl.Zip(f1, f2), xs)
		want := foldl.MakePair(foldl.RunSlice(f1, xs), foldl.RunSlice(f2, xs))
		if got != want {
			t.Fatalf("fusion: %v != %v (xs=%v)", got, want, xs)
		}
	}
}

// TestPropertyApComposition: Ap(Ap(Map(u, compose), v), w) ≡ Ap(u, Ap(v, w))
func TestPropertyApComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	u := foldl.Map(foldl.Sum[int](), func(s int) func(int) int { return func(x int) int { return x + s } })
	v := foldl.Map(foldl.Length[int](), func(n int) func(int) int { return func(x int) int { return x * n } })
	w := foldl.Map(foldl.Maximum[int](), func(o foldl.Option[int]) int { return o.GetOrElse(0) })
	compose := func(f func(int) int) func(func(int) int) func(int) int {
		return func(g func(int) int) func(int) int { return func(x int) int { return f(g(x)) } }
	}
	for range propertyN {
		xs := randInts(rng)
		left := foldl.RunSlice(foldl.Ap(foldl.Ap(foldl.Map(u, compose), v), w), xs)
		right := foldl.RunSlice(foldl.Ap(u, foldl.Ap(v, w)), xs)
		if left != right {
			t.Fatalf("composition: %d != %d (xs=%v)", left, right, xs)
		}
	}
}

// --- Group 4: Comonad Laws ---

// TestPropertyExtractDuplicate: Extract(Duplicate(f)) ≡ f
func TestPropertyExtractDuplicate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := foldl.Zip(foldl.Take(foldl.Sum[int](), 3), foldl.Last[int]())
	for range propertyN {
		xs := randInts(rng)
		left := foldl.RunSlice(foldl.Extract(foldl.Duplicate(f)), xs)
		right := foldl.RunSlice(f, xs)
		if left != right {
			t.Fatalf("extract duplicate: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// TestPropertyDuplicateResumes: RunSlice(RunSlice(Duplicate(f), xs), ys) ≡ RunSlice(f, xs ++ ys)
func TestPropertyDuplicateResumes(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := foldl.Zip(foldl.Prefilter(foldl.Length[int](), isEven), foldl.Head[int]())
	for range propertyN {
		xs, ys := randInts(rng), randInts(rng)
		left := foldl.RunSlice(foldl.RunSlice(foldl.Duplicate(f), xs), ys)
		right := foldl.RunSlice(f, slices.Concat(xs, ys))
		if left != right {
			t.Fatalf("duplicate resume: %v != %v (xs=%v ys=%v)", left, right, xs, ys)
		}
	}
}

// TestPropertyMeanVariance: Mean and Variance agree with the two-pass formulas.
func TestPropertyMeanVariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := foldl.Premap(foldl.Zip(foldl.Mean[float64](), foldl.Variance[float64]()),
		func(n int) float64 { return float64(n) })
	for range propertyN {
		xs := randInts(rng)
		if len(xs) == 0 {
			continue
		}
		var mean float64
		for _, x := range xs {
			mean += float64(x)
		}
		mean /= float64(len(xs))
		var ss float64
		for _, x := range xs {
			d := float64(x) - mean
			ss += d * d
		}
		got := foldl.RunSlice(f, xs)
		if !approx(got.Fst, mean) || !approx(got.Snd, ss/float64(len(xs))) {
			t.Fatalf("got %v, want {%v %v} (xs=%v)", got, mean, ss/float64(len(xs)), xs)
		}
	}
}
