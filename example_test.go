// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package foldl_test

import (
	"fmt"
	"slices"
	"strings"

	"code.hybscloud.com/foldl"
)

func ExampleMap2() {
	mean := foldl.Map2(foldl.Sum[float64](), foldl.Length[float64](), func(s float64, n int) float64 {
		return s / float64(n)
	})
	fmt.Println(foldl.RunSlice(mean, []float64{1, 2, 3, 4}))
	// Output: 2.5
}

func ExampleZip() {
	f := foldl.Zip(foldl.Minimum[int](), foldl.Maximum[int]())
	r := foldl.RunSlice(f, []int{3, 1, 4, 1, 5})
	fmt.Println(r.Fst, r.Snd)
	// Output: Some(1) Some(5)
}

func ExampleFoldSlice2() {
	isEven := func(n int) bool { return n%2 == 0 }
	inc := func(n int) int { return n + 1 }
	fmt.Println(foldl.FoldSlice2([]int{0, 1, 2, 3, 4}, foldl.Sum[int](), foldl.Filtered[int](isEven), foldl.Premapped[int](inc)))
	// Output: 6
}

func ExampleTake() {
	f := foldl.Take(foldl.Sum[int](), 3)
	fmt.Println(foldl.Run(f, slices.Values([]int{1, 2, 3, 4, 5})))
	// Output: 6
}

func ExampleExtend() {
	// The sub-fold resumes from the state reached by the outer run.
	f := foldl.Extend(foldl.Sum[int](), func(sub foldl.Fold[int, int]) int {
		return foldl.RunSlice(sub, []int{10, 20})
	})
	fmt.Println(foldl.RunSlice(f, []int{1, 2, 3}))
	// Output: 36
}

func ExampleApS() {
	type stats struct {
		words int
		chars int
	}
	f := foldl.Do[string, stats]()
	f = foldl.ApS(f, foldl.Length[string](), func(s stats, n int) stats { s.words = n; return s })
	f = foldl.ApS(f, foldl.Premap(foldl.Sum[int](), func(w string) int { return len(w) }), func(s stats, n int) stats { s.chars = n; return s })

	fmt.Printf("%+v\n", foldl.RunSlice(f, strings.Fields("one pass over the words")))
	// Output: {words:5 chars:19}
}

func ExampleFoldMap() {
	concat := foldl.MonoidOf("", func(a, b string) string { return a + b })
	fmt.Println(foldl.RunSlice(foldl.FoldMap(concat, strings.ToUpper, func(s string) string { return s }), []string{"fo", "ld", "l"}))
	// Output: FOLDL
}
