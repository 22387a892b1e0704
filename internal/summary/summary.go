// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package summary builds a fused descriptive-statistics fold over float64
// samples. Every statistic is an independent fold from package foldl; they
// are combined field by field and computed in a single pass.
package summary

import (
	"math"

	"code.hybscloud.com/foldl"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	Count    int
	Sum      float64
	Mean     float64
	Variance float64
	Std      float64
	Min      foldl.Option[float64]
	Max      foldl.Option[float64]
	First    foldl.Option[float64]
	Last     foldl.Option[float64]
}

// Fold returns the fold computing a Summary.
//
// Variance and Std are population statistics. On empty input they are
// reported as 0 rather than NaN.
func Fold() foldl.Fold[float64, Summary] {
	f := foldl.Do[float64, Summary]()
	f = foldl.ApS(f, foldl.Length[float64](), func(s Summary, n int) Summary { s.Count = n; return s })
	f = foldl.ApS(f, foldl.Sum[float64](), func(s Summary, v float64) Summary { s.Sum = v; return s })
	f = foldl.ApS(f, foldl.Mean[float64](), func(s Summary, v float64) Summary { s.Mean = v; return s })
	f = foldl.ApS(f, foldl.Variance[float64](), func(s Summary, v float64) Summary { s.Variance = v; return s })
	f = foldl.ApS(f, foldl.Minimum[float64](), func(s Summary, o foldl.Option[float64]) Summary { s.Min = o; return s })
	f = foldl.ApS(f, foldl.Maximum[float64](), func(s Summary, o foldl.Option[float64]) Summary { s.Max = o; return s })
	f = foldl.ApS(f, foldl.Head[float64](), func(s Summary, o foldl.Option[float64]) Summary { s.First = o; return s })
	f = foldl.ApS(f, foldl.Last[float64](), func(s Summary, o foldl.Option[float64]) Summary { s.Last = o; return s })
	return foldl.Map(f, finish)
}

// finish derives Std and replaces the undefined variance of an empty sample.
func finish(s Summary) Summary {
	if s.Count == 0 {
		s.Variance = 0
	}
	s.Std = math.Sqrt(s.Variance)
	return s
}

// Options selects and reshapes the samples before they are summarized.
type Options struct {
	// Take limits the summary to the first Take accepted samples. 0 means no limit.
	Take int
	// Min and Max reject samples outside [Min, Max] after scaling. nil means unbounded.
	Min *float64
	Max *float64
	// Scale and Offset map every raw sample x to x*Scale + Offset.
	// A zero Scale is treated as 1.
	Scale  float64
	Offset float64
}

// Build returns the summary fold behind the input pipeline described by opts.
// A raw sample is scaled, then range checked, then counted against Take.
func Build(opts Options) foldl.Fold[float64, Summary] {
	var ts []foldl.Transform[float64, Summary, float64, Summary]
	if opts.Take > 0 {
		ts = append(ts, foldl.Taken[float64, Summary](opts.Take))
	}
	if opts.Min != nil || opts.Max != nil {
		ts = append(ts, foldl.Filtered[Summary](inRange(opts.Min, opts.Max)))
	}
	if (opts.Scale != 0 && opts.Scale != 1) || opts.Offset != 0 {
		ts = append(ts, foldl.Premapped[Summary](affine(opts.Scale, opts.Offset)))
	}
	return foldl.Chain(Fold(), ts...)
}

func inRange(lo, hi *float64) func(float64) bool {
	return func(x float64) bool {
		if lo != nil && x < *lo {
			return false
		}
		if hi != nil && x > *hi {
			return false
		}
		return true
	}
}

func affine(scale, offset float64) func(float64) float64 {
	if scale == 0 {
		scale = 1
	}
	return func(x float64) float64 { return x*scale + offset }
}
