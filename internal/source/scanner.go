// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package source provides sequence sources for folds: a numeric scanner over
// text input, adapters for gods containers and channels, and left-reduce
// primitives for foldl.FromReduce.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// ErrParse is returned by Scanner.Err when a token is not a number.
var ErrParse = errors.New("source: invalid number")

// MaxLineSize is the longest input line a Scanner accepts.
const MaxLineSize = 64 << 20

// Scanner reads whitespace separated floating point numbers from an io.Reader.
// A '#' starts a comment that runs to the end of the line.
//
// Like bufio.Scanner, iteration stops at the first error, which is then
// reported by Err.
type Scanner struct {
	r    io.Reader
	line int
	err  error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: r}
}

// All returns an iterator over the numbers of the input.
// The input is consumed once; a second call yields nothing.
func (s *Scanner) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if s.r == nil {
			return
		}
		sc := bufio.NewScanner(s.r)
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
		s.r = nil
		for sc.Scan() {
			s.line++
			text := sc.Text()
			if i := strings.IndexByte(text, '#'); i >= 0 {
				text = text[:i]
			}
			for _, tok := range strings.Fields(text) {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					s.err = fmt.Errorf("line %d: %q: %w", s.line, tok, ErrParse)
					return
				}
				if !yield(v) {
					return
				}
			}
		}
		if err := sc.Err(); err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line+1, err)
		}
	}
}

// Lines returns the number of lines read so far.
func (s *Scanner) Lines() int {
	return s.line
}

// Err returns the first error met by All, or nil.
func (s *Scanner) Err() error {
	return s.err
}
