// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package source

import (
	"iter"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// Enumerable is an untyped ordered container that can visit its elements in
// order. gods lists (arraylist, singlylinkedlist, doublylinkedlist) satisfy it.
type Enumerable interface {
	Each(f func(index int, value interface{}))
}

// ArrayList copies xs into a gods array list.
func ArrayList[E any](xs []E) *arraylist.List {
	l := arraylist.New()
	for _, x := range xs {
		l.Add(x)
	}
	return l
}

// LinkedList copies xs into a gods singly linked list.
func LinkedList[E any](xs []E) *singlylinkedlist.List {
	l := singlylinkedlist.New()
	for _, x := range xs {
		l.Add(x)
	}
	return l
}

// FromList returns an iterator over the elements of l as values of type E.
// Every element of l must hold an E. gods lists are walked with their own
// iterator, so breaking out of the loop stops the walk; other Enumerables
// are visited with Each.
func FromList[E any](l Enumerable) iter.Seq[E] {
	return func(yield func(E) bool) {
		if it := iteratorOf(l); it != nil {
			for it.Next() {
				if !yield(it.Value().(E)) {
					return
				}
			}
			return
		}
		stopped := false
		l.Each(func(_ int, v interface{}) {
			if stopped {
				return
			}
			stopped = !yield(v.(E))
		})
	}
}

// FromIterator returns an iterator over the remaining elements of it.
func FromIterator[E any](it containers.IteratorWithIndex) iter.Seq[E] {
	return func(yield func(E) bool) {
		for it.Next() {
			if !yield(it.Value().(E)) {
				return
			}
		}
	}
}

func iteratorOf(l Enumerable) containers.IteratorWithIndex {
	switch l := l.(type) {
	case *arraylist.List:
		it := l.Iterator()
		return &it
	case *singlylinkedlist.List:
		it := l.Iterator()
		return &it
	case *doublylinkedlist.List:
		it := l.Iterator()
		return &it
	}
	return nil
}

// ReduceList left-reduces l starting from seed. Instantiated with an
// accumulator type it is a foldl.Reducer:
//
//	run := foldl.FromReduce(source.ReduceList[foldl.Accumulator[int, int], int])
func ReduceList[X, E any](l Enumerable, seed X, step func(X, E) X) X {
	acc := seed
	l.Each(func(_ int, v interface{}) {
		acc = step(acc, v.(E))
	})
	return acc
}

// FromChan returns an iterator that receives from ch until it is closed.
func FromChan[E any](ch <-chan E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range ch {
			if !yield(e) {
				return
			}
		}
	}
}
