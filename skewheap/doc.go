/*
Package skewheap implements a mergeable priority queue as a skew heap.

A skew heap is a heap-ordered binary tree without any balancing
information. Merging two heaps walks down the right spines, swapping the
children of every node on the merge path. This gives O(log n) amortized
Push, Pop and Merge.

By default the queue is a max-queue with respect to the natural ordering of
its elements: Top returns the greatest element. NewWithLess accepts a
less-predicate; Top then returns an element e for which no other element f
satisfies less(e, f).

A heap is not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package skewheap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
