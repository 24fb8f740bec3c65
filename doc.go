/*
Package ordmap offers an ordered map: a mapping from unique keys to values
with logarithmic lookup, insertion and deletion, and ordered bidirectional
traversal.

Maps are backed by a red-black tree (see package rbtree). In addition to the
usual map operations, clients navigate a map with iterators, much like
positions in a sequence:

	m := ordmap.New[int, string]()
	m.Insert(ordmap.MakePair(5, "five"))
	*m.Index(3) = "three"
	for it := m.Begin(); it.Valid() && !it.IsEnd(); {
	    k, _ := it.Key()
	    v, _ := it.Value()
	    fmt.Println(k, v)
	    if err := it.Next(); err != nil {
	        break
	    }
	}

To erase elements while iterating, advance a copy of the iterator before
erasing the element it denoted:

	for it := m.Begin(); it.Valid() && !it.IsEnd(); {
	    pos := it
	    it.Next()
	    if k, _ := pos.Key(); k%2 == 0 {
	        m.Erase(pos)
	    }
	}

Operations and their complexity:

	Operation          |  Complexity
	-------------------+------------
	Find / At / Index  |  O(log n)
	Insert / Erase     |  O(log n)
	Begin / End        |  O(1)
	Size / Empty       |  O(1)
	Iterator Next/Prev |  O(log n), amortized O(1)
	Clone              |  O(n)

Iterators have three states: positioned at an element, at the end (one past
the last element), or invalid. Moving an iterator beyond either end of a map,
or dereferencing an end or invalid iterator, fails with ErrInvalidIterator and
leaves the iterator unchanged. An iterator becomes invalid when the element
it points to is erased, or when its map is cleared or re-assigned.

Maps are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MapError is an error type for the ordmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged by read-only lookups for keys not present in a map.
const ErrKeyNotFound = MapError("key not found")

// ErrInvalidIterator is flagged whenever an iterator is dereferenced or moved
// while at the end or invalid, moved beyond the first element, or used to
// erase an element it does not (or no longer) denote.
const ErrInvalidIterator = MapError("invalid iterator")

// ErrEmptyContainer is flagged when accessing elements of an empty container.
// Maps do not raise it; it is shared with sibling containers (see package skewheap).
const ErrEmptyContainer = MapError("container is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")
