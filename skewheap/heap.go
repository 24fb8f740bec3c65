package skewheap

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/ordmap"
)

type node[T any] struct {
	value       T
	left, right *node[T]
}

// Heap is a mergeable priority queue. The zero Heap is not usable, heaps must
// be created with New or NewWithLess.
type Heap[T any] struct {
	root *node[T]
	size int
	less func(a, b T) bool
}

// New creates an empty max-queue for the natural ordering of T.
func New[T cmp.Ordered]() *Heap[T] {
	return &Heap[T]{less: cmp.Less[T]}
}

// NewWithLess creates an empty queue ordered by less.
func NewWithLess[T any](less func(a, b T) bool) (*Heap[T], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: ordering predicate is nil", ordmap.ErrIllegalArguments)
	}
	return &Heap[T]{less: less}, nil
}

// Size returns the number of elements in h.
func (h *Heap[T]) Size() int {
	return h.size
}

// Empty reports whether h holds no elements.
func (h *Heap[T]) Empty() bool {
	return h.size == 0
}

// Top returns the element with highest priority, or ErrEmptyContainer.
func (h *Heap[T]) Top() (T, error) {
	if h.Empty() {
		var zero T
		return zero, ordmap.ErrEmptyContainer
	}
	return h.root.value, nil
}

// Push inserts v.
func (h *Heap[T]) Push(v T) {
	h.root = h.merge(h.root, &node[T]{value: v})
	h.size++
}

// Pop removes the element with highest priority. It fails with
// ErrEmptyContainer if h is empty.
func (h *Heap[T]) Pop() error {
	if h.Empty() {
		return ordmap.ErrEmptyContainer
	}
	top := h.root
	h.root = h.merge(top.left, top.right)
	top.left, top.right = nil, nil
	h.size--
	return nil
}

// Merge moves all elements of other into h. other is empty afterwards.
// Merging a heap into itself is a no-op.
//
// Both heaps are expected to use the same ordering; h's ordering is applied.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || other == h || other.root == nil {
		return
	}
	tracer().Debugf("skewheap: merging %d into %d elements", other.size, h.size)
	h.root = h.merge(h.root, other.root)
	h.size += other.size
	other.root, other.size = nil, 0
}

// Clone returns a deep copy of h.
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{size: h.size, less: h.less}
	if h.root == nil {
		return c
	}
	type job struct {
		src *node[T]
		dst **node[T]
	}
	stack := []job{{h.root, &c.root}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &node[T]{value: j.src.value}
		*j.dst = n
		if j.src.left != nil {
			stack = append(stack, job{j.src.left, &n.left})
		}
		if j.src.right != nil {
			stack = append(stack, job{j.src.right, &n.right})
		}
	}
	return c
}

// Drain pops all elements in priority order and returns them.
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, h.size)
	for !h.Empty() {
		out = append(out, h.root.value)
		h.Pop()
	}
	return out
}

// merge melds two heaps top-down. Along the merge path the winning node
// keeps its old left child as right child and receives the merged rest as
// its new left child.
func (h *Heap[T]) merge(x, y *node[T]) *node[T] {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}
	if h.less(x.value, y.value) {
		x, y = y, x
	}
	root := x
	for {
		r := x.right
		x.right = x.left
		if r == nil {
			x.left = y
			return root
		}
		if h.less(r.value, y.value) {
			r, y = y, r
		}
		x.left = r
		x = r
	}
}
