package ordmap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordmap/rbtree"
)

// Map is an ordered map from unique keys to values.
//
// Keys are ordered by a less-predicate given at construction time; two keys
// a and b are equal iff neither less(a,b) nor less(b,a) holds. Maps must be
// created with New or NewWithLess; every operation on the zero Map panics.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V]
}

// New creates an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: rbtree.NewOrdered[K, V]()}
}

// NewWithLess creates an empty map ordered by less.
func NewWithLess[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: ordering predicate is nil", ErrIllegalArguments)
	}
	tree, err := rbtree.New[K, V](rbtree.Config[K]{Less: less})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// --- Element access --------------------------------------------------------

// At returns the value stored for key, or ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	n := m.engine().Find(key)
	if n == nil {
		var zero V
		return zero, ErrKeyNotFound
	}
	return n.Value(), nil
}

// Ref returns a reference to the value stored for key, or ErrKeyNotFound.
// The reference stays valid until the element is erased.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	n := m.engine().Find(key)
	if n == nil {
		return nil, ErrKeyNotFound
	}
	return n.ValueRef(), nil
}

// Index returns a reference to the value stored for key. If key is not
// present, Index inserts the zero value for it first.
//
//	*m.Index("x") += 1
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	n, _ := m.engine().Insert(key, zero)
	return n.ValueRef()
}

// --- Modifiers -------------------------------------------------------------

// Insert inserts an element, if the map does not already contain an element
// with an equal key. It returns an iterator to the inserted element, or to
// the element that prevented the insertion, and whether insertion took place.
func (m *Map[K, V]) Insert(p Pair[K, V]) (Iterator[K, V], bool) {
	n, inserted := m.engine().Insert(p.First(), p.Second)
	return m.iterator(n), inserted
}

// Put stores value for key, inserting a new element or overwriting the
// value of an existing one.
func (m *Map[K, V]) Put(key K, value V) {
	*m.Index(key) = value
}

// Erase removes the element denoted by pos. It fails with ErrInvalidIterator
// if pos is at the end, is invalid, or denotes an element of a different map
// (or an element already erased). Erase invalidates pos, other iterators
// remain valid.
func (m *Map[K, V]) Erase(pos Iterator[K, V]) error {
	tree := m.engine()
	if pos.node == nil || pos.node.IsEnd() || pos.tree != tree || !tree.Owns(pos.node) {
		T().Debugf("ordmap: refusing to erase at invalid position")
		return ErrInvalidIterator
	}
	if err := tree.Erase(pos.node); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidIterator, err.Error())
	}
	return nil
}

// EraseKey removes the element with key, if present, and returns the number
// of elements removed (0 or 1).
func (m *Map[K, V]) EraseKey(key K) int {
	n := m.engine().Find(key)
	if n == nil {
		return 0
	}
	err := m.engine().Erase(n)
	assert(err == nil, "EraseKey: cannot erase node found in tree")
	return 1
}

// Clear removes all elements. All iterators of m become invalid.
func (m *Map[K, V]) Clear() {
	m.engine().Clear()
}

// Clone returns a deep copy of m. Iterators of m do not refer to the copy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.engine().Clone()}
}

// Assign replaces the contents of m with a deep copy of other. Assigning a
// map to itself is a no-op. All iterators of m become invalid.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other || m.engine() == other.engine() {
		return
	}
	m.engine().Clear()
	m.tree = other.engine().Clone()
}

// --- Lookup ----------------------------------------------------------------

// Find returns an iterator to the element with key, or End() if there is none.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	n := m.engine().Find(key)
	if n == nil {
		return m.End()
	}
	return m.iterator(n)
}

// Count returns the number of elements with key, i.e. 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	if m.engine().Find(key) == nil {
		return 0
	}
	return 1
}

// Contains reports whether m holds an element with key.
func (m *Map[K, V]) Contains(key K) bool {
	return m.Count(key) == 1
}

// --- Capacity and iteration ------------------------------------------------

// Size returns the number of elements.
func (m *Map[K, V]) Size() int {
	return m.engine().Len()
}

// Empty reports whether m has no elements.
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Begin returns an iterator to the element with the smallest key, or End()
// for an empty map.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.iterator(m.engine().Begin())
}

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return m.iterator(m.engine().End())
}

// All returns an iterator over all key/value pairs in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.engine().ForEach(yield)
	}
}

// Keys returns all keys in order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns all values in key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Size())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// Const returns a read-only view of m.
func (m *Map[K, V]) Const() ConstMap[K, V] {
	return ConstMap[K, V]{m: m}
}

// Check validates the internal tree invariants of m (for testing and
// debugging purposes).
func (m *Map[K, V]) Check() error {
	return m.engine().Check()
}

// Shape returns a snapshot of the tree structure of m (for diagnostics).
func (m *Map[K, V]) Shape() *rbtree.Shape[K, V] {
	return m.engine().Shape()
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}

// engine returns the tree of m. Using a Map not created by New or NewWithLess
// panics, for every operation alike.
func (m *Map[K, V]) engine() *rbtree.Tree[K, V] {
	assert(m.tree != nil, "ordmap: use of uninitialized Map, create maps with New or NewWithLess")
	return m.tree
}

func (m *Map[K, V]) iterator(n *rbtree.Node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{cursor[K, V]{tree: m.tree, node: n}}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
