package ordmap

import "github.com/npillmayer/ordmap/rbtree"

// Position is implemented by Iterator and ConstIterator. It allows comparing
// iterators of both kinds with each other.
type Position[K, V any] interface {
	position() *rbtree.Node[K, V]
}

// cursor is the state shared by both iterator kinds: the tree it was
// obtained from and the node it denotes. A zero cursor is unattached.
type cursor[K, V any] struct {
	tree *rbtree.Tree[K, V]
	node *rbtree.Node[K, V]
}

func (c cursor[K, V]) position() *rbtree.Node[K, V] {
	return c.node
}

// attached reports whether the cursor's node still belongs to its tree.
func (c cursor[K, V]) attached() bool {
	return c.node != nil && c.tree.Owns(c.node)
}

func (c *cursor[K, V]) next() error {
	if !c.attached() || c.node.IsEnd() {
		return ErrInvalidIterator
	}
	c.node = c.node.Next()
	return nil
}

func (c *cursor[K, V]) prev() error {
	if !c.attached() {
		return ErrInvalidIterator
	}
	p := c.node.Prev()
	if p == nil { // at begin
		return ErrInvalidIterator
	}
	c.node = p
	return nil
}

func (c cursor[K, V]) element() (*rbtree.Node[K, V], error) {
	if !c.attached() || c.node.IsEnd() {
		return nil, ErrInvalidIterator
	}
	return c.node, nil
}

func (c cursor[K, V]) equal(other Position[K, V]) bool {
	if other == nil {
		return c.node == nil
	}
	return c.node == other.position()
}

// --- Iterator --------------------------------------------------------------

// Iterator is a bidirectional position within a map, allowing to modify
// values. The zero Iterator is invalid.
//
// Iterators are values; copying an iterator yields an independent position.
type Iterator[K, V any] struct {
	cursor[K, V]
}

// Next moves the iterator to the following element, or to the end if it is
// at the last element. Next fails with ErrInvalidIterator if the iterator is
// at the end or invalid; the iterator is unchanged in this case.
func (it *Iterator[K, V]) Next() error {
	return it.next()
}

// Prev moves the iterator to the preceding element. From the end, Prev moves
// to the last element. Prev fails with ErrInvalidIterator if the iterator is
// at the first element (or at the end of an empty map) or invalid; the
// iterator is unchanged in this case.
func (it *Iterator[K, V]) Prev() error {
	return it.prev()
}

// Key returns the key of the element denoted by it.
func (it Iterator[K, V]) Key() (K, error) {
	n, err := it.element()
	if err != nil {
		var zero K
		return zero, err
	}
	return n.Key(), nil
}

// Value returns the value of the element denoted by it.
func (it Iterator[K, V]) Value() (V, error) {
	n, err := it.element()
	if err != nil {
		var zero V
		return zero, err
	}
	return n.Value(), nil
}

// ValueRef returns a reference to the value of the element denoted by it.
func (it Iterator[K, V]) ValueRef() (*V, error) {
	n, err := it.element()
	if err != nil {
		return nil, err
	}
	return n.ValueRef(), nil
}

// SetValue replaces the value of the element denoted by it.
func (it Iterator[K, V]) SetValue(value V) error {
	ref, err := it.ValueRef()
	if err != nil {
		return err
	}
	*ref = value
	return nil
}

// Pair returns a copy of the element denoted by it.
func (it Iterator[K, V]) Pair() (Pair[K, V], error) {
	n, err := it.element()
	if err != nil {
		return Pair[K, V]{}, err
	}
	return MakePair(n.Key(), n.Value()), nil
}

// IsEnd reports whether it is the past-the-end iterator of its map.
func (it Iterator[K, V]) IsEnd() bool {
	return it.attached() && it.node.IsEnd()
}

// Valid reports whether it denotes an element or the end of a map.
func (it Iterator[K, V]) Valid() bool {
	return it.attached()
}

// Equal reports whether it and other denote the same position.
func (it Iterator[K, V]) Equal(other Position[K, V]) bool {
	return it.equal(other)
}

// Const converts it into a read-only iterator at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{it.cursor}
}

// --- ConstIterator ---------------------------------------------------------

// ConstIterator is a read-only bidirectional position within a map.
// The zero ConstIterator is invalid.
type ConstIterator[K, V any] struct {
	cursor[K, V]
}

// Next moves the iterator to the following element, see Iterator.Next.
func (it *ConstIterator[K, V]) Next() error {
	return it.next()
}

// Prev moves the iterator to the preceding element, see Iterator.Prev.
func (it *ConstIterator[K, V]) Prev() error {
	return it.prev()
}

// Key returns the key of the element denoted by it.
func (it ConstIterator[K, V]) Key() (K, error) {
	n, err := it.element()
	if err != nil {
		var zero K
		return zero, err
	}
	return n.Key(), nil
}

// Value returns the value of the element denoted by it.
func (it ConstIterator[K, V]) Value() (V, error) {
	n, err := it.element()
	if err != nil {
		var zero V
		return zero, err
	}
	return n.Value(), nil
}

// Pair returns a copy of the element denoted by it.
func (it ConstIterator[K, V]) Pair() (Pair[K, V], error) {
	n, err := it.element()
	if err != nil {
		return Pair[K, V]{}, err
	}
	return MakePair(n.Key(), n.Value()), nil
}

// IsEnd reports whether it is the past-the-end iterator of its map.
func (it ConstIterator[K, V]) IsEnd() bool {
	return it.attached() && it.node.IsEnd()
}

// Valid reports whether it denotes an element or the end of a map.
func (it ConstIterator[K, V]) Valid() bool {
	return it.attached()
}

// Equal reports whether it and other denote the same position.
func (it ConstIterator[K, V]) Equal(other Position[K, V]) bool {
	return it.equal(other)
}
