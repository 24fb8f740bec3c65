package rbtree

import (
	"cmp"
	"fmt"
)

// Tree is a red-black tree mapping unique keys to values.
//
// A tree always contains its sentinel node, which is the maximum node of the
// tree and is never removed. Begin points to the minimum real node, or to the
// sentinel for an empty tree.
type Tree[K, V any] struct {
	cfg   Config[K]
	root  *Node[K, V]
	begin *Node[K, V]
	end   *Node[K, V]
	owner *owner
	gen   uint64 // number of owner tokens issued so far
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K, V]{cfg: cfg.normalized()}
	t.reset()
	return t, nil
}

// NewOrdered creates an empty tree ordered by the natural ordering of K.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	t, err := New[K, V](OrderedConfig[K]())
	assert(err == nil, "NewOrdered: cannot create tree")
	return t
}

// reset drops all nodes and installs a fresh sentinel under a new owner token.
func (t *Tree[K, V]) reset() {
	t.gen++
	t.owner = &owner{generation: t.gen}
	t.end = newSentinel[K, V](t.owner)
	t.root = t.end
	t.begin = t.end
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Less compares two keys with the ordering of the tree.
func (t *Tree[K, V]) Less(a, b K) bool {
	return t.cfg.Less(a, b)
}

// Len returns the number of keys in the tree. The sentinel is not counted.
func (t *Tree[K, V]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.size - 1
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Begin returns the node with the minimum key, or the sentinel if the tree is empty.
func (t *Tree[K, V]) Begin() *Node[K, V] {
	return t.begin
}

// End returns the sentinel node.
func (t *Tree[K, V]) End() *Node[K, V] {
	return t.end
}

// Owns reports whether n is a node currently owned by t. The sentinel is
// owned by its tree. Owns is O(1).
func (t *Tree[K, V]) Owns(n *Node[K, V]) bool {
	return t != nil && n != nil && n.owner != nil && n.owner == t.owner
}

// Clear drops all nodes of the tree. Node handles obtained before Clear are
// no longer owned by t afterwards.
func (t *Tree[K, V]) Clear() {
	tracer().Debugf("rbtree: clearing tree of %d keys", t.Len())
	t.detachAll(t.root)
	t.reset()
}

// detachAll invalidates every node of a subtree. Without it, nodes referenced
// by outside handles would still look attached to their former tree.
func (t *Tree[K, V]) detachAll(n *Node[K, V]) {
	for n != nil {
		t.detachAll(n.left)
		right := n.right
		n.owner = nil
		n.left, n.right, n.parent = nil, nil, nil
		n = right
	}
}

// Find returns the node with a key equal to key, or nil. The sentinel is
// never returned.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	n, found := t.locate(key)
	if !found {
		return nil
	}
	return n
}

// locate searches for key. If a node with an equal key exists, it is
// returned together with true. Otherwise locate returns the last node
// visited, i.e. the parent-to-be of a new node for key.
func (t *Tree[K, V]) locate(key K) (*Node[K, V], bool) {
	var parent *Node[K, V]
	x := t.root
	for x != nil {
		parent = x
		if !x.end && t.equal(x.key, key) {
			return x, true
		}
		if t.nodeLess(x, key) {
			x = x.right
		} else {
			x = x.left
		}
	}
	return parent, false
}

func (t *Tree[K, V]) equal(a, b K) bool {
	return !t.cfg.Less(a, b) && !t.cfg.Less(b, a)
}

// nodeLess reports n < key, treating the sentinel as greater than every key.
func (t *Tree[K, V]) nodeLess(n *Node[K, V], key K) bool {
	if n.end {
		return false
	}
	return t.cfg.Less(n.key, key)
}

// keyLess reports key < n, treating the sentinel as greater than every key.
func (t *Tree[K, V]) keyLess(key K, n *Node[K, V]) bool {
	if n.end {
		return true
	}
	return t.cfg.Less(key, n.key)
}

// nodesLess orders two nodes, treating the sentinel as greater than every key.
func (t *Tree[K, V]) nodesLess(a, b *Node[K, V]) bool {
	if a.end {
		return false
	}
	if b.end {
		return true
	}
	return t.cfg.Less(a.key, b.key)
}

// String is for debugging purposes.
func (t *Tree[K, V]) String() string {
	if t == nil {
		return "<nil tree>"
	}
	return fmt.Sprintf("rbtree{len=%d, gen=%d}", t.Len(), t.gen)
}
