package rbtree

// Successor returns the in-order successor of n, or nil if n is the sentinel
// (or detached). The successor of the maximum key is the sentinel.
func Successor[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// Predecessor returns the in-order predecessor of n, or nil if n holds the
// minimum key (or is detached). The predecessor of the sentinel is the node
// with the maximum key, or nil for an empty tree.
func Predecessor[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Next is a shortcut for Successor(n).
func (n *Node[K, V]) Next() *Node[K, V] {
	return Successor(n)
}

// Prev is a shortcut for Predecessor(n).
func (n *Node[K, V]) Prev() *Node[K, V] {
	return Predecessor(n)
}

func (n *Node[K, V]) leftmost() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[K, V]) rightmost() *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// ForEach walks the keys of the tree in-order. The sentinel is skipped.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || fn == nil {
		return
	}
	for n := t.begin; n != nil && !n.end; n = Successor(n) {
		if !fn(n.key, n.value) {
			return
		}
	}
}
