package rbtree

// Clone returns a deep copy of the tree.
//
// Every node is rebuilt, including the sentinel; colors and sizes are carried
// over, begin and end are re-derived for the copy. No nodes are shared, so
// node handles of t are not owned by the clone and vice versa.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	c := &Tree[K, V]{cfg: t.cfg}
	c.gen = 1
	c.owner = &owner{generation: c.gen}
	c.root = c.copySubtree(t.root, nil)
	assert(c.end != nil, "Clone: source tree has no sentinel")
	c.begin = c.root.leftmost()
	tracer().Debugf("rbtree: cloned tree of %d keys", c.Len())
	return c
}

func (t *Tree[K, V]) copySubtree(src, parent *Node[K, V]) *Node[K, V] {
	if src == nil {
		return nil
	}
	n := &Node[K, V]{
		key:    src.key,
		value:  src.value,
		size:   src.size,
		color:  src.color,
		end:    src.end,
		parent: parent,
		owner:  t.owner,
	}
	if n.end {
		t.end = n
	}
	n.left = t.copySubtree(src.left, n)
	n.right = t.copySubtree(src.right, n)
	return n
}
