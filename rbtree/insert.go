package rbtree

// Insert inserts key with value. If the tree already holds an equal key, the
// existing node is returned with inserted=false and the tree is left
// unchanged; Insert never overwrites.
func (t *Tree[K, V]) Insert(key K, value V) (n *Node[K, V], inserted bool) {
	parent, found := t.locate(key)
	if found {
		return parent, false
	}
	x := newNode(key, value, t.owner)
	if t.keyLess(key, t.begin) {
		t.begin = x
	}
	x.parent = parent
	switch {
	case parent == nil: // cannot happen while the sentinel is in place
		t.root = x
	case t.nodeLess(parent, key):
		parent.right = x
	default:
		parent.left = x
	}
	for p := parent; p != nil; p = p.parent {
		p.size++
	}
	t.insertFixup(x)
	return x, true
}

// insertFixup restores the coloring invariant after x has been linked in
// as a red leaf.
func (t *Tree[K, V]) insertFixup(x *Node[K, V]) {
	for isRed(x.parent) {
		p := x.parent
		g := p.parent // exists, as a red node is never the root
		if p == g.left {
			u := g.right
			if isRed(u) {
				p.color, u.color, g.color = Black, Black, Red
				x = g
				continue
			}
			if x == p.right { // inner grandchild
				t.rotateLeft(p)
				x, p = p, x
			}
			p.color, g.color = Black, Red
			t.rotateRight(g)
		} else {
			u := g.left
			if isRed(u) {
				p.color, u.color, g.color = Black, Black, Red
				x = g
				continue
			}
			if x == p.left { // inner grandchild
				t.rotateRight(p)
				x, p = p, x
			}
			p.color, g.color = Black, Red
			t.rotateLeft(g)
		}
	}
	t.root.color = Black
}
