package rbtree

// replaceChild links c into the position of old below old's parent, or makes
// c the root if old was the root. c.parent is not touched.
func (t *Tree[K, V]) replaceChild(old, c *Node[K, V]) {
	p := old.parent
	switch {
	case p == nil:
		t.root = c
	case p.left == old:
		p.left = c
	default:
		p.right = c
	}
}

// rotateLeft rotates the edge between x and its right child:
//
//	    x              r
//	   / \            / \
//	  a   r    =>    x   c
//	     / \        / \
//	    b   c      a   b
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	r := x.right
	assert(r != nil, "rotateLeft called without right child")
	x.right = r.left
	if r.left != nil {
		r.left.parent = x
	}
	r.parent = x.parent
	t.replaceChild(x, r)
	r.left = x
	x.parent = r
	x.update()
	r.update()
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree[K, V]) rotateRight(x *Node[K, V]) {
	l := x.left
	assert(l != nil, "rotateRight called without left child")
	x.left = l.right
	if l.right != nil {
		l.right.parent = x
	}
	l.parent = x.parent
	t.replaceChild(x, l)
	l.right = x
	x.parent = l
	x.update()
	l.update()
}
