package rbtree

import "fmt"

// Erase removes node x from the tree.
//
// Erase fails with ErrInvalidNode if x is nil, the sentinel, or not owned by
// t; in this case the tree is left unchanged. If x has two children, the
// in-order successor node is relinked into x's position, i.e. node identities
// move, payloads never do. Handles to other nodes stay valid; x itself is
// detached and no longer owned by any tree.
func (t *Tree[K, V]) Erase(x *Node[K, V]) error {
	switch {
	case x == nil:
		return fmt.Errorf("%w: nil node", ErrInvalidNode)
	case !t.Owns(x):
		tracer().Debugf("rbtree: refusing to erase node not owned by tree")
		return fmt.Errorf("%w: node not owned by tree", ErrInvalidNode)
	case x.end:
		return fmt.Errorf("%w: cannot erase sentinel", ErrInvalidNode)
	}
	if x == t.begin {
		t.begin = Successor(x)
	}
	parent := x.parent
	removed := x.color
	var repl *Node[K, V] // node moving into the position of the removed node
	switch {
	case x.left == nil:
		repl = x.right
		t.replaceChild(x, repl)
		if repl != nil {
			repl.parent = parent
		}
	case x.right == nil:
		repl = x.left
		t.replaceChild(x, repl)
		repl.parent = parent
	default:
		y := x.right.leftmost()
		removed = y.color
		repl = y.right
		if y.parent != x {
			parent = y.parent
			parent.left = y.right
			if y.right != nil {
				y.right.parent = parent
			}
			y.right = x.right
			x.right.parent = y
		} else {
			parent = y
		}
		t.replaceChild(x, y)
		y.parent = x.parent
		y.left = x.left
		x.left.parent = y
		y.color = x.color
		y.size = x.size
	}
	x.left, x.right, x.parent = nil, nil, nil
	x.owner = nil
	for p := parent; p != nil; p = p.parent {
		p.size--
	}
	if removed == Black {
		t.eraseFixup(repl, parent)
	}
	return nil
}

// eraseFixup resolves the extra black carried by x, which sits below parent
// (x may be nil).
func (t *Tree[K, V]) eraseFixup(x, parent *Node[K, V]) {
	for x != t.root && isBlack(x) {
		if x == parent.left {
			s := parent.right
			if isRed(s) {
				s.color, parent.color = Black, Red
				t.rotateLeft(parent)
				s = parent.right
			}
			if isBlack(s.left) && isBlack(s.right) {
				s.color = Red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(s.right) {
				s.left.color, s.color = Black, Red
				t.rotateRight(s)
				s = parent.right
			}
			s.color, parent.color = parent.color, Black
			s.right.color = Black
			t.rotateLeft(parent)
			x = t.root
		} else {
			s := parent.left
			if isRed(s) {
				s.color, parent.color = Black, Red
				t.rotateRight(parent)
				s = parent.left
			}
			if isBlack(s.left) && isBlack(s.right) {
				s.color = Red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(s.left) {
				s.right.color, s.color = Black, Red
				t.rotateLeft(s)
				s = parent.left
			}
			s.color, parent.color = parent.color, Black
			s.left.color = Black
			t.rotateRight(parent)
			x = t.root
		}
	}
	if x != nil {
		x.color = Black
	}
}
