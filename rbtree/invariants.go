package rbtree

import "fmt"

// Check validates structural tree invariants:
//
//   - keys are in strictly increasing order, with the sentinel last,
//   - the root is black, no red node has a red child, and all paths from
//     a node to its nil children contain the same number of black nodes,
//   - every node's size equals 1 plus the sizes of its children,
//   - parent links are consistent and all nodes are owned by t,
//   - begin is the minimum node, end is the (single) sentinel.
//
// This checker is intentionally strict and meant for tests and diagnostics.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil || t.end == nil || t.begin == nil {
		return fmt.Errorf("%w: tree has no root, begin or sentinel", ErrInvariantViolated)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolated)
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root is red", ErrInvariantViolated)
	}
	if !t.end.end || !t.Owns(t.end) {
		return fmt.Errorf("%w: broken sentinel", ErrInvariantViolated)
	}
	if _, _, err := t.checkNode(t.root); err != nil {
		return err
	}
	if t.root.rightmost() != t.end {
		return fmt.Errorf("%w: sentinel is not the maximum node", ErrInvariantViolated)
	}
	if t.root.leftmost() != t.begin {
		return fmt.Errorf("%w: begin is not the minimum node", ErrInvariantViolated)
	}
	count := 0
	var prev *Node[K, V]
	for n := t.begin; n != nil; n = Successor(n) {
		if prev != nil && !t.nodesLess(prev, n) {
			return fmt.Errorf("%w: keys out of order (%v, %v)", ErrInvariantViolated, prev.key, n.key)
		}
		prev = n
		count++
	}
	if prev != t.end {
		return fmt.Errorf("%w: in-order walk does not end at sentinel", ErrInvariantViolated)
	}
	if count != t.root.size {
		return fmt.Errorf("%w: walk visited %d nodes, root size is %d",
			ErrInvariantViolated, count, t.root.size)
	}
	return nil
}

// checkNode validates the subtree at n and returns its size and black height
// (nil children count as black height 0).
func (t *Tree[K, V]) checkNode(n *Node[K, V]) (size int, blackHeight int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if n.owner != t.owner {
		return 0, 0, fmt.Errorf("%w: node %v not owned by tree", ErrInvariantViolated, n.key)
	}
	if n.end && n != t.end {
		return 0, 0, fmt.Errorf("%w: second sentinel", ErrInvariantViolated)
	}
	for _, c := range [2]*Node[K, V]{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrInvariantViolated, n.key)
		}
		if n.color == Red && c.color == Red {
			return 0, 0, fmt.Errorf("%w: red node %v has red child", ErrInvariantViolated, n.key)
		}
	}
	lsize, lbh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rsize, rbh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black height mismatch at %v (%d != %d)",
			ErrInvariantViolated, n.key, lbh, rbh)
	}
	if n.size != lsize+rsize+1 {
		return 0, 0, fmt.Errorf("%w: size of %v is %d, expected %d",
			ErrInvariantViolated, n.key, n.size, lsize+rsize+1)
	}
	if n.color == Black {
		lbh++
	}
	return n.size, lbh, nil
}

// BlackHeight returns the number of black nodes on any path from the root
// to a nil child. The result is only meaningful for a valid tree.
func (t *Tree[K, V]) BlackHeight() int {
	h := 0
	for n := t.root; n != nil; n = n.left {
		if n.color == Black {
			h++
		}
	}
	return h
}
