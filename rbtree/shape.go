package rbtree

// Shape is a value snapshot of a (sub-)tree, used for diagnostics and
// rendering. It does not reference tree nodes.
type Shape[K, V any] struct {
	Key         K
	Value       V
	Color       Color
	Size        int
	Sentinel    bool
	Left, Right *Shape[K, V]
}

// Shape returns a snapshot of the complete tree structure, including the
// sentinel.
func (t *Tree[K, V]) Shape() *Shape[K, V] {
	if t == nil {
		return nil
	}
	return shapeOf(t.root)
}

func shapeOf[K, V any](n *Node[K, V]) *Shape[K, V] {
	if n == nil {
		return nil
	}
	return &Shape[K, V]{
		Key:      n.key,
		Value:    n.value,
		Color:    n.color,
		Size:     n.size,
		Sentinel: n.end,
		Left:     shapeOf(n.left),
		Right:    shapeOf(n.right),
	}
}

// Walk visits the snapshot in-order, passing the depth of each node (the
// root has depth 0). Walk stops early if fn returns false.
func (s *Shape[K, V]) Walk(fn func(node *Shape[K, V], depth int) bool) {
	s.walk(fn, 0)
}

func (s *Shape[K, V]) walk(fn func(node *Shape[K, V], depth int) bool, depth int) bool {
	if s == nil {
		return true
	}
	if !s.Left.walk(fn, depth+1) {
		return false
	}
	if !fn(s, depth) {
		return false
	}
	return s.Right.walk(fn, depth+1)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (s *Shape[K, V]) Height() int {
	if s == nil {
		return 0
	}
	return 1 + max(s.Left.Height(), s.Right.Height())
}
