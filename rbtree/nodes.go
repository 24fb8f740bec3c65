package rbtree

// Color is the color of a tree node.
type Color uint8

const (
	// Red nodes never have a red child.
	Red Color = iota
	// Black nodes count towards the black height.
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// owner identifies a tree instance (and generation) a node belongs to.
// It must not be zero-sized, otherwise distinct tokens could compare equal.
type owner struct {
	generation uint64
}

// Node is a single entry of a tree. Clients receive node handles from
// Find, Insert, Begin and End; handles stay usable as long as the node
// is owned by its tree (see Tree.Owns).
type Node[K, V any] struct {
	key    K
	value  V
	size   int // nodes in this subtree, including the sentinel if present
	color  Color
	end    bool // sentinel flag
	left   *Node[K, V]
	right  *Node[K, V]
	parent *Node[K, V] // non-owning back-reference
	owner  *owner
}

func newNode[K, V any](key K, value V, o *owner) *Node[K, V] {
	return &Node[K, V]{
		key:   key,
		value: value,
		size:  1,
		color: Red,
		owner: o,
	}
}

func newSentinel[K, V any](o *owner) *Node[K, V] {
	return &Node[K, V]{
		size:  1,
		color: Black,
		end:   true,
		owner: o,
	}
}

// Key returns the key of a node. The sentinel has the zero key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value of a node. The sentinel has the zero value.
func (n *Node[K, V]) Value() V {
	return n.value
}

// ValueRef returns a reference to the value stored in a node.
// For the sentinel, ValueRef returns nil.
func (n *Node[K, V]) ValueRef() *V {
	if n.end {
		return nil
	}
	return &n.value
}

// IsEnd reports whether n is the sentinel of its tree.
func (n *Node[K, V]) IsEnd() bool {
	return n.end
}

// Color returns the color of a node.
func (n *Node[K, V]) Color() Color {
	return n.color
}

// Size returns the number of nodes in the subtree rooted at n, including n.
func (n *Node[K, V]) Size() int {
	return n.size
}

// attached reports whether n still belongs to some tree.
func (n *Node[K, V]) attached() bool {
	return n != nil && n.owner != nil
}

func (n *Node[K, V]) update() {
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1
}

func sizeOf[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func isRed[K, V any](n *Node[K, V]) bool {
	return n != nil && n.color == Red
}

func isBlack[K, V any](n *Node[K, V]) bool {
	return n == nil || n.color == Black
}
