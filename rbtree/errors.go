package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvalidNode signals a node handle which is nil, the sentinel, or not
	// (or no longer) owned by the tree it is used with.
	ErrInvalidNode = errors.New("rbtree: invalid node")
	// ErrInvariantViolated is reported by Check for a structurally broken tree.
	ErrInvariantViolated = errors.New("rbtree: invariant violated")
)
