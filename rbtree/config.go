package rbtree

import (
	"cmp"
	"fmt"
)

// LessFunc is a strict weak ordering on keys.
//
// Two keys a, b are considered equal iff
//
//	!less(a, b) && !less(b, a)
//
// The engine never uses == on keys.
type LessFunc[K any] func(a, b K) bool

// Config configures a red-black tree.
type Config[K any] struct {
	// Less orders the keys of the tree.
	Less LessFunc[K]
}

// OrderedConfig returns a configuration using the natural ordering of K.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Less: cmp.Less[K]}
}

func (cfg Config[K]) normalized() Config[K] {
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: ordering is required", ErrInvalidConfig)
	}
	return nil
}
