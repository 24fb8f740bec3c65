/*
Package rbtree provides the balanced-tree engine behind ordmap.

The engine is a red-black tree with parent links, subtree sizes and a
sentinel node. The sentinel is a regular, never-removed node placed as the
maximum element of the tree; it represents the position one past the last
element and is greater than every key under every ordering. Every tree
therefore holds Len()+1 nodes, and the size of the root node is Len()+1.

Nodes are owned by exactly one tree. Each node carries an owner token of the
tree instance it belongs to; erasing a node drops the token, clearing or
copying a tree issues a new one. This lets clients validate a node handle in
O(1) (see Tree.Owns) instead of searching for its key.

Current status:
  - ordering via an injected less-predicate, equality derived from it,
  - insertion with recolor/rotate fixup,
  - erasure with successor relinking and double-black fixup,
  - in-order successor/predecessor threading through parent links,
  - deep copy with re-derived begin/sentinel,
  - strict invariant checker (`Check`) and shape snapshots for diagnostics.

A tree is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
