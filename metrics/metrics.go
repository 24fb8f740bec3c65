package metrics

import (
	"fmt"

	"github.com/npillmayer/ordmap/rbtree"
)

// Metric is a metric to calculate on a tree snapshot. Values are calculated
// for every node from the values of its children, i.e. a metric is
// propagated upwards from the leaves to the root.
//
// An example of a (very simplistic) metric would be to count the number of
// nodes: Nil returns 0, and Combine returns left + right + 1.
type Metric[K, V, M any] interface {
	Nil() M
	Combine(node *rbtree.Shape[K, V], left, right M) M
}

// Apply calculates a metric for the tree rooted at s. For an empty snapshot
// (s == nil), Apply returns metric.Nil().
func Apply[K, V, M any](s *rbtree.Shape[K, V], metric Metric[K, V, M]) M {
	if s == nil {
		return metric.Nil()
	}
	return metric.Combine(s, Apply(s.Left, metric), Apply(s.Right, metric))
}

// ---------------------------------------------------------------------------

// MetricFunc adapts a pair of functions to the Metric interface.
type MetricFunc[K, V, M any] struct {
	Zero     M
	Combiner func(node *rbtree.Shape[K, V], left, right M) M
}

// Nil is part of interface Metric.
func (f MetricFunc[K, V, M]) Nil() M {
	return f.Zero
}

// Combine is part of interface Metric.
func (f MetricFunc[K, V, M]) Combine(node *rbtree.Shape[K, V], left, right M) M {
	return f.Combiner(node, left, right)
}

// Height counts the nodes on the longest path from the root to a leaf.
func Height[K, V any]() Metric[K, V, int] {
	return MetricFunc[K, V, int]{
		Combiner: func(_ *rbtree.Shape[K, V], left, right int) int {
			return 1 + max(left, right)
		},
	}
}

// RedCount counts the red nodes of a tree.
func RedCount[K, V any]() Metric[K, V, int] {
	return MetricFunc[K, V, int]{
		Combiner: func(node *rbtree.Shape[K, V], left, right int) int {
			if node.Color == rbtree.Red {
				return left + right + 1
			}
			return left + right
		},
	}
}

// BlackHeight counts the black nodes on every path from a node down to a
// nil child, including the node itself. Nil children count as zero.
// If the paths of a subtree disagree, the value is -1.
func BlackHeight[K, V any]() Metric[K, V, int] {
	return MetricFunc[K, V, int]{
		Combiner: func(node *rbtree.Shape[K, V], left, right int) int {
			if left < 0 || right < 0 || left != right {
				return -1
			}
			if node.Color == rbtree.Black {
				return left + 1
			}
			return left
		},
	}
}

// PathLength is the value of metric InternalPathLength.
type PathLength struct {
	Nodes int // number of nodes in the subtree
	Total int // sum of depths of all nodes, relative to the subtree root
}

// InternalPathLength sums up the depths of all nodes. Every node adds one
// to the depth of each of its descendants, thus a subtree's total is the
// sum of its children's totals plus the number of descendants.
func InternalPathLength[K, V any]() Metric[K, V, PathLength] {
	return MetricFunc[K, V, PathLength]{
		Combiner: func(_ *rbtree.Shape[K, V], left, right PathLength) PathLength {
			desc := left.Nodes + right.Nodes
			return PathLength{
				Nodes: desc + 1,
				Total: left.Total + right.Total + desc,
			}
		},
	}
}

// ---------------------------------------------------------------------------

// Stats collects the pre-manufactured metrics of a tree snapshot.
// All node counts include the sentinel node.
type Stats struct {
	Nodes        int     // number of nodes
	Elements     int     // number of map elements (Nodes minus sentinel)
	Height       int     // longest root-to-leaf path, in nodes
	BlackHeight  int     // black nodes per root-to-nil path, or -1
	RedNodes     int     // number of red nodes
	AverageDepth float64 // average depth of a node, root having depth 0
}

// Collect applies all pre-manufactured metrics to s.
func Collect[K, V any](s *rbtree.Shape[K, V]) Stats {
	if s == nil {
		return Stats{}
	}
	pl := Apply(s, InternalPathLength[K, V]())
	stats := Stats{
		Nodes:       pl.Nodes,
		Elements:    pl.Nodes - 1,
		Height:      Apply(s, Height[K, V]()),
		BlackHeight: Apply(s, BlackHeight[K, V]()),
		RedNodes:    Apply(s, RedCount[K, V]()),
	}
	stats.AverageDepth = float64(pl.Total) / float64(pl.Nodes)
	tracer().Debugf("metrics: %s", stats)
	return stats
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d height=%d black-height=%d red=%d avg-depth=%.2f",
		s.Nodes, s.Height, s.BlackHeight, s.RedNodes, s.AverageDepth)
}
