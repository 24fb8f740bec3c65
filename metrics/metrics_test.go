package metrics

import (
	"testing"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/rbtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape builds the snapshot
//
//	     2(B)
//	    /    \
//	 1(R)    end(B)
func shape() *rbtree.Shape[int, string] {
	return &rbtree.Shape[int, string]{
		Key: 2, Color: rbtree.Black, Size: 3,
		Left:  &rbtree.Shape[int, string]{Key: 1, Color: rbtree.Red, Size: 1},
		Right: &rbtree.Shape[int, string]{Color: rbtree.Black, Size: 1, Sentinel: true},
	}
}

func TestApplySimpleMetrics(t *testing.T) {
	s := shape()
	assert.Equal(t, 2, Apply(s, Height[int, string]()))
	assert.Equal(t, 1, Apply(s, RedCount[int, string]()))
	assert.Equal(t, -1, Apply(s, BlackHeight[int, string]()), "paths disagree in black count")
	pl := Apply(s, InternalPathLength[int, string]())
	assert.Equal(t, PathLength{Nodes: 3, Total: 2}, pl)
}

func TestApplyNil(t *testing.T) {
	assert.Equal(t, 0, Apply[int, string, int](nil, Height[int, string]()))
	assert.Equal(t, Stats{}, Collect[int, string](nil))
}

func TestCustomMetric(t *testing.T) {
	sum := MetricFunc[int, string, int]{
		Combiner: func(node *rbtree.Shape[int, string], left, right int) int {
			if node.Sentinel {
				return left + right
			}
			return left + right + node.Key
		},
	}
	assert.Equal(t, 3, Apply(shape(), Metric[int, string, int](sum)))
}

func TestCollectOnMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := ordmap.New[int, int]()
	for i := range 1000 {
		m.Put(i, i)
	}
	require.NoError(t, m.Check())
	stats := Collect(m.Shape())
	t.Logf("stats: %s", stats)
	assert.Equal(t, 1001, stats.Nodes)
	assert.Equal(t, 1000, stats.Elements)
	assert.Greater(t, stats.BlackHeight, 0, "balanced tree must have a black height")
	assert.LessOrEqual(t, stats.Height, 2*stats.BlackHeight)
	assert.LessOrEqual(t, stats.Height, 20)
	assert.Less(t, stats.AverageDepth, float64(stats.Height))
	assert.Equal(t, stats.Height, m.Shape().Height())
}

func TestCollectEmptyMap(t *testing.T) {
	stats := Collect(ordmap.New[string, int]().Shape())
	assert.Equal(t, 1, stats.Nodes)
	assert.Equal(t, 0, stats.Elements)
	assert.Equal(t, 1, stats.Height)
	assert.Equal(t, 1, stats.BlackHeight)
	assert.Equal(t, 0.0, stats.AverageDepth)
}
