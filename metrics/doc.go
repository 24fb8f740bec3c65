/*
Package metrics provides some pre-manufactured metrics on the shape of
ordered maps.

Metrics are calculated on a snapshot of a map's tree (see rbtree.Shape).
A metric is applied to every node, bottom-up, combining the values of the
two children with information about the node itself. Missing children
contribute the metric's Nil value.

Typical use:

	stats := metrics.Collect(m.Shape())
	fmt.Printf("height %d, black height %d\n", stats.Height, stats.BlackHeight)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
