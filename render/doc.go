/*
Package render outputs the tree structure of ordered maps for humans.

Two formats are supported: a sideways drawing for fixed-width consoles,
using colors to distinguish red from black nodes, and a nested HTML list.
Both work on a snapshot of a map's tree, as returned by Map.Shape().

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
