/*
Package textfile provides API helpers to load text files of key/value
records as ordered maps.

A record file holds one record per line, key and value separated by a
separator string (default "="). Blank lines and lines starting with '#' are
ignored; key and value are trimmed of surrounding white space. If a key
occurs more than once, the last record wins.

Files are read asynchronously in fragments. Clients may subscribe to
progress messages, which are broadcast while fragments arrive. Load returns
only after all records have been applied, handing the map over to the
caller.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
