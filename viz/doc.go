/*
Package viz renders slot-level views of fixed-capacity vectors.

Output is meant for humans, in debugging sessions and test logs. Live slots
show their element, free slots show a placeholder; free slot contents are
never read.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package viz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arrayvec'
func tracer() tracing.Trace {
	return tracing.Select("arrayvec")
}
