/*
Package dump renders red-black trees for debugging: as Graphviz DOT graphs
and as colored text on a console.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}
