// Package style implements the attribute codecs shared by the font-size
// resolver and the attribute commands: CSS declaration lists as found in
// `style` attributes, class token lists, and the indent and vertical
// alignment encodings.
//
// All functions in this package are total. Unparseable input yields an empty
// value, zero, or false, never an error.
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pmstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("pmstyle.style")
}
