/*
Package fontsize resolves the effective font size of a position in a
document, and aggregates resolved sizes over a whole document.

Resolution follows a precedence chain. The first tier that yields a size
wins:

  1. a textStyle mark at the position (its style, then its class)
  2. the style of the node containing the position
  3. the closest ancestor whose style carries a size
  4. the default size of the closest recognized node kind
  5. a live measurement, if a Measurer is supplied

Tiers 2 to 4 are evaluated in a single walk from the containing node up to
the root. The first recognized kind met on the way up provides the default.
A heading stops the walk: explicit styles above it are not consulted.
Defaults of other kinds do not stop the walk; they only apply when no
ancestor up to the root carries an explicit size. Code and bold marks carry
the body default, which applies unless the walk meets a heading first.
*/
package fontsize

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pmstyle.fontsize'.
func tracer() tracing.Trace {
	return tracing.Select("pmstyle.fontsize")
}
