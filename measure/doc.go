/*
Package measure computes rendered font sizes without a browser.

A StylesheetMeasurer serializes a document to an HTML element tree, the way
the editor renders it, and evaluates the `font-size` property of the editor's
stylesheet over that tree: inline styles, matching rules ordered by
importance, specificity and source order, user-agent defaults for headings,
and inheritance from the parent element. The result serves as the live
measurement tier of package fontsize.
*/
package measure

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pmstyle.measure'.
func tracer() tracing.Trace {
	return tracing.Select("pmstyle.measure")
}
