/*
Package model implements the document model of the editor: a persistent tree
of nodes carrying typed attributes, text leaves carrying marks, and resolved
positions into such a tree.

Documents are handed over by the editing engine in its JSON format (see
NodeFromJSON) and are never mutated in place. Changes are expressed as steps
(package transform) which produce new documents sharing unchanged subtrees
with the old ones.

Positions follow the integer indexing scheme of the editor: a text node
contributes one unit per character, other leaves one unit, and every
non-leaf node its content size plus two for its start and end token.
*/
package model

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pmstyle.model'.
func tracer() tracing.Trace {
	return tracing.Select("pmstyle.model")
}
