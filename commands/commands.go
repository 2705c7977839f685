/*
Package commands implements the editing commands of the block attribute
menus: indenting blocks, aligning table cells and setting font sizes.

Commands never change a document themselves. They inspect a document and
return the steps performing the change, or report that they do not apply at
the given position. Apply runs such steps.
*/
package commands

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/shodgson/prosemirror-fontsize/transform"
)

// tracer traces with key 'pmstyle.commands'.
func tracer() tracing.Trace {
	return tracing.Select("pmstyle.commands")
}

// findAncestor finds the closest node around pos satisfying pred, the node
// containing pos included. It returns the position directly before that
// node.
func findAncestor(doc *model.Node, pos int, pred func(*model.Node) bool) (int, *model.Node, bool) {
	rp, err := doc.Resolve(pos)
	if err != nil {
		tracer().Debugf("cannot resolve position %d: %v", pos, err)
		return 0, nil, false
	}
	depth, node := rp.FindAncestor(pred)
	if node == nil {
		return 0, nil, false
	}
	before, err := rp.Before(depth)
	if err != nil {
		return 0, nil, false
	}
	return before, node, true
}

// Run applies steps to doc in order, in a new transform. It returns false
// as soon as a step fails; the steps applied before are kept in the
// transform.
func Run(doc *model.Node, steps ...transform.Step) (*transform.Transform, bool) {
	tr := transform.NewTransform(doc)
	for _, step := range steps {
		if err := tr.Step(step); err != nil {
			tracer().Errorf("cannot apply command: %v", err)
			return tr, false
		}
	}
	return tr, true
}

// Apply applies steps to doc in order. If any of them fails, doc is
// returned unchanged together with false.
func Apply(doc *model.Node, steps ...transform.Step) (*model.Node, bool) {
	tr, ok := Run(doc, steps...)
	if !ok {
		return doc, false
	}
	return tr.Doc, true
}
