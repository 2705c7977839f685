package commands

import (
	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/shodgson/prosemirror-fontsize/transform"
)

func indentable(n *model.Node) bool {
	return n.Type.IsIndentable()
}

func setIndent(doc *model.Node, pos, delta int) (*transform.SetAttrsStep, bool) {
	before, node, ok := findAncestor(doc, pos, indentable)
	if !ok {
		tracer().Debugf("nothing to indent at %d", pos)
		return nil, false
	}
	level := node.Attrs.Indent + delta
	if level < 0 {
		level = 0
	}
	tracer().Debugf("indent of %s at %d: %d -> %d", node.Type, before, node.Attrs.Indent, level)
	return transform.NewSetAttrsStep(before, map[string]interface{}{model.AttrIndent: level}), true
}

// Indent increases the indent level of the closest paragraph, heading or
// list around pos by one.
func Indent(doc *model.Node, pos int) (*transform.SetAttrsStep, bool) {
	return setIndent(doc, pos, 1)
}

// Outdent decreases the indent level of the closest paragraph, heading or
// list around pos by one. The level never drops below 0.
func Outdent(doc *model.Node, pos int) (*transform.SetAttrsStep, bool) {
	return setIndent(doc, pos, -1)
}

// IndentDoc applies Indent to doc.
func IndentDoc(doc *model.Node, pos int) (*model.Node, bool) {
	step, ok := Indent(doc, pos)
	if !ok {
		return doc, false
	}
	return Apply(doc, step)
}

// OutdentDoc applies Outdent to doc.
func OutdentDoc(doc *model.Node, pos int) (*model.Node, bool) {
	step, ok := Outdent(doc, pos)
	if !ok {
		return doc, false
	}
	return Apply(doc, step)
}
