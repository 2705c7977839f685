package commands

import (
	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/shodgson/prosemirror-fontsize/style"
	"github.com/shodgson/prosemirror-fontsize/transform"
)

func isCell(n *model.Node) bool {
	return n.Type.IsTableCell()
}

// SetCellVerticalAlign sets the vertical alignment of the table cell around
// pos. Alignment tokens already in the cell's class are replaced, other
// tokens are kept. AlignNone removes the alignment.
func SetCellVerticalAlign(doc *model.Node, pos int, align style.VerticalAlign) (*transform.SetAttrsStep, bool) {
	before, cell, ok := findAncestor(doc, pos, isCell)
	if !ok {
		tracer().Debugf("no table cell at %d", pos)
		return nil, false
	}
	var class interface{}
	if classes := cell.Attrs.Class.WithVerticalAlign(align); len(classes) > 0 {
		class = classes.String()
	}
	return transform.NewSetAttrsStep(before, map[string]interface{}{model.AttrClass: class}), true
}

// SetCellSelected marks the table cell around pos as selected or not.
func SetCellSelected(doc *model.Node, pos int, selected bool) (*transform.SetAttrsStep, bool) {
	before, _, ok := findAncestor(doc, pos, isCell)
	if !ok {
		tracer().Debugf("no table cell at %d", pos)
		return nil, false
	}
	var value interface{}
	if selected {
		value = true
	}
	return transform.NewSetAttrsStep(before, map[string]interface{}{model.AttrSelected: value}), true
}
