package model

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the tree below n for debugging, one node per line, including
// the start position of every node and its attributes.
func (n *Node) Dump() string {
	printer := treeprint.New()
	dumpChildren(n, printer.AddBranch(n.label(-1)), 0)
	return printer.String()
}

func dumpChildren(n *Node, branch treeprint.Tree, start int) {
	n.Content.ForEach(func(child *Node, offset, _ int) {
		pos := start + offset
		if child.IsLeaf() || child.Content.Size == 0 {
			branch.AddNode(child.label(pos))
			return
		}
		dumpChildren(child, branch.AddBranch(child.label(pos)), pos+1)
	})
}

func (n *Node) label(pos int) string {
	var s string
	if n.IsText() {
		s = fmt.Sprintf("%q", n.Text)
	} else {
		s = n.Type.String()
	}
	if pos >= 0 {
		s = fmt.Sprintf("%d: %s", pos, s)
	}
	if !n.IsText() {
		if attrs := n.Attrs.ToMap(); len(attrs) > 0 {
			s += fmt.Sprintf(" %v", attrs)
		}
	}
	for _, m := range n.Marks {
		s += " +" + m.Type.String()
		if attrs := m.Attrs.ToMap(); len(attrs) > 0 {
			s += fmt.Sprintf("%v", attrs)
		}
	}
	return s
}
