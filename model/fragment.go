package model

import (
	"fmt"
	"strings"
)

// A fragment represents a node's collection of child nodes.
//
// Like nodes, fragments are persistent data structures, and you should not
// mutate them or their content. Rather, you create new instances whenever
// needed.
type Fragment struct {
	Content []*Node
	Size    int
}

// EmptyFragment is the fragment of a node without children.
var EmptyFragment = &Fragment{}

// NewFragment creates a fragment from a list of nodes. Adjacent text nodes
// with the same marks are joined, empty text nodes are dropped.
func NewFragment(nodes []*Node) *Fragment {
	if len(nodes) == 0 {
		return EmptyFragment
	}
	content := make([]*Node, 0, len(nodes))
	size := 0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.IsText() && node.Text == "" {
			continue
		}
		if last := len(content) - 1; last >= 0 && node.IsText() && content[last].IsText() &&
			SameMarkSet(node.Marks, content[last].Marks) {
			content[last] = content[last].WithText(content[last].Text + node.Text)
		} else {
			content = append(content, node)
		}
		size += node.NodeSize()
	}
	if len(content) == 0 {
		return EmptyFragment
	}
	return &Fragment{Content: content, Size: size}
}

// FragmentFrom creates a fragment from the given nodes.
func FragmentFrom(nodes ...*Node) *Fragment {
	return NewFragment(nodes)
}

// The number of child nodes in this fragment.
func (f *Fragment) ChildCount() int {
	return len(f.Content)
}

// Get the child node at the given index. Returns an error when the index is
// out of range.
func (f *Fragment) Child(index int) (*Node, error) {
	if index < 0 || index >= len(f.Content) {
		return nil, fmt.Errorf("Index %d out of range for %s", index, f)
	}
	return f.Content[index], nil
}

// Get the child node at the given index, if it exists.
func (f *Fragment) MaybeChild(index int) *Node {
	if index < 0 || index >= len(f.Content) {
		return nil
	}
	return f.Content[index]
}

// Call f for every child node, passing the node, its offset into this parent
// node, and its index.
func (f *Fragment) ForEach(fn func(node *Node, offset, index int)) {
	pos := 0
	for i, child := range f.Content {
		fn(child, pos, i)
		pos += child.NodeSize()
	}
}

// NBCallback is called by NodesBetween for every node in range. Returning
// false skips the node's children.
type NBCallback func(node *Node, pos int, parent *Node, index int) bool

// NodesBetween invokes a callback for all descendant nodes between the given
// two positions (relative to start of this fragment).
func (f *Fragment) NodesBetween(from, to int, fn NBCallback, nodeStart int, parent *Node) {
	pos := 0
	for i := 0; pos < to && i < len(f.Content); i++ {
		child := f.Content[i]
		end := pos + child.NodeSize()
		if end > from && fn(child, nodeStart+pos, parent, i) && child.Content.Size > 0 {
			start := pos + 1
			child.NodesBetween(maxInt(0, from-start), minInt(child.Content.Size, to-start), fn, nodeStart+start)
		}
		pos = end
	}
}

// ReplaceChild creates a new fragment in which the node at the given index is
// replaced by the given node.
func (f *Fragment) ReplaceChild(index int, node *Node) (*Fragment, error) {
	current, err := f.Child(index)
	if err != nil {
		return nil, err
	}
	if current == node {
		return f, nil
	}
	content := make([]*Node, len(f.Content))
	copy(content, f.Content)
	content[index] = node
	return &Fragment{Content: content, Size: f.Size + node.NodeSize() - current.NodeSize()}, nil
}

// Eq compares this fragment to another one.
func (f *Fragment) Eq(other *Fragment) bool {
	if len(f.Content) != len(other.Content) {
		return false
	}
	for i := range f.Content {
		if !f.Content[i].Eq(other.Content[i]) {
			return false
		}
	}
	return true
}

// findIndex finds the index and inner offset corresponding to a given
// relative position in this fragment.
func (f *Fragment) findIndex(pos int) (int, int, error) {
	if pos == 0 {
		return 0, pos, nil
	}
	if pos == f.Size {
		return len(f.Content), pos, nil
	}
	if pos > f.Size || pos < 0 {
		return 0, 0, fmt.Errorf("Position %d outside of fragment (%s)", pos, f)
	}
	curPos := 0
	for i, cur := range f.Content {
		end := curPos + cur.NodeSize()
		if end >= pos {
			if end == pos {
				return i + 1, end, nil
			}
			return i, curPos, nil
		}
		curPos = end
	}
	return len(f.Content), f.Size, nil
}

// Return a debugging string that describes this fragment.
func (f *Fragment) String() string {
	return "<" + f.toStringInner() + ">"
}

func (f *Fragment) toStringInner() string {
	parts := make([]string, len(f.Content))
	for i, n := range f.Content {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
