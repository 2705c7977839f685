package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// This type represents a node in the tree that makes up a document. So a
// document is an instance of Node, with children that are also instances of
// Node.
//
// Nodes are persistent data structures. Instead of changing them, you create
// new ones with the content you want. Old ones keep pointing at the old
// document shape. This is made cheaper by sharing structure between the old
// and new data as much as possible, which a tree shape like this (without back
// pointers) makes easy.
//
// Do not directly mutate the properties of a Node object.
type Node struct {
	// The kind of node that this is.
	Type Kind
	// The typed attributes of the node.
	Attrs Attrs
	// A container holding the node's children.
	Content *Fragment
	// For text nodes, this contains the node's text content.
	Text string
	// The marks (things like whether it is emphasized or part of a link)
	// applied to this node.
	Marks []*Mark
}

// NewNode creates a non-text node.
func NewNode(typ Kind, attrs Attrs, content *Fragment, marks []*Mark) *Node {
	if content == nil {
		content = EmptyFragment
	}
	return &Node{Type: typ, Attrs: attrs, Content: content, Marks: MarkSetFrom(marks)}
}

// NewTextNode creates a text node.
func NewTextNode(text string, marks []*Mark) *Node {
	return &Node{Type: Text, Text: text, Content: EmptyFragment, Marks: MarkSetFrom(marks)}
}

// The size of this node, as defined by the integer-based indexing scheme. For
// text nodes, this is the amount of characters. For other leaf nodes, it is
// one. For non-leaf nodes, it is the size of the content plus two (the start
// and end token).
func (n *Node) NodeSize() int {
	if n.IsText() {
		return utf8.RuneCountInString(n.Text)
	}
	if n.IsLeaf() {
		return 1
	}
	return 2 + n.Content.Size
}

// The number of children that the node has.
func (n *Node) ChildCount() int {
	return n.Content.ChildCount()
}

// Get the child node at the given index. Returns an error when the index is
// out of range.
func (n *Node) Child(index int) (*Node, error) {
	return n.Content.Child(index)
}

// Get the child node at the given index, if it exists.
func (n *Node) MaybeChild(index int) *Node {
	return n.Content.MaybeChild(index)
}

// Invoke a callback for all descendant nodes recursively between the given two
// positions that are relative to start of this node's content. The callback is
// invoked with the node, its parent-relative position, its parent node, and
// its child index. When the callback returns false for a given node, that
// node's children will not be recursed over. The last parameter can be used to
// specify a starting position to count from.
func (n *Node) NodesBetween(from, to int, fn NBCallback, startPos ...int) {
	s := 0
	if len(startPos) > 0 {
		s = startPos[0]
	}
	n.Content.NodesBetween(from, to, fn, s, n)
}

// Descendants calls fn for every descendant node, in document order.
func (n *Node) Descendants(fn NBCallback) {
	n.NodesBetween(0, n.Content.Size, fn)
}

// Concatenates all the text nodes found in this node and its children.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	text := ""
	n.Descendants(func(node *Node, _ int, _ *Node, _ int) bool {
		if node.IsText() {
			text += node.Text
		}
		return true
	})
	return text
}

// Test whether two nodes represent the same piece of document.
func (n *Node) Eq(other *Node) bool {
	if n == other {
		return true
	}
	if n.IsText() {
		return other.IsText() && n.Text == other.Text && SameMarkSet(n.Marks, other.Marks)
	}
	return n.SameMarkup(other) && n.Content.Eq(other.Content)
}

// Compare the markup (type, attributes, and marks) of this node to those of
// another. Returns true if both have the same markup.
func (n *Node) SameMarkup(other *Node) bool {
	return n.HasMarkup(other.Type, other.Attrs, other.Marks)
}

// Check whether this node's markup correspond to the given type, attributes,
// and marks.
func (n *Node) HasMarkup(typ Kind, attrs Attrs, marks []*Mark) bool {
	return n.Type == typ && n.Attrs.Eq(attrs) && SameMarkSet(n.Marks, marks)
}

// Create a new node with the same markup as this node, containing
// the given content (or empty, if no content is given).
func (n *Node) Copy(content ...*Fragment) *Node {
	c := EmptyFragment
	if len(content) > 0 && content[0] != nil {
		c = content[0]
	}
	if c == n.Content {
		return n
	}
	return &Node{Type: n.Type, Attrs: n.Attrs, Content: c, Marks: n.Marks}
}

// WithAttrs creates a copy of this node with different attributes.
func (n *Node) WithAttrs(attrs Attrs) *Node {
	return &Node{Type: n.Type, Attrs: attrs, Content: n.Content, Text: n.Text, Marks: n.Marks}
}

// Create a copy of this node, with the given set of marks instead of the
// node's own marks.
func (n *Node) Mark(marks []*Mark) *Node {
	if SameMarkSet(n.Marks, marks) {
		return n
	}
	return &Node{Type: n.Type, Attrs: n.Attrs, Content: n.Content, Text: n.Text, Marks: marks}
}

// Create a copy of this text node with only the text between the given
// character offsets. If `to` is not given, it defaults to the end of the
// node. Non-text nodes are returned unchanged.
func (n *Node) Cut(from int, to ...int) *Node {
	if !n.IsText() {
		return n
	}
	runes := []rune(n.Text)
	t := len(runes)
	if len(to) > 0 && to[0] < t {
		t = to[0]
	}
	if from < 0 {
		from = 0
	}
	if from == 0 && t == len(runes) {
		return n
	}
	if from >= t {
		return n.WithText("")
	}
	return n.WithText(string(runes[from:t]))
}

// Find the node directly after the given position. Returns nil if the
// position is out of range or there is no node after it.
func (n *Node) NodeAt(pos int) *Node {
	node := n
	for {
		index, offset, err := node.Content.findIndex(pos)
		if err != nil {
			return nil
		}
		node = node.MaybeChild(index)
		if node == nil {
			return nil
		}
		if offset == pos || node.IsText() {
			return node
		}
		pos -= offset + 1
	}
}

// ReplaceNodeAt creates a new document in which the node directly after pos
// is replaced by repl. Ancestors on the way are copied, everything else is
// shared with the receiver.
func (n *Node) ReplaceNodeAt(pos int, repl *Node) (*Node, error) {
	if repl == nil {
		return nil, errors.New("Cannot replace node with nil")
	}
	index, offset, err := n.Content.findIndex(pos)
	if err != nil {
		return nil, err
	}
	child := n.MaybeChild(index)
	if child == nil {
		return nil, fmt.Errorf("No node at position %d", pos)
	}
	if offset != pos {
		if child.IsLeaf() {
			return nil, fmt.Errorf("Position %d points into leaf node %s", pos, child.Type)
		}
		repl, err = child.ReplaceNodeAt(pos-offset-1, repl)
		if err != nil {
			return nil, err
		}
	}
	content, err := n.Content.ReplaceChild(index, repl)
	if err != nil {
		return nil, err
	}
	return n.Copy(content), nil
}

// Resolve the given position in the document, returning a ResolvedPos.
func (n *Node) Resolve(pos int) (*ResolvedPos, error) {
	return resolvePosCached(n, pos)
}

// True when this is a block (non-inline node)
func (n *Node) IsBlock() bool {
	return !n.Type.IsInline()
}

// True when this is an inline node.
func (n *Node) IsInline() bool {
	return n.Type.IsInline()
}

// True when this is a textblock node, a block node with inline content.
func (n *Node) IsTextblock() bool {
	return n.Type.IsTextblock()
}

// True when this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Type.IsLeaf()
}

// True when this is a text node.
func (n *Node) IsText() bool {
	return n.Type == Text
}

// WithText creates a copy of this text node holding different text.
func (n *Node) WithText(text string) *Node {
	if text == n.Text {
		return n
	}
	return NewTextNode(text, n.Marks)
}

// Return a string representation of this node for debugging purposes.
func (n *Node) String() string {
	name := n.Type.String()
	if n.IsText() {
		name = fmt.Sprintf("%q", n.Text)
	} else if n.Content.Size > 0 {
		name += fmt.Sprintf("(%s)", n.Content.toStringInner())
	}
	return wrapMarks(n.Marks, name)
}

func wrapMarks(marks []*Mark, str string) string {
	for i := len(marks) - 1; i >= 0; i-- {
		str = fmt.Sprintf("%s(%s)", marks[i].Type, str)
	}
	return str
}
