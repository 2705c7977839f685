package model

import (
	"strconv"

	"github.com/shodgson/prosemirror-fontsize/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToDOM creates the DOM element for a node. The returned element may wrap a
// deeper content element (e.g. <pre><code>); children are appended to the
// innermost first child.
type ToDOM = func(*Node) *html.Node

// MarkToDOM creates the DOM element wrapping the content of a mark.
type MarkToDOM = func(*Mark) *html.Node

// GetAttrs renders the attributes of a node as HTML attributes. A positive
// indent level replaces any padding in the style, the selected flag is
// merged into the class list.
func (a Attrs) GetAttrs() []html.Attribute {
	decls := a.Style
	if patch := style.RenderIndentStyle(a.Indent); patch["style"] != "" {
		decls = decls.Remove("padding-left").Merge(style.ParseDeclarations(patch["style"]))
	}
	if a.TextAlign != "" && a.TextAlign != "left" {
		decls = decls.Set("text-align", a.TextAlign)
	}
	classes := a.Class
	if a.Selected {
		classes = classes.Add("selectedCell")
	}
	var result []html.Attribute
	if len(classes) > 0 {
		result = append(result, html.Attribute{Key: "class", Val: classes.String()})
	}
	if !decls.Empty() {
		result = append(result, html.Attribute{Key: "style", Val: decls.String()})
	}
	return result
}

func extraAttrs(a Attrs, keys ...string) []html.Attribute {
	var result []html.Attribute
	for _, k := range keys {
		switch v := a.Extra[k].(type) {
		case string:
			result = append(result, html.Attribute{Key: k, Val: v})
		case float64:
			result = append(result, html.Attribute{Key: k, Val: strconv.FormatFloat(v, 'f', -1, 64)})
		case int:
			result = append(result, html.Attribute{Key: k, Val: strconv.Itoa(v)})
		}
	}
	return result
}

func element(a atom.Atom, attrs []html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func defaultDOMGenerator(a atom.Atom, extra ...string) ToDOM {
	return func(n *Node) *html.Node {
		return element(a, append(n.Attrs.GetAttrs(), extraAttrs(n.Attrs, extra...)...))
	}
}

func defaultCodeBlockDOMGenerator() ToDOM {
	return func(n *Node) *html.Node {
		outerNode := element(atom.Pre, n.Attrs.GetAttrs())
		innerNode := element(atom.Code, extraAttrs(n.Attrs, "language"))
		outerNode.AppendChild(innerNode)
		return outerNode
	}
}

func defaultTableDOMGenerator() ToDOM {
	return func(n *Node) *html.Node {
		outerNode := element(atom.Table, n.Attrs.GetAttrs())
		outerNode.AppendChild(element(atom.Tbody, nil))
		return outerNode
	}
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func defaultHeadingDOMGenerator() ToDOM {
	return func(n *Node) *html.Node {
		level := n.Attrs.Level
		if level < 1 || level > 6 {
			level = 3
		}
		return element(headingAtoms[level-1], n.Attrs.GetAttrs())
	}
}

func defaultMarkDOMGenerator(a atom.Atom, extra ...string) MarkToDOM {
	return func(m *Mark) *html.Node {
		return element(a, append(m.Attrs.GetAttrs(), extraAttrs(m.Attrs, extra...)...))
	}
}

// defaultToDOM returns the default serialization of a node kind. Text nodes
// are serialized by the serializer itself.
func defaultToDOM(k Kind) ToDOM {
	switch k {
	case Paragraph:
		return defaultDOMGenerator(atom.P)
	case Heading:
		return defaultHeadingDOMGenerator()
	case BulletList:
		return defaultDOMGenerator(atom.Ul)
	case OrderedList:
		return defaultDOMGenerator(atom.Ol, "start")
	case ListItem:
		return defaultDOMGenerator(atom.Li)
	case Blockquote:
		return defaultDOMGenerator(atom.Blockquote)
	case CodeBlock:
		return defaultCodeBlockDOMGenerator()
	case Table:
		return defaultTableDOMGenerator()
	case TableRow:
		return defaultDOMGenerator(atom.Tr)
	case TableCell:
		return defaultDOMGenerator(atom.Td, "colspan", "rowspan")
	case TableHeader:
		return defaultDOMGenerator(atom.Th, "colspan", "rowspan")
	case HardBreak:
		return defaultDOMGenerator(atom.Br)
	case Image:
		return defaultDOMGenerator(atom.Img, "src", "alt", "title")
	case HorizontalRule:
		return defaultDOMGenerator(atom.Hr)
	case Doc, Text:
		return nil
	}
	return nil
}

func defaultMarkToDOM(k MarkKind) MarkToDOM {
	switch k {
	case MarkLink:
		return defaultMarkDOMGenerator(atom.A, "href", "target", "rel")
	case MarkBold:
		return defaultMarkDOMGenerator(atom.Strong)
	case MarkItalic:
		return defaultMarkDOMGenerator(atom.Em)
	case MarkUnderline:
		return defaultMarkDOMGenerator(atom.U)
	case MarkStrike:
		return defaultMarkDOMGenerator(atom.S)
	case MarkCode:
		return defaultMarkDOMGenerator(atom.Code)
	case MarkHighlight:
		return defaultMarkDOMGenerator(atom.Mark, "color")
	case MarkTextStyle:
		return defaultMarkDOMGenerator(atom.Span)
	}
	return nil
}

// A DOM serializer knows how to convert nodes and marks of various kinds to
// DOM nodes.
type DOMSerializer struct {
	// The node serialization functions.
	Nodes map[Kind]ToDOM

	// The mark serialization functions. A mark without a serializer is
	// not rendered.
	Marks map[MarkKind]MarkToDOM

	// OnNode, if set, is called for every serialized node with the node's
	// position and the DOM node created for it. For text, the DOM node is
	// the element the text was appended to.
	OnNode func(pos int, node *Node, dom *html.Node)
}

// NewDOMSerializer creates a serializer with the default serialization of
// every node and mark kind.
func NewDOMSerializer() *DOMSerializer {
	d := &DOMSerializer{
		Nodes: make(map[Kind]ToDOM),
		Marks: make(map[MarkKind]MarkToDOM),
	}
	for k := Kind(0); k < kindCount; k++ {
		if fn := defaultToDOM(k); fn != nil {
			d.Nodes[k] = fn
		}
	}
	for k := MarkKind(0); k < markKindCount; k++ {
		if fn := defaultMarkToDOM(k); fn != nil {
			d.Marks[k] = fn
		}
	}
	return d
}

// SerializeFragment serializes the content of this fragment to HTML, appending
// it to target. If target is nil, a document node is created. The fragment is
// assumed to start at position start (0 for the content of a document).
func (d *DOMSerializer) SerializeFragment(fragment *Fragment, target *html.Node, start ...int) *html.Node {
	if target == nil {
		target = &html.Node{
			Type: html.DocumentNode,
		}
	}
	pos := 0
	if len(start) > 0 {
		pos = start[0]
	}
	type activeMark struct {
		mark *Mark
		top  *html.Node
	}
	var active []activeMark
	top := target
	fragment.ForEach(func(node *Node, offset, index int) {
		if active != nil || len(node.Marks) > 0 {
			keep, rendered := 0, 0
			for keep < len(active) && rendered < len(node.Marks) {
				next := node.Marks[rendered]
				if d.Marks[next.Type] == nil {
					rendered++
					continue
				}
				if !next.Eq(active[keep].mark) {
					break
				}
				keep++
				rendered++
			}
			for keep < len(active) {
				n := len(active)
				top, active = active[n-1].top, active[:n-1]
			}
			for rendered < len(node.Marks) {
				add := node.Marks[rendered]
				rendered++
				markDOM := d.serializeMark(add)
				if markDOM != nil {
					active = append(active, activeMark{mark: add, top: top})
					top.AppendChild(markDOM)
					top = markDOM
				}
			}
		}
		if node.IsText() {
			top.AppendChild(&html.Node{Type: html.TextNode, Data: node.Text})
			if d.OnNode != nil {
				d.OnNode(pos+offset, node, top)
			}
			return
		}
		if child := d.serializeNode(node, pos+offset); child != nil {
			top.AppendChild(child)
		}
	})
	return target
}

func (d *DOMSerializer) serializeMark(mark *Mark) *html.Node {
	toDOM := d.Marks[mark.Type]
	if toDOM == nil {
		return nil
	}
	return toDOM(mark)
}

// SerializeNode serializes this node to a DOM node. This can be useful when
// you need to serialize a part of a document, as opposed to the whole
// document. To serialize a whole document, use SerializeFragment on its
// content.
func (d *DOMSerializer) SerializeNode(node *Node) *html.Node {
	return d.serializeNode(node, 0)
}

func (d *DOMSerializer) serializeNode(node *Node, pos int) *html.Node {
	domFn := d.Nodes[node.Type]
	if domFn == nil {
		tracer().Debugf("no DOM serialization for node kind %s", node.Type)
		return nil
	}
	topNode := domFn(node)
	if d.OnNode != nil {
		d.OnNode(pos, node, topNode)
	}
	contentNode := topNode
	for contentNode.FirstChild != nil {
		contentNode = contentNode.FirstChild
	}
	d.SerializeFragment(node.Content, contentNode, pos+1)
	return topNode
}
