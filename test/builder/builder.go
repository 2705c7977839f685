// Package builder provides a small DSL for building documents in tests.
//
//     d := builder.Doc(builder.P("he<a>llo"), builder.H1(builder.TextStyle(
//         builder.Attrs{"style": "font-size: 18px"}, "title")))
//     pos := d.Tag["a"]
//
// Node builders take attribute maps (Attrs), strings (text), other built nodes
// and marked text as arguments. Markers like "<a>" inside strings are removed
// from the text and record their position in the Tag map of the result.
package builder

import (
	"regexp"
	"unicode/utf8"

	"github.com/shodgson/prosemirror-fontsize/model"
)

// Attrs are the attributes given to a builder.
type Attrs map[string]interface{}

// NodeWithTag is a built node together with the positions of its tags. Tags
// of a document are absolute positions; tags of any other node are relative
// to the start of its content.
type NodeWithTag struct {
	*model.Node
	Tag map[string]int
}

// Marked is a run of nodes produced by a mark builder. Tags are relative to
// the start of the run.
type Marked struct {
	Nodes []*model.Node
	Tag   map[string]int
}

// NodeBuilder builds a node of a fixed kind.
type NodeBuilder func(args ...interface{}) NodeWithTag

// MarkBuilder applies a mark of a fixed kind to its content.
type MarkBuilder func(args ...interface{}) Marked

var tagRE = regexp.MustCompile(`<(\w+)>`)

// flatten turns builder arguments into a node list. Tags are relative to the
// start of the list.
func flatten(args []interface{}, wrap func(*model.Node) *model.Node) ([]*model.Node, map[string]int, Attrs) {
	var nodes []*model.Node
	tag := map[string]int{}
	attrs := Attrs{}
	pos := 0
	for _, arg := range args {
		switch a := arg.(type) {
		case Attrs:
			for k, v := range a {
				attrs[k] = v
			}
		case map[string]interface{}:
			for k, v := range a {
				attrs[k] = v
			}
		case string:
			at, text := 0, ""
			for _, m := range tagRE.FindAllStringSubmatchIndex(a, -1) {
				text += a[at:m[0]]
				tag[a[m[2]:m[3]]] = pos + utf8.RuneCountInString(text)
				at = m[1]
			}
			text += a[at:]
			if text != "" {
				node := wrap(model.NewTextNode(text, nil))
				nodes = append(nodes, node)
				pos += node.NodeSize()
			}
		case NodeWithTag:
			for k, v := range a.Tag {
				tag[k] = pos + 1 + v
			}
			node := wrap(a.Node)
			nodes = append(nodes, node)
			pos += node.NodeSize()
		case NodeBuilder:
			node := wrap(a().Node)
			nodes = append(nodes, node)
			pos += node.NodeSize()
		case Marked:
			for k, v := range a.Tag {
				tag[k] = pos + v
			}
			for _, n := range a.Nodes {
				node := wrap(n)
				nodes = append(nodes, node)
				pos += node.NodeSize()
			}
		default:
			panic("builder: unsupported argument")
		}
	}
	return nodes, tag, attrs
}

func identity(n *model.Node) *model.Node {
	return n
}

func block(typ model.Kind, defaults Attrs) NodeBuilder {
	return func(args ...interface{}) NodeWithTag {
		nodes, tag, attrs := flatten(args, identity)
		merged := map[string]interface{}{}
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range attrs {
			merged[k] = v
		}
		node := model.NewNode(typ, model.NodeAttrsFromMap(typ, merged), model.NewFragment(nodes), nil)
		return NodeWithTag{Node: node, Tag: tag}
	}
}

// Create a builder function for marks.
func mark(typ model.MarkKind, defaults Attrs) MarkBuilder {
	return func(args ...interface{}) Marked {
		var attrs Attrs
		var content []interface{}
		for _, arg := range args {
			if a, ok := arg.(Attrs); ok {
				attrs = a
				continue
			}
			content = append(content, arg)
		}
		merged := map[string]interface{}{}
		for k, v := range defaults {
			merged[k] = v
		}
		for k, v := range attrs {
			merged[k] = v
		}
		m := model.NewMark(typ, model.AttrsFromMap(merged))
		nodes, tag, _ := flatten(content, func(n *model.Node) *model.Node {
			return n.Mark(m.AddToSet(n.Marks))
		})
		return Marked{Nodes: nodes, Tag: tag}
	}
}

// Node builders.
var (
	Doc        = block(model.Doc, nil)
	P          = block(model.Paragraph, nil)
	Blockquote = block(model.Blockquote, nil)
	Pre        = block(model.CodeBlock, nil)
	Heading    = block(model.Heading, nil)
	H1         = block(model.Heading, Attrs{"level": 1})
	H2         = block(model.Heading, Attrs{"level": 2})
	H3         = block(model.Heading, Attrs{"level": 3})
	H4         = block(model.Heading, Attrs{"level": 4})
	H5         = block(model.Heading, Attrs{"level": 5})
	H6         = block(model.Heading, Attrs{"level": 6})
	Ul         = block(model.BulletList, nil)
	Ol         = block(model.OrderedList, nil)
	Li         = block(model.ListItem, nil)
	Table      = block(model.Table, nil)
	Tr         = block(model.TableRow, nil)
	Td         = block(model.TableCell, nil)
	Th         = block(model.TableHeader, nil)
	Br         = block(model.HardBreak, nil)
	Img        = block(model.Image, Attrs{"src": "img.png"})
	Hr         = block(model.HorizontalRule, nil)
)

// Mark builders.
var (
	TextStyle = mark(model.MarkTextStyle, nil)
	Strong    = mark(model.MarkBold, nil)
	Em        = mark(model.MarkItalic, nil)
	Code      = mark(model.MarkCode, nil)
	A         = mark(model.MarkLink, Attrs{"href": "foo"})
)

// FontSize is a textStyle mark carrying a pixel font size in its style.
func FontSize(px int, args ...interface{}) Marked {
	return TextStyle(append([]interface{}{Attrs{"style": fontSizeStyle(px)}}, args...)...)
}
