package measure

import (
	"bytes"
	"sync"

	"github.com/shodgson/prosemirror-fontsize/fontsize"
	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/shodgson/prosemirror-fontsize/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// span maps a range of document positions to the element rendering them.
type span struct {
	from, to int
	el       *html.Node
	text     bool
}

// StylesheetMeasurer computes the font sizes of a rendered document.
// It is safe for concurrent use.
type StylesheetMeasurer struct {
	root  *html.Node // the <html> element
	spans []span
	rules []rule

	mu       sync.Mutex
	computed map[*html.Node]float64
}

// NewStylesheetMeasurer renders doc and prepares the font-size rules of a
// stylesheet. The document content is rendered into
// <html><body><div class="ProseMirror">, so rules may select on the
// editor's wrapper.
func NewStylesheetMeasurer(doc *model.Node, stylesheet string) (*StylesheetMeasurer, error) {
	rules, err := parseRules(stylesheet)
	if err != nil {
		return nil, err
	}
	m := &StylesheetMeasurer{
		rules:    rules,
		computed: make(map[*html.Node]float64),
	}
	m.root = &html.Node{Type: html.ElementNode, DataAtom: atom.Html, Data: "html"}
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	editor := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "class", Val: "ProseMirror"}},
	}
	m.root.AppendChild(body)
	body.AppendChild(editor)
	m.spans = append(m.spans, span{from: 0, to: doc.Content.Size, el: editor})

	serializer := model.NewDOMSerializer()
	serializer.OnNode = func(pos int, node *model.Node, dom *html.Node) {
		switch {
		case node.IsText():
			m.spans = append(m.spans, span{from: pos, to: pos + node.NodeSize(), el: dom, text: true})
		case !node.IsLeaf():
			content := dom
			for content.FirstChild != nil && content.FirstChild.Type == html.ElementNode {
				content = content.FirstChild
			}
			m.spans = append(m.spans, span{from: pos + 1, to: pos + 1 + node.Content.Size, el: content})
		}
	}
	serializer.SerializeFragment(doc.Content, editor)
	tracer().Debugf("rendered document with %d position spans", len(m.spans))
	return m, nil
}

// elementAt finds the element rendering pos. A position touching text is
// rendered by the text's element, the text before pos taking precedence.
// Otherwise the innermost node containing pos is taken.
func (m *StylesheetMeasurer) elementAt(pos int) *html.Node {
	var after, inner *span
	for i := range m.spans {
		s := &m.spans[i]
		if pos < s.from || pos > s.to {
			continue
		}
		if s.text {
			if s.from < pos {
				return s.el
			}
			after = s
			continue
		}
		if inner == nil || s.to-s.from <= inner.to-inner.from {
			inner = s
		}
	}
	switch {
	case after != nil:
		return after.el
	case inner != nil:
		return inner.el
	}
	return nil
}

// MeasureFontSize returns the computed font size at pos in pixels.
// Positions outside the document are not measurable.
func (m *StylesheetMeasurer) MeasureFontSize(pos int) (float64, bool) {
	el := m.elementAt(pos)
	if el == nil {
		tracer().Debugf("no element renders position %d", pos)
		return 0, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fontSize(el), true
}

var _ fontsize.Measurer = &StylesheetMeasurer{}

// fontSize computes the font size of an element. Callers hold m.mu.
func (m *StylesheetMeasurer) fontSize(el *html.Node) float64 {
	if px, ok := m.computed[el]; ok {
		return px
	}
	parent := RootSize
	if el.Parent != nil && el.Parent.Type == html.ElementNode {
		parent = m.fontSize(el.Parent)
	}
	root := RootSize
	if el != m.root {
		root = m.fontSize(m.root)
	}
	px := parent
	if value, ok := m.specified(el); ok {
		if resolved, ok := resolveSize(value, parent, root); ok {
			px = resolved
		} else {
			tracer().Debugf("ignoring font-size %q on <%s>", value, el.Data)
		}
	}
	m.computed[el] = px
	return px
}

// specified returns the cascaded `font-size` value of an element.
func (m *StylesheetMeasurer) specified(el *html.Node) (string, bool) {
	var inline *style.Declaration
	for _, a := range el.Attr {
		if a.Key != "style" {
			continue
		}
		decls := style.ParseDeclarations(a.Val)
		for i := len(decls) - 1; i >= 0; i-- {
			if decls[i].Property == "font-size" {
				inline = &decls[i]
				break
			}
		}
	}
	r, found := match(m.rules, el)
	switch {
	case found && r.important && (inline == nil || !inline.Important):
		return r.value, true
	case inline != nil:
		return inline.Value, true
	case found:
		return r.value, true
	}
	if v, ok := userAgentSizes[el.Data]; ok {
		return v, true
	}
	return "", false
}

// HTML renders the document as the measurer sees it.
func (m *StylesheetMeasurer) HTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, m.root); err != nil {
		tracer().Errorf("cannot render document: %v", err)
	}
	return buf.String()
}
