package model

import (
	"reflect"
	"sort"

	"github.com/shodgson/prosemirror-fontsize/style"
)

// Attrs is the typed attribute record of a node or mark. The attributes the
// core interprets are parsed once, when the node is created; everything else
// is carried untouched in Extra.
type Attrs struct {
	// Style holds the parsed `style` attribute.
	Style style.Declarations
	// Class holds the parsed `class` attribute.
	Class style.ClassList
	// Level is the heading level; 0 means absent.
	Level int
	// Indent is the indent level of a block, never negative.
	Indent int
	// TextAlign is the horizontal alignment set by the editor, if any.
	TextAlign string
	// Selected marks a selected table cell.
	Selected bool
	// Extra holds attributes the core does not interpret (src, href, ...).
	Extra map[string]interface{}
}

// Attribute names of the typed attributes.
const (
	AttrStyle     = "style"
	AttrClass     = "class"
	AttrLevel     = "level"
	AttrIndent    = "indent"
	AttrTextAlign = "textAlign"
	AttrSelected  = "selected"
)

// NoAttrs is the empty attribute record.
var NoAttrs = Attrs{}

// AttrsFromMap parses an editor attribute map.
func AttrsFromMap(m map[string]interface{}) Attrs {
	var a Attrs
	for k, v := range m {
		switch k {
		case AttrStyle:
			if s, ok := v.(string); ok {
				a.Style = style.ParseDeclarations(s)
			}
		case AttrClass:
			if s, ok := v.(string); ok {
				a.Class = style.ParseClassList(s)
			}
		case AttrLevel:
			a.Level, _ = toInt(v)
		case AttrIndent:
			a.Indent, _ = toInt(v)
		case AttrTextAlign:
			a.TextAlign, _ = v.(string)
		case AttrSelected:
			a.Selected, _ = v.(bool)
		default:
			if v == nil {
				continue
			}
			if a.Extra == nil {
				a.Extra = map[string]interface{}{}
			}
			a.Extra[k] = v
		}
	}
	if a.Indent < 0 {
		a.Indent = 0
	}
	return a
}

// NodeAttrsFromMap parses the attribute map of a node of kind k.
//
// An indentable block without an `indent` attribute picks up its indent
// level from a `padding-left` declaration; that declaration is then carried
// by Indent instead of Style. Other kinds keep their padding as styled.
func NodeAttrsFromMap(k Kind, m map[string]interface{}) Attrs {
	a := AttrsFromMap(m)
	if _, hasIndent := m[AttrIndent]; hasIndent || !k.IsIndentable() {
		return a
	}
	if level := a.Style.Indent(); level > 0 {
		a.Indent = level
		a.Style = a.Style.Remove("padding-left")
	}
	return a
}

// ToMap renders the record back into an editor attribute map. Attributes at
// their default value are left out.
func (a Attrs) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	for k, v := range a.Extra {
		m[k] = v
	}
	if !a.Style.Empty() {
		m[AttrStyle] = a.Style.String()
	}
	if len(a.Class) > 0 {
		m[AttrClass] = a.Class.String()
	}
	if a.Level != 0 {
		m[AttrLevel] = a.Level
	}
	if a.Indent > 0 {
		m[AttrIndent] = a.Indent
	}
	if a.TextAlign != "" {
		m[AttrTextAlign] = a.TextAlign
	}
	if a.Selected {
		m[AttrSelected] = true
	}
	return m
}

// IsEmpty is true if no attribute is set.
func (a Attrs) IsEmpty() bool {
	return len(a.ToMap()) == 0
}

// Eq compares two attribute records.
func (a Attrs) Eq(other Attrs) bool {
	return reflect.DeepEqual(a.ToMap(), other.ToMap())
}

// Merge returns the record resulting from setting the attributes of patch on
// top of a. A nil value in patch removes the attribute.
func (a Attrs) Merge(patch map[string]interface{}) Attrs {
	m := a.ToMap()
	for k, v := range patch {
		if v == nil {
			delete(m, k)
			continue
		}
		m[k] = v
	}
	return AttrsFromMap(m)
}

// Keys returns the names of the set attributes, sorted.
func (a Attrs) Keys() []string {
	m := a.ToMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	}
	return 0, false
}
