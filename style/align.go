package style

import "strings"

// VerticalAlign is the vertical alignment of a table cell. It is carried as
// a class token on the cell.
type VerticalAlign int

// Vertical alignments.
const (
	AlignNone VerticalAlign = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

var alignTokens = [...]string{"", "v-top", "v-middle", "v-bottom"}

// Token returns the class token of an alignment, e.g. "v-middle".
func (a VerticalAlign) Token() string {
	if !a.Valid() {
		return ""
	}
	return alignTokens[a]
}

// Valid is false for AlignNone and out-of-range values.
func (a VerticalAlign) Valid() bool {
	return a >= AlignTop && a <= AlignBottom
}

func (a VerticalAlign) String() string {
	if !a.Valid() {
		return "none"
	}
	return strings.TrimPrefix(alignTokens[a], "v-")
}

// ParseVerticalAlign accepts both the plain names ("top") and the class
// tokens ("v-top").
func ParseVerticalAlign(s string) (VerticalAlign, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a := AlignTop; a <= AlignBottom; a++ {
		if s == alignTokens[a] || s == a.String() {
			return a, true
		}
	}
	return AlignNone, false
}

// IsVerticalAlignToken checks if a class token encodes a vertical alignment.
func IsVerticalAlignToken(tok string) bool {
	for a := AlignTop; a <= AlignBottom; a++ {
		if tok == alignTokens[a] {
			return true
		}
	}
	return false
}

// VerticalAlign returns the alignment carried by a class list, if any.
func (c ClassList) VerticalAlign() VerticalAlign {
	for _, t := range c {
		if a, ok := ParseVerticalAlign(t); ok && IsVerticalAlignToken(t) {
			return a
		}
	}
	return AlignNone
}

// WithVerticalAlign returns a copy of c carrying exactly one alignment token.
func (c ClassList) WithVerticalAlign(a VerticalAlign) ClassList {
	result := c.RemoveIf(IsVerticalAlignToken)
	if a.Valid() {
		result = result.Add(a.Token())
	}
	return result
}
