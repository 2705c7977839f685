package style

import (
	"strconv"
	"strings"
)

// ClassList is an ordered set of class tokens, the content of a `class`
// attribute.
//
// Like Declarations, a ClassList is a value; methods return modified copies.
type ClassList []string

// ParseClassList splits a `class` attribute into tokens, dropping duplicates.
func ParseClassList(s string) ClassList {
	var c ClassList
	for _, tok := range strings.Fields(s) {
		c = c.Add(tok)
	}
	return c
}

// Has checks if tok is part of the list.
func (c ClassList) Has(tok string) bool {
	for _, t := range c {
		if t == tok {
			return true
		}
	}
	return false
}

// Add returns a copy of c with tok appended, unless it is already present.
func (c ClassList) Add(tok string) ClassList {
	if tok == "" || c.Has(tok) {
		return c
	}
	result := make(ClassList, len(c), len(c)+1)
	copy(result, c)
	return append(result, tok)
}

// Remove returns a copy of c without tok.
func (c ClassList) Remove(tok string) ClassList {
	return c.RemoveIf(func(t string) bool { return t == tok })
}

// RemoveIf returns a copy of c without the tokens matching pred.
func (c ClassList) RemoveIf(pred func(string) bool) ClassList {
	var result ClassList
	for _, t := range c {
		if !pred(t) {
			result = append(result, t)
		}
	}
	return result
}

func (c ClassList) String() string {
	return strings.Join(c, " ")
}

const fontSizeClassPrefix = "font-size-"

// FontSize extracts N from a `font-size-N` token.
func (c ClassList) FontSize() (int, bool) {
	for _, t := range c {
		if !strings.HasPrefix(t, fontSizeClassPrefix) {
			continue
		}
		digits := strings.TrimPrefix(t, fontSizeClassPrefix)
		if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// ParseClassFontSize extracts the font size from the content of a `class`
// attribute, e.g. 16 for "highlight font-size-16".
func ParseClassFontSize(s string) (int, bool) {
	return ParseClassList(s).FontSize()
}
