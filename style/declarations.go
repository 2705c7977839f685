package style

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declaration is a single CSS declaration, e.g. `font-size: 14px`.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Declarations is an ordered CSS declaration list, the content of a `style`
// attribute. Property names are always lower case.
//
// Declarations are values: methods returning a Declarations never modify the
// receiver.
type Declarations []Declaration

// ParseDeclarations parses the content of a `style` attribute. Malformed input
// results in an empty list.
func ParseDeclarations(s string) Declarations {
	src := strings.TrimSpace(s)
	if src == "" {
		return nil
	}
	// douceur only closes a declaration at ';' or '}'
	if !strings.HasSuffix(src, ";") {
		src += ";"
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		tracer().Debugf("cannot parse style %q: %v", s, err)
		return nil
	}
	result := make(Declarations, 0, len(decls))
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		if prop == "" {
			continue
		}
		result = append(result, Declaration{
			Property:  prop,
			Value:     strings.TrimSpace(d.Value),
			Important: d.Important,
		})
	}
	return result
}

// Empty is true if the list holds no declarations.
func (d Declarations) Empty() bool {
	return len(d) == 0
}

// Get returns the value of a property. If a property is declared more than
// once, the last declaration wins.
func (d Declarations) Get(prop string) (string, bool) {
	prop = strings.ToLower(prop)
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Property == prop {
			return d[i].Value, true
		}
	}
	return "", false
}

// Set returns a copy of d with prop set to value. An existing declaration of
// prop keeps its place in the list, duplicates are dropped.
func (d Declarations) Set(prop, value string) Declarations {
	prop = strings.ToLower(prop)
	result := make(Declarations, 0, len(d)+1)
	placed := false
	for _, decl := range d {
		if decl.Property != prop {
			result = append(result, decl)
			continue
		}
		if !placed {
			result = append(result, Declaration{Property: prop, Value: value})
			placed = true
		}
	}
	if !placed {
		result = append(result, Declaration{Property: prop, Value: value})
	}
	return result
}

// Remove returns a copy of d without any declaration of prop.
func (d Declarations) Remove(prop string) Declarations {
	prop = strings.ToLower(prop)
	var result Declarations
	for _, decl := range d {
		if decl.Property != prop {
			result = append(result, decl)
		}
	}
	return result
}

// Merge returns a copy of d with every declaration of other set on top of it.
func (d Declarations) Merge(other Declarations) Declarations {
	result := d
	for _, decl := range other {
		result = result.Set(decl.Property, decl.Value)
	}
	return result
}

// String serializes the list back into the form of a `style` attribute.
func (d Declarations) String() string {
	var sb strings.Builder
	for i, decl := range d {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(decl.Property)
		sb.WriteString(": ")
		sb.WriteString(decl.Value)
		if decl.Important {
			sb.WriteString(" !important")
		}
	}
	return sb.String()
}

// FontSize extracts a pixel font size from the `font-size` declaration.
func (d Declarations) FontSize() (int, bool) {
	v, ok := d.Get("font-size")
	if !ok {
		return 0, false
	}
	return ParsePixels(v)
}

// ParseStyleFontSize extracts the pixel font size from the content of a
// `style` attribute, e.g. 18 for "color: red; font-size: 18px".
func ParseStyleFontSize(s string) (int, bool) {
	return ParseDeclarations(s).FontSize()
}

// RenderFontSizeStyle renders a pixel font size as a style declaration.
func RenderFontSizeStyle(px int) string {
	return Declarations{{Property: "font-size", Value: RenderPixels(px)}}.String()
}

// RenderPixels renders a pixel value, e.g. "14px".
func RenderPixels(px int) string {
	return strconv.Itoa(px) + "px"
}

// ParsePixels parses a positive integer pixel value such as "14px".
func ParsePixels(v string) (int, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if !strings.HasSuffix(v, "px") {
		return 0, false
	}
	digits := strings.TrimSpace(strings.TrimSuffix(v, "px"))
	if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
