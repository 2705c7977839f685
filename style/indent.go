package style

import (
	"strconv"
	"strings"
)

// IndentStep is the padding in pixels contributed by one indent level.
const IndentStep = 20

// Patch is a set of rendered HTML attributes. A key missing from a patch is
// not rendered at all.
type Patch map[string]string

// RenderIndentStyle renders an indent level as HTML attributes. Level 0
// renders no style attribute, so any padding is removed.
func RenderIndentStyle(level int) Patch {
	if level <= 0 {
		return Patch{}
	}
	return Patch{"style": IndentDeclaration(level).String()}
}

// IndentDeclaration returns the padding declaration for an indent level.
func IndentDeclaration(level int) Declarations {
	if level <= 0 {
		return nil
	}
	return Declarations{{Property: "padding-left", Value: strconv.Itoa(level*IndentStep) + "px"}}
}

// ParseIndentFromStyle reads the indent level from the `padding-left`
// declaration of a style attribute. Missing or malformed padding is level 0.
func ParseIndentFromStyle(s string) int {
	return ParseDeclarations(s).Indent()
}

// Indent reads the indent level from the `padding-left` declaration.
func (d Declarations) Indent() int {
	v, ok := d.Get("padding-left")
	if !ok {
		return 0
	}
	v = strings.ToLower(strings.TrimSpace(v))
	if !strings.HasSuffix(v, "px") {
		return 0
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, "px")), 64)
	if err != nil || px <= 0 {
		return 0
	}
	return int(px) / IndentStep
}
