package measure

import (
	"strconv"
	"strings"
)

// RootSize is the font size of the root element when no rule sets one.
const RootSize = 16.0

var absoluteSizes = map[string]float64{
	"xx-small":  9,
	"x-small":   10,
	"small":     13,
	"medium":    16,
	"large":     18,
	"x-large":   24,
	"xx-large":  32,
	"xxx-large": 48,
}

// userAgentSizes are the browser default font sizes of elements.
var userAgentSizes = map[string]string{
	"h1":    "2em",
	"h2":    "1.5em",
	"h3":    "1.17em",
	"h4":    "1em",
	"h5":    "0.83em",
	"h6":    "0.67em",
	"small": "smaller",
	"big":   "larger",
}

// resolveSize computes a font size in pixels from a specified value. parent
// is the size of the parent element, root the size of the root element.
func resolveSize(value string, parent, root float64) (float64, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "inherit", "unset", "":
		return parent, true
	case "initial":
		return RootSize, true
	case "smaller":
		return parent / 1.2, true
	case "larger":
		return parent * 1.2, true
	}
	if px, ok := absoluteSizes[v]; ok {
		return px, true
	}
	unit, factor := "", 0.0
	for _, u := range []struct {
		suffix string
		factor float64
	}{
		{"rem", root},
		{"em", parent},
		{"px", 1},
		{"pt", 4.0 / 3.0},
		{"%", parent / 100},
	} {
		if strings.HasSuffix(v, u.suffix) {
			unit, factor = u.suffix, u.factor
			break
		}
	}
	if unit == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, unit)), 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * factor, true
}
