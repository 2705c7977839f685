package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyleFontSize(t *testing.T) {
	n, ok := ParseStyleFontSize("font-size: 18px")
	assert.True(t, ok)
	assert.Equal(t, 18, n)

	// tolerates case and whitespace
	n, ok = ParseStyleFontSize("color: red;   FONT-SIZE :  12PX ")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	// the last declaration wins
	n, ok = ParseStyleFontSize("font-size: 12px; font-size: 20px")
	assert.True(t, ok)
	assert.Equal(t, 20, n)

	for _, s := range []string{"", "color: red", "font-size: 1.5em", "font-size: px", "font-size: -4px", "font-size: 0px"} {
		_, ok = ParseStyleFontSize(s)
		assert.False(t, ok, "expected no font size in %q", s)
	}
}

func TestParseClassFontSize(t *testing.T) {
	n, ok := ParseClassFontSize("bold font-size-16")
	assert.True(t, ok)
	assert.Equal(t, 16, n)

	_, ok = ParseClassFontSize("font-size-")
	assert.False(t, ok)
	_, ok = ParseClassFontSize("font-size-large")
	assert.False(t, ok)
	_, ok = ParseClassFontSize("")
	assert.False(t, ok)
}

func TestParseDeclarations(t *testing.T) {
	d := ParseDeclarations("color: red; text-decoration: underline")
	assert.Equal(t, Declarations{
		{Property: "color", Value: "red"},
		{Property: "text-decoration", Value: "underline"},
	}, d)
	assert.Equal(t, "color: red; text-decoration: underline", d.String())

	// with and without the closing semicolon
	for _, s := range []string{"font-size: 16px", "font-size: 16px;", " font-size: 16px ; "} {
		v, ok := ParseDeclarations(s).Get("font-size")
		assert.True(t, ok, s)
		assert.Equal(t, "16px", v, s)
	}

	d = ParseDeclarations("font-size: 14px !important")
	if assert.Len(t, d, 1) {
		assert.Equal(t, "14px", d[0].Value)
		assert.True(t, d[0].Important)
	}

	// rendered styles parse back
	assert.Equal(t, RenderFontSizeStyle(22), ParseDeclarations(RenderFontSizeStyle(22)).String())
	assert.True(t, ParseDeclarations("  ").Empty())
}

func TestDeclarationsSetAndRemove(t *testing.T) {
	d := ParseDeclarations("color: red; font-size: 12px")
	d2 := d.Set("font-size", "20px")
	assert.Equal(t, "color: red; font-size: 20px", d2.String())
	// receiver is left alone
	assert.Equal(t, "color: red; font-size: 12px", d.String())

	d3 := d2.Set("text-align", "center")
	assert.Equal(t, "color: red; font-size: 20px; text-align: center", d3.String())
	assert.Equal(t, "color: red; text-align: center", d3.Remove("font-size").String())
	assert.True(t, Declarations(nil).Remove("color").Empty())
}

func TestIndentRoundTrip(t *testing.T) {
	p := RenderIndentStyle(2)
	assert.Equal(t, "padding-left: 40px", p["style"])
	assert.Equal(t, 2, ParseIndentFromStyle(p["style"]))

	p = RenderIndentStyle(0)
	_, ok := p["style"]
	assert.False(t, ok)
	assert.Equal(t, 0, ParseIndentFromStyle(p["style"]))

	// floors toward zero
	assert.Equal(t, 1, ParseIndentFromStyle("padding-left: 30px"))
	assert.Equal(t, 0, ParseIndentFromStyle("padding-left: 1em"))
	assert.Equal(t, 0, ParseIndentFromStyle("padding-left"))
}

func TestClassList(t *testing.T) {
	c := ParseClassList("a b a  c")
	assert.Equal(t, ClassList{"a", "b", "c"}, c)
	assert.True(t, c.Has("b"))
	assert.Equal(t, "a c", c.Remove("b").String())
	assert.Equal(t, c, c.Add("a"))
}

func TestVerticalAlign(t *testing.T) {
	a, ok := ParseVerticalAlign("middle")
	assert.True(t, ok)
	assert.Equal(t, AlignMiddle, a)
	a, ok = ParseVerticalAlign("v-bottom")
	assert.True(t, ok)
	assert.Equal(t, AlignBottom, a)
	_, ok = ParseVerticalAlign("baseline")
	assert.False(t, ok)

	c := ParseClassList("selectedCell v-top")
	c = c.WithVerticalAlign(AlignMiddle)
	assert.Equal(t, "selectedCell v-middle", c.String())
	c = c.WithVerticalAlign(AlignMiddle)
	assert.Equal(t, "selectedCell v-middle", c.String())
	assert.Equal(t, AlignMiddle, c.VerticalAlign())
	assert.Equal(t, "selectedCell", c.WithVerticalAlign(AlignNone).String())
}
