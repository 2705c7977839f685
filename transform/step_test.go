package transform

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/shodgson/prosemirror-fontsize/test/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Attrs = builder.Attrs

var (
	doc        = builder.Doc
	p          = builder.P
	h1         = builder.H1
	blockquote = builder.Blockquote
	pre        = builder.Pre
	em         = builder.Em
	img        = builder.Img
	textStyle  = builder.TextStyle
	fontSize   = builder.FontSize
	table      = builder.Table
	tr         = builder.Tr
	td         = builder.Td
)

var italic = model.NewMark(model.MarkItalic, model.NoAttrs)

func sizeMark(style string) *model.Mark {
	return model.NewMark(model.MarkTextStyle, model.AttrsFromMap(map[string]interface{}{"style": style}))
}

func mkStep(from, to int, val string) Step {
	switch val {
	case "+em":
		return NewAddMarkStep(from, to, italic)
	case "-em":
		return NewRemoveMarkStep(from, to, model.MarkItalic)
	default:
		return NewSetAttrsStep(from, map[string]interface{}{"indent": to})
	}
}

func TestStepMerge(t *testing.T) {
	testDoc := doc(p("foobar")).Node

	yes := func(from1, to1 int, val1 string, from2, to2 int, val2 string) {
		step1 := mkStep(from1, to1, val1)
		step2 := mkStep(from2, to2, val2)
		merged, ok := step1.Merge(step2)
		if assert.True(t, ok) {
			applied1 := step1.Apply(testDoc).Doc
			applied2 := step2.Apply(applied1).Doc
			assert.True(t, merged.Apply(testDoc).Doc.Eq(applied2))
		}
	}

	no := func(from1, to1 int, val1 string, from2, to2 int, val2 string) {
		step1 := mkStep(from1, to1, val1)
		step2 := mkStep(from2, to2, val2)
		_, ok := step1.Merge(step2)
		assert.False(t, ok)
	}

	// merges add and remove of the same mark
	yes(1, 2, "+em", 2, 4, "+em")
	yes(1, 3, "+em", 2, 4, "+em")
	yes(1, 2, "-em", 2, 4, "-em")

	// doesn't merge separated marks
	no(1, 2, "+em", 3, 4, "+em")

	// doesn't merge add with remove
	no(1, 3, "+em", 2, 4, "-em")

	// merges attribute changes on the same node
	yes(0, 1, "attrs", 0, 2, "attrs")

	// doesn't merge attribute changes on different nodes
	no(0, 1, "attrs", 8, 2, "attrs")
}

func TestAddMarkStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmstyle.transform")
	defer teardown()
	//
	d := doc(p("fo<a>ob<b>ar"))
	result := NewAddMarkStep(d.Tag["a"], d.Tag["b"], italic).Apply(d.Node)
	require.Empty(t, result.Failed)
	assert.True(t, result.Doc.Eq(doc(p("fo", em("ob"), "ar")).Node), result.Doc.Dump())

	// spans several blocks and skips content without marks
	d = doc(p("a<a>b"), pre("code"), blockquote(p("c<b>d")))
	result = NewAddMarkStep(d.Tag["a"], d.Tag["b"], italic).Apply(d.Node)
	require.Empty(t, result.Failed)
	assert.True(t, result.Doc.Eq(doc(p("a", em("b")), pre("code"), blockquote(p(em("c"), "d"))).Node), result.Doc.Dump())

	// marks inline leaves
	d = doc(p("<a>x", img, "<b>y"))
	result = NewAddMarkStep(d.Tag["a"], d.Tag["b"], italic).Apply(d.Node)
	require.Empty(t, result.Failed)
	assert.True(t, result.Doc.Eq(doc(p(em("x", img), "y")).Node), result.Doc.Dump())
}

func TestAddMarkReplacesSameKind(t *testing.T) {
	d := doc(p(fontSize(12, "a<a>bc"), "d<b>e"))
	result := NewAddMarkStep(d.Tag["a"], d.Tag["b"], sizeMark("font-size: 20px")).Apply(d.Node)
	require.Empty(t, result.Failed)
	expected := doc(p(fontSize(12, "a"), fontSize(20, "bcd"), "e"))
	assert.True(t, result.Doc.Eq(expected.Node), "%s != %s", result.Doc, expected)
}

func TestRemoveMarkStep(t *testing.T) {
	d := doc(p(fontSize(12, "a<a>b"), textStyle(Attrs{"class": "font-size-18"}, "c"), em("d<b>e")))
	result := NewRemoveMarkStep(d.Tag["a"], d.Tag["b"], model.MarkTextStyle).Apply(d.Node)
	require.Empty(t, result.Failed)
	expected := doc(p(fontSize(12, "a"), "bc", em("de")))
	assert.True(t, result.Doc.Eq(expected.Node), "%s != %s", result.Doc, expected)
}

func TestMarkStepRange(t *testing.T) {
	d := doc(p("abc")).Node
	assert.NotEmpty(t, NewAddMarkStep(2, 1, italic).Apply(d).Failed)
	assert.NotEmpty(t, NewRemoveMarkStep(-1, 2, model.MarkItalic).Apply(d).Failed)
	assert.NotEmpty(t, NewAddMarkStep(0, 6, italic).Apply(d).Failed)
	assert.Empty(t, NewAddMarkStep(0, 5, italic).Apply(d).Failed)
}

func TestSetAttrsStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmstyle.transform")
	defer teardown()
	//
	d := doc(p("a"), blockquote(p(Attrs{"style": "color: red"}, "b")))
	result := NewSetAttrsStep(4, map[string]interface{}{"indent": 2}).Apply(d.Node)
	require.Empty(t, result.Failed)
	changed := result.Doc.NodeAt(4)
	assert.Equal(t, 2, changed.Attrs.Indent)
	assert.Equal(t, "color: red", changed.Attrs.Style.String())
	assert.Equal(t, 0, d.NodeAt(4).Attrs.Indent)

	// nil removes an attribute
	result = NewSetAttrsStep(4, map[string]interface{}{"style": nil}).Apply(d.Node)
	require.Empty(t, result.Failed)
	assert.True(t, result.Doc.NodeAt(4).Attrs.Style.Empty())

	assert.NotEmpty(t, NewSetAttrsStep(1, map[string]interface{}{"indent": 1}).Apply(d.Node).Failed)
	assert.NotEmpty(t, NewSetAttrsStep(99, map[string]interface{}{"indent": 1}).Apply(d.Node).Failed)
}

func TestTransform(t *testing.T) {
	d := doc(p("hello"), p("world"))
	tr := NewTransform(d.Node)
	require.NoError(t, tr.SetNodeAttrs(0, map[string]interface{}{"indent": 1}))
	require.NoError(t, tr.AddMark(1, 3, sizeMark("font-size: 20px")))
	require.NoError(t, tr.RemoveMark(2, 3, model.MarkTextStyle))
	assert.Error(t, tr.SetNodeAttrs(2, map[string]interface{}{"indent": 1}))

	assert.True(t, tr.DocChanged())
	assert.Len(t, tr.Steps, 3)
	assert.Len(t, tr.Docs, 3)
	assert.Same(t, d.Node, tr.Before())
	expected := doc(p(Attrs{"indent": 1}, fontSize(20, "h"), "ello"), p("world"))
	assert.True(t, tr.Doc.Eq(expected.Node), "%s != %s", tr.Doc, expected)
}

func TestStepJSON(t *testing.T) {
	steps := []Step{
		NewSetAttrsStep(3, map[string]interface{}{"class": "v-top", "style": nil}),
		NewAddMarkStep(1, 4, sizeMark("font-size: 18px")),
		NewRemoveMarkStep(1, 4, model.MarkTextStyle),
	}
	for _, step := range steps {
		data, err := json.Marshal(step.ToJSON())
		require.NoError(t, err)
		decoded, err := StepFromJSON(data)
		require.NoError(t, err, string(data))
		assert.Equal(t, step.ToJSON(), decoded.ToJSON())
	}

	for _, input := range []string{
		`{"stepType": "replace", "from": 1, "to": 2}`,
		`{"stepType": "setAttrs", "attrs": {}}`,
		`{"stepType": "addMark", "from": 1, "to": 2, "mark": {"type": "blink"}}`,
		`{"stepType": "removeMark", "from": "1", "to": 2, "mark": {"type": "bold"}}`,
		`{"stepType": `,
	} {
		_, err := StepFromJSON([]byte(input))
		assert.Error(t, err, input)
	}
}
