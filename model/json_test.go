package model_test

import (
	"encoding/json"
	"testing"

	. "github.com/shodgson/prosemirror-fontsize/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{"type": "doc", "content": [
  {"type": "heading", "attrs": {"level": 2, "style": "font-size: 30px"}, "content": [
    {"type": "text", "text": "Title"}]},
  {"type": "paragraph", "attrs": {"style": "padding-left: 40px; color: red", "textAlign": "center"}, "content": [
    {"type": "text", "text": "big", "marks": [{"type": "textStyle", "attrs": {"style": "font-size: 18px", "color": null}}, {"type": "bold"}]},
    {"type": "hardBreak"},
    {"type": "text", "text": "plain"}]},
  {"type": "table", "content": [{"type": "tableRow", "content": [
    {"type": "tableCell", "attrs": {"class": "v-middle", "colspan": 1, "selected": true}, "content": [
      {"type": "paragraph"}]}]}]}
]}`

func TestNodeFromJSON(t *testing.T) {
	d, err := NodeFromJSON([]byte(sampleDoc))
	require.NoError(t, err)

	h := mustChild(t, d, 0)
	assert.Equal(t, Heading, h.Type)
	assert.Equal(t, 2, h.Attrs.Level)
	n, ok := h.Attrs.Style.FontSize()
	assert.True(t, ok)
	assert.Equal(t, 30, n)

	para := mustChild(t, d, 1)
	assert.Equal(t, 2, para.Attrs.Indent)
	assert.Equal(t, "color: red", para.Attrs.Style.String())
	assert.Equal(t, "center", para.Attrs.TextAlign)
	text := mustChild(t, para, 0)
	require.Len(t, text.Marks, 2)
	assert.Equal(t, MarkBold, text.Marks[0].Type)
	assert.Equal(t, MarkTextStyle, text.Marks[1].Type)
	assert.Equal(t, HardBreak, mustChild(t, para, 1).Type)

	cell := d.NodeAt(para.NodeSize() + h.NodeSize() + 2)
	require.NotNil(t, cell)
	assert.Equal(t, TableCell, cell.Type)
	assert.True(t, cell.Attrs.Class.Has("v-middle"))
	assert.True(t, cell.Attrs.Selected)
	assert.Equal(t, float64(1), cell.Attrs.Extra["colspan"])
}

func TestPaddingIndentsOnlyIndentableBlocks(t *testing.T) {
	d, err := NodeFromJSON([]byte(`{"type": "doc", "content": [
	  {"type": "table", "content": [{"type": "tableRow", "content": [
	    {"type": "tableCell", "attrs": {"style": "padding-left: 40px"}, "content": [
	      {"type": "paragraph", "content": [{"type": "text", "text": "x",
	        "marks": [{"type": "textStyle", "attrs": {"style": "padding-left: 20px"}}]}]}]}]}]}]}`))
	require.NoError(t, err)

	cell := d.NodeAt(2)
	require.NotNil(t, cell)
	assert.Equal(t, TableCell, cell.Type)
	assert.Equal(t, 0, cell.Attrs.Indent)
	assert.Equal(t, "padding-left: 40px", cell.Attrs.Style.String())
	assert.Equal(t, map[string]interface{}{"style": "padding-left: 40px"}, cell.ToJSON()["attrs"])

	text := d.NodeAt(4)
	require.NotNil(t, text)
	require.Len(t, text.Marks, 1)
	assert.Equal(t, 0, text.Marks[0].Attrs.Indent)
	assert.Equal(t, "padding-left: 20px", text.Marks[0].Attrs.Style.String())

	assert.Equal(t, 2, NodeAttrsFromMap(Heading, map[string]interface{}{"style": "padding-left: 40px"}).Indent)
	assert.Equal(t, 0, NodeAttrsFromMap(Blockquote, map[string]interface{}{"style": "padding-left: 40px"}).Indent)
}

func TestNodeFromJSONErrors(t *testing.T) {
	for _, input := range []string{
		`{"type": "doc"`,
		`[1, 2]`,
		`{"type": "doc", "content": [{"type": "mystery"}]}`,
		`{"type": "doc", "content": [{"type": "paragraph", "content": [{"type": "text"}]}]}`,
		`{"type": "doc", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "x", "marks": [{"type": "blink"}]}]}]}`,
		`{"type": "doc", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "x", "marks": {"type": "bold"}}]}]}`,
	} {
		_, err := NodeFromJSON([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestNodeToJSON(t *testing.T) {
	d, err := NodeFromJSON([]byte(sampleDoc))
	require.NoError(t, err)

	data, err := json.Marshal(d.ToJSON())
	require.NoError(t, err)
	again, err := NodeFromJSON(data)
	require.NoError(t, err)
	assert.True(t, d.Eq(again), "%s != %s", d, again)

	// the indent level is written as an attribute of its own
	para := mustChild(t, d, 1).ToJSON()
	attrs := para["attrs"].(map[string]interface{})
	assert.Equal(t, 2, attrs["indent"])
	assert.Equal(t, "color: red", attrs["style"])
}
