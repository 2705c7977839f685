package fontsize

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAggregateSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmstyle.fontsize")
	defer teardown()
	//
	d := doc(p("hello"), p("welcome"), h3("abc"))
	h := Aggregate(d.Node)
	assert.Equal(t, Histogram{14: 12, 18: 3}, h)
	size, ok := h.MostUsed()
	assert.True(t, ok)
	assert.Equal(t, 14, size)
	assert.Equal(t, 15, h.Total())
	assert.Equal(t, []Entry{{14, 12}, {18, 3}}, h.Entries())
}

func TestAggregateMarksAndAncestors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmstyle.fontsize")
	defer teardown()
	//
	d := doc(
		p("ab", textStyle(Attrs{"style": "font-size: 30px"}, "cde")),
		blockquote(Attrs{"style": "font-size: 20px"}, p("fg")),
		h1("h"),
	)
	assert.Equal(t, Histogram{14: 2, 30: 3, 20: 2, 24: 1}, Aggregate(d.Node))
}

func TestAggregateSkipsUnresolved(t *testing.T) {
	d := doc("loose", p("x"))
	assert.Equal(t, Histogram{14: 1}, Aggregate(d.Node))
}

func TestAggregateCountsGraphemes(t *testing.T) {
	d := doc(p("café"), p("👍🏽"))
	assert.Equal(t, Histogram{14: 5}, Aggregate(d.Node))
}

func TestMostUsedTiesAndEmpty(t *testing.T) {
	_, ok := Histogram{}.MostUsed()
	assert.False(t, ok)

	size, ok := Histogram{18: 5, 14: 5, 16: 2}.MostUsed()
	assert.True(t, ok)
	assert.Equal(t, 14, size)
}
