package model_test

import (
	"testing"

	. "github.com/shodgson/prosemirror-fontsize/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeResolve(t *testing.T) {
	testDoc := doc(p("ab"), blockquote(p(em("cd"), "ef")))
	d := testDoc.Node
	p1 := mustChild(t, d, 0)
	blk := mustChild(t, d, 1)
	p2 := mustChild(t, blk, 0)

	type level struct {
		node  *Node
		start int
	}
	top := level{d, 0}
	inP1 := level{p1, 1}
	inBlk := level{blk, 5}
	inP2 := level{p2, 6}

	for _, ex := range []struct {
		pos    int
		path   []level
		offset int
	}{
		{0, []level{top}, 0},
		{1, []level{top, inP1}, 0},
		{2, []level{top, inP1}, 1},
		{3, []level{top, inP1}, 2},
		{4, []level{top}, 4},
		{5, []level{top, inBlk}, 0},
		{6, []level{top, inBlk, inP2}, 0},
		{8, []level{top, inBlk, inP2}, 2},
		{10, []level{top, inBlk, inP2}, 4},
		{11, []level{top, inBlk}, 6},
		{12, []level{top}, 12},
	} {
		rp, err := d.Resolve(ex.pos)
		require.NoError(t, err)
		assert.Equal(t, len(ex.path)-1, rp.Depth, "depth at %d", ex.pos)
		assert.Equal(t, ex.offset, rp.ParentOffset, "offset at %d", ex.pos)
		for depth, l := range ex.path {
			assert.Same(t, l.node, rp.Node(depth))
			assert.Equal(t, l.start, rp.Start(depth))
			if depth > 0 {
				before, err := rp.Before(depth)
				assert.NoError(t, err)
				assert.Equal(t, l.start-1, before)
			}
		}
		assert.Same(t, ex.path[len(ex.path)-1].node, rp.Parent())
		_, err = rp.Before(0)
		assert.Error(t, err)
		_, err = rp.Before(rp.Depth + 1)
		assert.Error(t, err)
	}

	rp, err := d.Resolve(7)
	require.NoError(t, err)
	assert.Equal(t, 1, rp.TextOffset())
	assert.Equal(t, 0, rp.Index(rp.Depth))
}

func TestResolveOutOfRange(t *testing.T) {
	d := doc(p("ab"))
	_, err := d.Resolve(-1)
	assert.Error(t, err)
	_, err = d.Resolve(5)
	assert.Error(t, err)
}

func TestResolvedPosMarks(t *testing.T) {
	d := doc(p(em("fo<a>o"), "<b>bar", link("li<c>nk")))

	a, err := d.Resolve(d.Tag["a"])
	require.NoError(t, err)
	require.Len(t, a.Marks(), 1)
	assert.Equal(t, MarkItalic, a.Marks()[0].Type)

	// at the end of an inclusive mark, the mark is kept
	b, err := d.Resolve(d.Tag["b"])
	require.NoError(t, err)
	require.Len(t, b.Marks(), 1)

	// a link does not extend past its end
	end, err := d.Resolve(d.Content.Size - 1)
	require.NoError(t, err)
	assert.Empty(t, end.Marks())

	c, err := d.Resolve(d.Tag["c"])
	require.NoError(t, err)
	require.Len(t, c.Marks(), 1)
	assert.Equal(t, MarkLink, c.Marks()[0].Type)
}

func TestAncestors(t *testing.T) {
	d := doc(table(tr(td(battrs{"style": "font-size: 12px"}, p("x<a>y")))))
	rp, err := d.Resolve(d.Tag["a"])
	require.NoError(t, err)

	kinds := []Kind{}
	for _, n := range rp.Ancestors() {
		kinds = append(kinds, n.Type)
	}
	assert.Equal(t, []Kind{Doc, Table, TableRow, TableCell, Paragraph}, kinds)

	depth, cell := rp.FindAncestor(func(n *Node) bool { return n.Type.IsTableCell() })
	assert.Equal(t, 3, depth)
	require.NotNil(t, cell)
	size, ok := cell.Attrs.Style.Get("font-size")
	assert.True(t, ok)
	assert.Equal(t, "12px", size)

	depth, none := rp.FindAncestor(func(n *Node) bool { return n.Type == Doc })
	assert.Equal(t, 0, depth)
	assert.Nil(t, none)
}
