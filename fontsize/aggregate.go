package fontsize

import (
	"sort"

	"github.com/rivo/uniseg"
	"github.com/shodgson/prosemirror-fontsize/model"
)

// Histogram maps font sizes to the number of characters set in that size.
type Histogram map[int]int

// Entry is a histogram bucket.
type Entry struct {
	Size  int
	Count int
}

// Aggregate resolves the size of every text leaf of doc, without
// measurement, and counts the characters (grapheme clusters) per size.
// Leaves without a resolvable size are left out.
func (r *Resolver) Aggregate(doc *model.Node) Histogram {
	h := Histogram{}
	var walk func(node *model.Node, path []*model.Node)
	walk = func(node *model.Node, path []*model.Node) {
		node.Content.ForEach(func(child *model.Node, _, _ int) {
			if !child.IsText() {
				walk(child, append(path[:len(path):len(path)], child))
				return
			}
			if child.Text == "" {
				return
			}
			res, ok := r.resolve(path, child.Marks)
			if !ok {
				return
			}
			h[res.Size] += uniseg.GraphemeClusterCount(child.Text)
		})
	}
	walk(doc, []*model.Node{doc})
	tracer().Debugf("aggregated %d sizes over %d characters", len(h), h.Total())
	return h
}

// Aggregate aggregates doc with the default size tables.
func Aggregate(doc *model.Node) Histogram {
	return defaultResolver.Aggregate(doc)
}

// Sizes returns the sizes present in the histogram, ascending.
func (h Histogram) Sizes() []int {
	sizes := make([]int, 0, len(h))
	for size := range h {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// MostUsed returns the size with the most characters. Ties go to the
// smallest size. An empty histogram reports false.
func (h Histogram) MostUsed() (int, bool) {
	best, max := 0, 0
	for _, size := range h.Sizes() {
		if h[size] > max {
			best, max = size, h[size]
		}
	}
	return best, max > 0
}

// Entries returns the buckets of the histogram, ascending by size.
func (h Histogram) Entries() []Entry {
	entries := make([]Entry, 0, len(h))
	for _, size := range h.Sizes() {
		entries = append(entries, Entry{Size: size, Count: h[size]})
	}
	return entries
}

// Total is the number of characters counted.
func (h Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}
