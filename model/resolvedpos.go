package model

import (
	"errors"
	"fmt"
	"sync"
)

// step is one level of a resolved path: a node, the index of the child the
// position lies in (or before), and the absolute position of that child.
type step struct {
	node   *Node
	index  int
	offset int
}

// ResolvedPos is a document position together with the nodes around it.
//
// Depth counts the levels from the root to the node the position points
// into: 0 for positions directly in the document, 1 inside a top-level
// block, and so on. Text nodes are flat, so a position inside text has the
// textblock as its parent.
type ResolvedPos struct {
	// Pos is the resolved position.
	Pos int
	// Depth is the level of the parent node.
	Depth int
	// ParentOffset is the offset of Pos into the parent's content.
	ParentOffset int

	path []step
}

// Node returns the ancestor at the given depth; Node(r.Depth) is the parent.
func (r *ResolvedPos) Node(depth int) *Node {
	return r.path[depth].node
}

// Parent returns the node the position points into.
func (r *ResolvedPos) Parent() *Node {
	return r.path[r.Depth].node
}

// Index returns the index of the position into the ancestor at depth.
func (r *ResolvedPos) Index(depth int) int {
	return r.path[depth].index
}

// Start returns the position at the start of the content of the ancestor at
// depth.
func (r *ResolvedPos) Start(depth int) int {
	if depth == 0 {
		return 0
	}
	return r.path[depth-1].offset + 1
}

// Before returns the position directly before the ancestor at depth. The
// root has no such position.
func (r *ResolvedPos) Before(depth int) (int, error) {
	if depth <= 0 {
		return 0, errors.New("There is no position before the top-level node")
	}
	if depth > r.Depth {
		return 0, fmt.Errorf("No node at depth %d", depth)
	}
	return r.Start(depth) - 1, nil
}

// TextOffset is the distance from the start of the text node the position
// points into, 0 between nodes.
func (r *ResolvedPos) TextOffset() int {
	return r.Pos - r.path[len(r.path)-1].offset
}

// Marks returns the marks in effect at the position. Inside text these are
// the marks of the text node. At a boundary the node before wins, minus
// non-inclusive marks the node after does not share; at the start of the
// parent the node after is used.
func (r *ResolvedPos) Marks() []*Mark {
	parent := r.Parent()
	if parent.Content.Size == 0 {
		return NoMarks
	}
	index := r.Index(r.Depth)
	if r.TextOffset() > 0 {
		if child := parent.MaybeChild(index); child != nil {
			return child.Marks
		}
		return NoMarks
	}
	main, other := parent.MaybeChild(index-1), parent.MaybeChild(index)
	if main == nil {
		main, other = other, nil
	}
	marks := main.Marks
	for _, m := range main.Marks {
		if !m.Type.Inclusive() && (other == nil || !m.IsInSet(other.Marks)) {
			marks = m.RemoveFromSet(marks)
		}
	}
	return marks
}

// Ancestors returns the nodes the position points into, from the root down to
// the parent.
func (r *ResolvedPos) Ancestors() []*Node {
	nodes := make([]*Node, r.Depth+1)
	for d := range nodes {
		nodes[d] = r.path[d].node
	}
	return nodes
}

// FindAncestor returns the depth and node of the closest ancestor (the parent
// included, the root excluded) satisfying pred.
func (r *ResolvedPos) FindAncestor(pred func(*Node) bool) (int, *Node) {
	for d := r.Depth; d > 0; d-- {
		if node := r.path[d].node; pred(node) {
			return d, node
		}
	}
	return 0, nil
}

func resolvePos(doc *Node, pos int) (*ResolvedPos, error) {
	if pos < 0 || pos > doc.Content.Size {
		return nil, fmt.Errorf("Position %d out of range", pos)
	}
	var path []step
	start, rel := 0, pos
	node := doc
	for {
		index, offset, err := node.Content.findIndex(rel)
		if err != nil {
			return nil, err
		}
		path = append(path, step{node: node, index: index, offset: start + offset})
		rem := rel - offset
		if rem == 0 {
			break
		}
		if node = node.MaybeChild(index); node == nil {
			return nil, fmt.Errorf("Position %d out of range", pos)
		}
		if node.IsText() {
			break
		}
		rel = rem - 1
		start += offset + 1
	}
	return &ResolvedPos{Pos: pos, Depth: len(path) - 1, ParentOffset: rel, path: path}, nil
}

// Recently resolved positions.
const resolveCacheSize = 12

var resolveCache struct {
	sync.Mutex
	entries [resolveCacheSize]struct {
		doc *Node
		pos *ResolvedPos
	}
	next int
}

func resolvePosCached(doc *Node, pos int) (*ResolvedPos, error) {
	resolveCache.Lock()
	defer resolveCache.Unlock()
	for _, e := range resolveCache.entries {
		if e.doc == doc && e.pos.Pos == pos {
			return e.pos, nil
		}
	}
	rp, err := resolvePos(doc, pos)
	if err != nil {
		return nil, err
	}
	e := &resolveCache.entries[resolveCache.next]
	e.doc, e.pos = doc, rp
	resolveCache.next = (resolveCache.next + 1) % resolveCacheSize
	return rp, nil
}
