package transform

import (
	"fmt"

	"github.com/shodgson/prosemirror-fontsize/model"
)

type mapFn func(node, parent *model.Node) *model.Node

// mapInline rebuilds node, passing the inline content between from and to
// (relative to the start of node's content) through f. Text nodes crossing
// a boundary are split at the boundary.
func mapInline(node *model.Node, from, to int, f mapFn) *model.Node {
	if node.Content.Size == 0 {
		return node
	}
	mapped := make([]*model.Node, 0, node.ChildCount())
	node.Content.ForEach(func(child *model.Node, offset, _ int) {
		size := child.NodeSize()
		end := offset + size
		switch {
		case end <= from || offset >= to:
			mapped = append(mapped, child)
		case child.IsText():
			start, stop := from-offset, to-offset
			if start < 0 {
				start = 0
			}
			if stop > size {
				stop = size
			}
			if start > 0 {
				mapped = append(mapped, child.Cut(0, start))
			}
			mapped = append(mapped, f(child.Cut(start, stop), node))
			if stop < size {
				mapped = append(mapped, child.Cut(stop))
			}
		case child.IsInline():
			mapped = append(mapped, f(child, node))
		default:
			mapped = append(mapped, mapInline(child, from-offset-1, to-offset-1, f))
		}
	})
	return node.Copy(model.NewFragment(mapped))
}

func checkRange(doc *model.Node, from, to int) error {
	if from < 0 || to > doc.Content.Size || from > to {
		return fmt.Errorf("Invalid range %d-%d in document of size %d", from, to, doc.Content.Size)
	}
	return nil
}

// AddMarkStep adds a mark to all inline content between two positions.
type AddMarkStep struct {
	From int
	To   int
	Mark *model.Mark
}

// NewAddMarkStep is the constructor for AddMarkStep.
func NewAddMarkStep(from, to int, mark *model.Mark) *AddMarkStep {
	return &AddMarkStep{From: from, To: to, Mark: mark}
}

// Apply is a method of the Step interface.
func (s *AddMarkStep) Apply(doc *model.Node) StepResult {
	if err := checkRange(doc, s.From, s.To); err != nil {
		return Fail(err.Error())
	}
	return OK(mapInline(doc, s.From, s.To, func(node, parent *model.Node) *model.Node {
		if !parent.Type.AllowsMarks() {
			return node
		}
		return node.Mark(s.Mark.AddToSet(node.Marks))
	}))
}

// Merge is a method of the Step interface.
func (s *AddMarkStep) Merge(other Step) (Step, bool) {
	next, ok := other.(*AddMarkStep)
	if !ok || !next.Mark.Eq(s.Mark) || s.From > next.To || s.To < next.From {
		return nil, false
	}
	return NewAddMarkStep(minInt(s.From, next.From), maxInt(s.To, next.To), s.Mark), true
}

// ToJSON is a method of the Step interface.
func (s *AddMarkStep) ToJSON() map[string]interface{} {
	return map[string]interface{}{
		"stepType": "addMark",
		"mark":     s.Mark.ToJSON(),
		"from":     s.From,
		"to":       s.To,
	}
}

var _ Step = &AddMarkStep{}

// RemoveMarkStep removes marks of a given kind from all inline content
// between two positions, whatever their attributes.
type RemoveMarkStep struct {
	From int
	To   int
	Type model.MarkKind
}

// NewRemoveMarkStep is the constructor for RemoveMarkStep.
func NewRemoveMarkStep(from, to int, typ model.MarkKind) *RemoveMarkStep {
	return &RemoveMarkStep{From: from, To: to, Type: typ}
}

// Apply is a method of the Step interface.
func (s *RemoveMarkStep) Apply(doc *model.Node) StepResult {
	if err := checkRange(doc, s.From, s.To); err != nil {
		return Fail(err.Error())
	}
	return OK(mapInline(doc, s.From, s.To, func(node, _ *model.Node) *model.Node {
		return node.Mark(model.RemoveKindFromSet(node.Marks, s.Type))
	}))
}

// Merge is a method of the Step interface.
func (s *RemoveMarkStep) Merge(other Step) (Step, bool) {
	next, ok := other.(*RemoveMarkStep)
	if !ok || next.Type != s.Type || s.From > next.To || s.To < next.From {
		return nil, false
	}
	return NewRemoveMarkStep(minInt(s.From, next.From), maxInt(s.To, next.To), s.Type), true
}

// ToJSON is a method of the Step interface.
func (s *RemoveMarkStep) ToJSON() map[string]interface{} {
	return map[string]interface{}{
		"stepType": "removeMark",
		"mark":     map[string]interface{}{"type": s.Type.String()},
		"from":     s.From,
		"to":       s.To,
	}
}

var _ Step = &RemoveMarkStep{}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
