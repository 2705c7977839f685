package transform

import (
	"fmt"

	"github.com/shodgson/prosemirror-fontsize/model"
)

// SetAttrsStep can be used to change the attributes of a node. The given
// attributes are merged into the existing ones; a nil value removes an
// attribute.
type SetAttrsStep struct {
	Pos   int
	Attrs map[string]interface{}
}

// NewSetAttrsStep is a constructor for SetAttrsStep
func NewSetAttrsStep(pos int, attrs map[string]interface{}) *SetAttrsStep {
	return &SetAttrsStep{Pos: pos, Attrs: attrs}
}

// Apply is a method of the Step interface.
func (s *SetAttrsStep) Apply(doc *model.Node) StepResult {
	target := doc.NodeAt(s.Pos)
	if target == nil {
		return Fail(fmt.Sprintf("No node at position %d", s.Pos))
	}
	if target.IsText() {
		return Fail("Cannot set attributes of a text node")
	}
	replaced, err := doc.ReplaceNodeAt(s.Pos, target.WithAttrs(target.Attrs.Merge(s.Attrs)))
	if err != nil {
		return Fail(err.Error())
	}
	return OK(replaced)
}

// Merge is a method of the Step interface.
func (s *SetAttrsStep) Merge(other Step) (Step, bool) {
	next, ok := other.(*SetAttrsStep)
	if !ok || next.Pos != s.Pos {
		return nil, false
	}
	attrs := make(map[string]interface{}, len(s.Attrs)+len(next.Attrs))
	for k, v := range s.Attrs {
		attrs[k] = v
	}
	for k, v := range next.Attrs {
		attrs[k] = v
	}
	return NewSetAttrsStep(s.Pos, attrs), true
}

// ToJSON is a method of the Step interface.
func (s *SetAttrsStep) ToJSON() map[string]interface{} {
	return map[string]interface{}{
		"stepType": "setAttrs",
		"pos":      s.Pos,
		"attrs":    s.Attrs,
	}
}

var _ Step = &SetAttrsStep{}
