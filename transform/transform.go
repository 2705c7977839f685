package transform

import (
	"fmt"

	"github.com/shodgson/prosemirror-fontsize/model"
)

// Transform is an abstraction for building up and tracking an array of
// steps representing a document transformation.
type Transform struct {
	// The current document (the result of applying the steps in the
	// transform).
	Doc *model.Node
	// The steps in this transform.
	Steps []Step
	// The documents before each of the steps.
	Docs []*model.Node
}

// NewTransform creates a transform that starts with the given document.
func NewTransform(doc *model.Node) *Transform {
	return &Transform{Doc: doc}
}

// Before returns the starting document.
func (tr *Transform) Before() *model.Node {
	if len(tr.Docs) > 0 {
		return tr.Docs[0]
	}
	return tr.Doc
}

// Step applies a new step in this transform, saving the result. Returns an
// error when the step fails.
func (tr *Transform) Step(step Step) error {
	result := tr.MaybeStep(step)
	if result.Failed != "" {
		return fmt.Errorf("step %v failed: %s", step.ToJSON()["stepType"], result.Failed)
	}
	return nil
}

// MaybeStep tries to apply a step in this transformation, ignoring it if it
// fails. Returns the step result.
func (tr *Transform) MaybeStep(step Step) StepResult {
	result := step.Apply(tr.Doc)
	if result.Failed == "" {
		tr.addStep(step, result.Doc)
	}
	return result
}

// DocChanged is true when the document has been changed (when there are any
// steps).
func (tr *Transform) DocChanged() bool {
	return len(tr.Steps) > 0
}

func (tr *Transform) addStep(step Step, doc *model.Node) {
	tr.Docs = append(tr.Docs, tr.Doc)
	tr.Steps = append(tr.Steps, step)
	tr.Doc = doc
}

// AddMark adds the given mark to the inline content between from and to.
func (tr *Transform) AddMark(from, to int, mark *model.Mark) error {
	return tr.Step(NewAddMarkStep(from, to, mark))
}

// RemoveMark removes marks of the given kind from the inline content
// between from and to.
func (tr *Transform) RemoveMark(from, to int, typ model.MarkKind) error {
	return tr.Step(NewRemoveMarkStep(from, to, typ))
}

// SetNodeAttrs changes the attributes of the node at pos.
func (tr *Transform) SetNodeAttrs(pos int, attrs map[string]interface{}) error {
	return tr.Step(NewSetAttrsStep(pos, attrs))
}

// StepsJSON returns the JSON representation of the steps, in order.
func (tr *Transform) StepsJSON() []map[string]interface{} {
	steps := make([]map[string]interface{}, len(tr.Steps))
	for i, step := range tr.Steps {
		steps[i] = step.ToJSON()
	}
	return steps
}
