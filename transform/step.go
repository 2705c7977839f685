// Package transform implements document transforms, which are used by the
// editor to treat changes as first-class values, which can be saved, shared,
// and reasoned about.
//
// The steps of this package change attributes and marks only. They never
// change the structure of a document, so positions stay valid across them.
package transform

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/shodgson/prosemirror-fontsize/model"
)

// tracer traces with key 'pmstyle.transform'.
func tracer() tracing.Trace {
	return tracing.Select("pmstyle.transform")
}

// Step objects represent an atomic change. It generally applies only to the
// document it was created for, since the positions stored in it will only make
// sense for that document.
type Step interface {
	// Applies this step to the given document, returning a result
	// object that either indicates failure, if the step can not be
	// applied to this document, or indicates success by containing a
	// transformed document.
	Apply(doc *model.Node) StepResult

	// Merge tries to merge this step with another one, to be applied directly
	// after it. Returns the merged step when possible, false if the steps
	// can't be merged.
	Merge(other Step) (Step, bool)

	// ToJSON creates a JSON-serializeable representation of this step, in
	// the form the editor applies it.
	ToJSON() map[string]interface{}
}

// StepResult is the result of applying a step. Contains either a new document
// or a failure value.
type StepResult struct {
	// The transformed document.
	Doc *model.Node
	// Text providing information about a failed step.
	Failed string
}

// OK creates a successful step result.
func OK(doc *model.Node) StepResult {
	return StepResult{Doc: doc}
}

// Fail creates a failed step result.
func Fail(message string) StepResult {
	tracer().Debugf("step failed: %s", message)
	return StepResult{Failed: message}
}
