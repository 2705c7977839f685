package fontsize

import (
	"fmt"
	"math"

	"github.com/shodgson/prosemirror-fontsize/model"
)

// Source tells which tier of the precedence chain a size was taken from.
type Source int

// Sources, in precedence order.
const (
	None Source = iota
	Mark
	Node
	Ancestor
	TagDefault
	Measured
)

var sourceNames = [...]string{"none", "mark", "node", "ancestor", "tag-default", "measured"}

func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return "unknown"
	}
	return sourceNames[s]
}

// Result is the outcome of a resolution.
type Result struct {
	// Size is the resolved size in pixels, 0 if nothing was detected.
	Size int
	// Source is the tier the size was taken from.
	Source Source
	// Detected is true if any tier yielded a size.
	Detected bool
	// Detail describes the provenance of the size, e.g. the style text of
	// the node it was found on, or "heading-1-24px" for a tag default.
	Detail string
}

var notDetected = Result{}

// Measurer reports the rendered font size of a position, if it is known.
type Measurer interface {
	MeasureFontSize(pos int) (float64, bool)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(pos int) (float64, bool)

// MeasureFontSize calls f(pos).
func (f MeasurerFunc) MeasureFontSize(pos int) (float64, bool) {
	return f(pos)
}

// Resolver resolves font sizes using a set of default size tables.
type Resolver struct {
	Defaults Defaults
}

// NewResolver creates a resolver with the given defaults.
func NewResolver(d Defaults) *Resolver {
	return &Resolver{Defaults: d}
}

var defaultResolver = NewResolver(DefaultDefaults())

// Resolve resolves the font size at pos with the default size tables.
func Resolve(doc *model.Node, pos int, m Measurer) Result {
	return defaultResolver.Resolve(doc, pos, m)
}

// ResolveSelection resolves the font size at the start of sel.
func (r *Resolver) ResolveSelection(doc *model.Node, sel model.Selection, m Measurer) Result {
	return r.Resolve(doc, sel.From(), m)
}

// Resolve resolves the font size at pos. m may be nil, in which case the
// measurement tier is skipped. A position outside the document is never
// detected.
func (r *Resolver) Resolve(doc *model.Node, pos int, m Measurer) Result {
	rp, err := doc.Resolve(pos)
	if err != nil {
		tracer().Debugf("cannot resolve font size: %v", err)
		return notDetected
	}
	if res, ok := r.resolve(rp.Ancestors(), rp.Marks()); ok {
		tracer().Debugf("font size at %d: %d (%s, %s)", pos, res.Size, res.Source, res.Detail)
		return res
	}
	if m == nil {
		return notDetected
	}
	px, ok := m.MeasureFontSize(pos)
	if !ok || math.IsNaN(px) || px <= 0 {
		tracer().Debugf("font size at %d: not detected", pos)
		return notDetected
	}
	return Result{
		Size:     int(math.Round(px)),
		Source:   Measured,
		Detected: true,
		Detail:   fmt.Sprintf("computed-%gpx", px),
	}
}

// resolve evaluates the tiers up to the tag defaults, for text with the
// given marks inside path (from the root down to the containing node).
func (r *Resolver) resolve(path []*model.Node, marks []*model.Mark) (Result, bool) {
	if res, ok := fromMarks(marks); ok {
		return res, true
	}
	return r.fromPath(path, marks)
}

// fromMarks reads the size of a textStyle mark, its style first.
func fromMarks(marks []*model.Mark) (Result, bool) {
	m := model.FindMark(marks, model.MarkTextStyle)
	if m == nil {
		return notDetected, false
	}
	if size, ok := m.Attrs.Style.FontSize(); ok {
		return Result{Size: size, Source: Mark, Detected: true, Detail: m.Attrs.Style.String()}, true
	}
	if size, ok := m.Attrs.Class.FontSize(); ok {
		return Result{Size: size, Source: Mark, Detected: true, Detail: m.Attrs.Class.String()}, true
	}
	return notDetected, false
}

func (r *Resolver) fromPath(path []*model.Node, marks []*model.Mark) (Result, bool) {
	inline, inlineFound := notDetected, false
	for _, m := range marks {
		if size, ok := r.Defaults.MarkSize(m.Type); ok {
			inline, inlineFound = tagResult(m.Type.String(), size), true
			break
		}
	}
	tag, tagFound := notDetected, false
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		if size, ok := node.Attrs.Style.FontSize(); ok {
			src := Ancestor
			if i == len(path)-1 {
				src = Node
			}
			return Result{Size: size, Source: src, Detected: true, Detail: node.Attrs.Style.String()}, true
		}
		if node.Type == model.Heading {
			if tagFound {
				return tag, true
			}
			level := node.Attrs.Level
			size, used := r.Defaults.HeadingSize(level)
			if level == 0 {
				level = used
			}
			return Result{
				Size:     size,
				Source:   TagDefault,
				Detected: true,
				Detail:   fmt.Sprintf("heading-%d-%dpx", level, size),
			}, true
		}
		if tagFound {
			continue
		}
		if size, ok := r.Defaults.TagSize(node.Type); ok {
			tag, tagFound = tagResult(node.Type.String(), size), true
		}
	}
	if inlineFound {
		return inline, true
	}
	return tag, tagFound
}

func tagResult(name string, size int) Result {
	return Result{
		Size:     size,
		Source:   TagDefault,
		Detected: true,
		Detail:   fmt.Sprintf("tag-%s-%dpx", name, size),
	}
}
