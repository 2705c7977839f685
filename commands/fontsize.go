package commands

import (
	"github.com/shodgson/prosemirror-fontsize/fontsize"
	"github.com/shodgson/prosemirror-fontsize/model"
	"github.com/shodgson/prosemirror-fontsize/style"
	"github.com/shodgson/prosemirror-fontsize/transform"
)

// SetFontSize sets the font size of a selection, in pixels.
//
// For a collapsed selection, the size is set on the style of the block
// containing the cursor, provided the block kind has a default size. Other
// style declarations of the block are kept. For a range, textStyle marks in
// the range are replaced by one carrying the size.
func SetFontSize(doc *model.Node, sel model.Selection, size int) ([]transform.Step, bool) {
	if size <= 0 {
		return nil, false
	}
	if !sel.Empty() {
		mark := model.NewMark(model.MarkTextStyle, model.AttrsFromMap(map[string]interface{}{
			model.AttrStyle: style.RenderFontSizeStyle(size),
		}))
		return []transform.Step{
			transform.NewRemoveMarkStep(sel.From(), sel.To(), model.MarkTextStyle),
			transform.NewAddMarkStep(sel.From(), sel.To(), mark),
		}, true
	}
	rp, err := doc.Resolve(sel.From())
	if err != nil || rp.Depth == 0 {
		tracer().Debugf("no block to size at %d", sel.From())
		return nil, false
	}
	block := rp.Parent()
	if !sizeable(block.Type) {
		tracer().Debugf("cannot set font size of %s", block.Type)
		return nil, false
	}
	before, err := rp.Before(rp.Depth)
	if err != nil {
		return nil, false
	}
	decls := block.Attrs.Style.Set("font-size", style.RenderPixels(size))
	return []transform.Step{
		transform.NewSetAttrsStep(before, map[string]interface{}{model.AttrStyle: decls.String()}),
	}, true
}

func sizeable(k model.Kind) bool {
	return fontsize.DefaultDefaults().HasTagDefault(k)
}
