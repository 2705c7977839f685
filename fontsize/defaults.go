package fontsize

import "github.com/shodgson/prosemirror-fontsize/model"

// Defaults holds the default font sizes of node kinds, in pixels.
type Defaults struct {
	// Headings maps heading levels to sizes.
	Headings map[int]int `yaml:"headings"`
	// FallbackLevel is used for headings with a missing or unknown level.
	FallbackLevel int `yaml:"fallback_level"`
	// Body is the size of body text kinds (paragraphs, lists, cells, ...).
	Body int `yaml:"body"`
}

// DefaultDefaults returns the size tables of the editor's stylesheet.
func DefaultDefaults() Defaults {
	return Defaults{
		Headings: map[int]int{
			1: 24,
			2: 20,
			3: 18,
			4: 16,
			5: 16,
			6: 14,
		},
		FallbackLevel: 3,
		Body:          14,
	}
}

// HeadingSize returns the size of a heading with the given level, together
// with the level actually used for the lookup.
func (d Defaults) HeadingSize(level int) (int, int) {
	if size, ok := d.Headings[level]; ok && level > 0 {
		return size, level
	}
	return d.Headings[d.FallbackLevel], d.FallbackLevel
}

// TagSize returns the default size of a node kind other than a heading.
// Kinds without a default of their own report false.
func (d Defaults) TagSize(k model.Kind) (int, bool) {
	switch k {
	case model.Paragraph, model.BulletList, model.OrderedList, model.ListItem,
		model.Blockquote, model.CodeBlock, model.TableCell, model.TableHeader,
		model.Text:
		return d.Body, true
	case model.Heading:
		size, _ := d.HeadingSize(0)
		return size, true
	case model.Doc, model.Table, model.TableRow, model.HardBreak, model.Image,
		model.HorizontalRule:
		return 0, false
	}
	return 0, false
}

// HasTagDefault is true if nodes of kind k have a default size.
func (d Defaults) HasTagDefault(k model.Kind) bool {
	_, ok := d.TagSize(k)
	return ok
}

// MarkSize returns the default size of text carrying a mark of kind k.
func (d Defaults) MarkSize(k model.MarkKind) (int, bool) {
	switch k {
	case model.MarkCode, model.MarkBold:
		return d.Body, true
	case model.MarkLink, model.MarkItalic, model.MarkUnderline, model.MarkStrike,
		model.MarkHighlight, model.MarkTextStyle:
		return 0, false
	}
	return 0, false
}
