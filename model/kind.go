package model

// Kind is the type of a node. The set of kinds is closed: it mirrors the node
// types of the editor schema the document comes from, and ingesting a node of
// any other type is an error.
type Kind int

// Node kinds.
const (
	Doc Kind = iota
	Paragraph
	Heading
	BulletList
	OrderedList
	ListItem
	Blockquote
	CodeBlock
	Table
	TableRow
	TableCell
	TableHeader
	HardBreak
	Image
	HorizontalRule
	Text
	kindCount
)

// Names of the node kinds, as used by the editor's JSON.
var kindNames = [kindCount]string{
	Doc:            "doc",
	Paragraph:      "paragraph",
	Heading:        "heading",
	BulletList:     "bulletList",
	OrderedList:    "orderedList",
	ListItem:       "listItem",
	Blockquote:     "blockquote",
	CodeBlock:      "codeBlock",
	Table:          "table",
	TableRow:       "tableRow",
	TableCell:      "tableCell",
	TableHeader:    "tableHeader",
	HardBreak:      "hardBreak",
	Image:          "image",
	HorizontalRule: "horizontalRule",
	Text:           "text",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// KindByName looks up a kind by its editor type name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsLeaf is true for kinds that never have content.
func (k Kind) IsLeaf() bool {
	switch k {
	case Text, HardBreak, Image, HorizontalRule:
		return true
	}
	return false
}

// IsInline is true for kinds that live inside textblocks.
func (k Kind) IsInline() bool {
	switch k {
	case Text, HardBreak, Image:
		return true
	}
	return false
}

// IsTextblock is true for block kinds holding inline content.
func (k Kind) IsTextblock() bool {
	switch k {
	case Paragraph, Heading, CodeBlock:
		return true
	}
	return false
}

// IsTableCell is true for both body and header cells.
func (k Kind) IsTableCell() bool {
	return k == TableCell || k == TableHeader
}

// IsIndentable is true for the blocks that carry an indent level.
func (k Kind) IsIndentable() bool {
	switch k {
	case Paragraph, Heading, BulletList, OrderedList:
		return true
	}
	return false
}

// AllowsMarks is false for kinds whose inline content must stay unmarked.
func (k Kind) AllowsMarks() bool {
	return k != CodeBlock
}

// MarkKind is the type of a mark. Like Kind, the set is closed.
type MarkKind int

// Mark kinds. The order is the rank of a mark in a mark set.
const (
	MarkLink MarkKind = iota
	MarkBold
	MarkItalic
	MarkUnderline
	MarkStrike
	MarkCode
	MarkHighlight
	MarkTextStyle
	markKindCount
)

var markKindNames = [markKindCount]string{
	MarkLink:      "link",
	MarkBold:      "bold",
	MarkItalic:    "italic",
	MarkUnderline: "underline",
	MarkStrike:    "strike",
	MarkCode:      "code",
	MarkHighlight: "highlight",
	MarkTextStyle: "textStyle",
}

func (k MarkKind) String() string {
	if k < 0 || k >= markKindCount {
		return "unknown"
	}
	return markKindNames[k]
}

// MarkKindByName looks up a mark kind by its editor type name.
func MarkKindByName(name string) (MarkKind, bool) {
	for k, n := range markKindNames {
		if n == name {
			return MarkKind(k), true
		}
	}
	return 0, false
}

// Inclusive tells whether a mark extends to text typed at its end.
func (k MarkKind) Inclusive() bool {
	return k != MarkLink
}
