package model

// Selection is a text selection in a document. A selection whose anchor and
// head coincide is collapsed (a cursor).
type Selection struct {
	Anchor int
	Head   int
}

// Cursor creates a collapsed selection.
func Cursor(pos int) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// From is the lower bound of the selection.
func (s Selection) From() int {
	return minInt(s.Anchor, s.Head)
}

// To is the upper bound of the selection.
func (s Selection) To() int {
	return maxInt(s.Anchor, s.Head)
}

// Empty is true for a collapsed selection.
func (s Selection) Empty() bool {
	return s.Anchor == s.Head
}
