package builder

import "github.com/shodgson/prosemirror-fontsize/style"

func fontSizeStyle(px int) string {
	return style.RenderFontSizeStyle(px)
}
