package model_test

import (
	"github.com/shodgson/prosemirror-fontsize/test/builder"
)

type battrs = builder.Attrs

var (
	doc        = builder.Doc
	blockquote = builder.Blockquote
	h1         = builder.H1
	h2         = builder.H2
	heading    = builder.Heading
	p          = builder.P
	pre        = builder.Pre
	em         = builder.Em
	strong     = builder.Strong
	textStyle  = builder.TextStyle
	ul         = builder.Ul
	li         = builder.Li
	img        = builder.Img
	br         = builder.Br
	code       = builder.Code
	link       = builder.A
	table      = builder.Table
	tr         = builder.Tr
	td         = builder.Td
	th         = builder.Th
)
