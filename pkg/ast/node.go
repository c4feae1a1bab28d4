// Package ast defines the typed document tree produced by the parser.
//
// The tree is owned top-down: a parent exclusively owns its children and no
// node refers back to its parent. Consumers that need to rewrite a tree build
// a new one.
package ast

// Node is implemented by every element of the tree.
type Node interface {
	Kind() Kind
}

// Block is a block-level node.
type Block interface {
	Node
	isBlock()
}

// Inline is an inline-level node.
type Inline interface {
	Node
	isInline()
}

// Document is the root of a parsed Markdown source.
type Document struct {
	Blocks []Block
}

// Kind implements Node.
func (*Document) Kind() Kind { return KindDocument }

// Paragraph is a run of text lines.
type Paragraph struct {
	Content []Inline
}

// HeadingStyle distinguishes ATX headings from Setext headings.
type HeadingStyle uint8

// Heading styles.
const (
	HeadingATX HeadingStyle = iota
	HeadingSetext
)

// String returns the style name.
func (s HeadingStyle) String() string {
	if s == HeadingSetext {
		return "setext"
	}
	return "atx"
}

// Heading is an ATX heading (level 1-6) or a Setext heading (level 1-2).
type Heading struct {
	Style   HeadingStyle
	Level   int
	Content []Inline
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct{}

// BlockQuote holds the blocks parsed from the quoted lines.
type BlockQuote struct {
	Blocks []Block
}

// Bullet is the marker character of a bullet list.
type Bullet uint8

// Bullet markers.
const (
	BulletDash Bullet = iota
	BulletStar
	BulletPlus
)

// Marker returns the marker character.
func (b Bullet) Marker() string {
	switch b {
	case BulletStar:
		return "*"
	case BulletPlus:
		return "+"
	default:
		return "-"
	}
}

// String returns the bullet name.
func (b Bullet) String() string {
	switch b {
	case BulletStar:
		return "star"
	case BulletPlus:
		return "plus"
	default:
		return "dash"
	}
}

// ListKind describes an ordered or a bullet list.
type ListKind struct {
	Ordered bool
	// Start is the number of the first item of an ordered list.
	Start uint64
	// Bullet is the marker of a bullet list.
	Bullet Bullet
}

// Compatible reports whether an item of kind other may continue a list of kind k.
func (k ListKind) Compatible(other ListKind) bool {
	if k.Ordered != other.Ordered {
		return false
	}
	return k.Ordered || k.Bullet == other.Bullet
}

// List is a sequence of items sharing the kind of the first item.
type List struct {
	Type  ListKind
	Items []*ListItem
}

// TaskState is the checkbox state of a task list item.
type TaskState uint8

// Task states.
const (
	TaskNone TaskState = iota
	TaskIncomplete
	TaskComplete
)

// String returns the state name.
func (t TaskState) String() string {
	switch t {
	case TaskIncomplete:
		return "incomplete"
	case TaskComplete:
		return "complete"
	default:
		return "none"
	}
}

// ListItem holds the blocks of one list item.
type ListItem struct {
	Task   TaskState
	Blocks []Block
}

// CodeBlock is an indented or fenced code block.
type CodeBlock struct {
	Fenced bool
	// Info is the info string of a fenced block, empty when absent.
	Info    string
	Literal string
}

// HTMLBlock is a raw HTML block.
type HTMLBlock struct {
	Raw string
}

// Definition is a link reference definition.
type Definition struct {
	Label       string
	Destination string
	Title       string
}

// Alignment is the alignment of a table column.
type Alignment uint8

// Column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// Cell is the inline content of a table cell.
type Cell []Inline

// Row is a table row. Every row of a Table has len(Alignments) cells.
type Row []Cell

// Table is a GFM table. Rows[0] is the header row.
type Table struct {
	Alignments []Alignment
	Rows       []Row
}

// FootnoteDefinition is the body of a footnote.
type FootnoteDefinition struct {
	Label  string
	Blocks []Block
}

// EmptyBlock stands in for a block whose rule is configured to be skipped.
type EmptyBlock struct{}

func (*Paragraph) Kind() Kind          { return KindParagraph }
func (*Heading) Kind() Kind            { return KindHeading }
func (*ThematicBreak) Kind() Kind      { return KindThematicBreak }
func (*BlockQuote) Kind() Kind         { return KindBlockQuote }
func (*List) Kind() Kind               { return KindList }
func (*ListItem) Kind() Kind           { return KindListItem }
func (*CodeBlock) Kind() Kind          { return KindCodeBlock }
func (*HTMLBlock) Kind() Kind          { return KindHTMLBlock }
func (*Definition) Kind() Kind         { return KindDefinition }
func (*Table) Kind() Kind              { return KindTable }
func (*FootnoteDefinition) Kind() Kind { return KindFootnoteDefinition }
func (*EmptyBlock) Kind() Kind         { return KindEmptyBlock }

func (*Paragraph) isBlock()          {}
func (*Heading) isBlock()            {}
func (*ThematicBreak) isBlock()      {}
func (*BlockQuote) isBlock()         {}
func (*List) isBlock()               {}
func (*CodeBlock) isBlock()          {}
func (*HTMLBlock) isBlock()          {}
func (*Definition) isBlock()         {}
func (*Table) isBlock()              {}
func (*FootnoteDefinition) isBlock() {}
func (*EmptyBlock) isBlock()         {}
