package ast

// Kind classifies the type of an AST node.
type Kind uint16

// Node kinds for the document root, block-level and inline-level elements.
const (
	KindDocument Kind = iota

	// Block-level nodes.
	KindParagraph
	KindHeading
	KindThematicBreak
	KindBlockQuote
	KindList
	KindListItem
	KindCodeBlock
	KindHTMLBlock
	KindDefinition
	KindTable
	KindFootnoteDefinition
	KindEmptyBlock

	// Inline-level nodes.
	KindText
	KindLineBreak
	KindCode
	KindHTML
	KindLink
	KindLinkReference
	KindImage
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindAutolink
	KindFootnoteReference
	KindEmptyInline

	kindCount
)

//nolint:gochecknoglobals // Lookup table for Kind.String.
var kindNames = [kindCount]string{
	KindDocument:           "document",
	KindParagraph:          "paragraph",
	KindHeading:            "heading",
	KindThematicBreak:      "thematic_break",
	KindBlockQuote:         "blockquote",
	KindList:               "list",
	KindListItem:           "list_item",
	KindCodeBlock:          "code_block",
	KindHTMLBlock:          "html_block",
	KindDefinition:         "definition",
	KindTable:              "table",
	KindFootnoteDefinition: "footnote_definition",
	KindEmptyBlock:         "empty_block",
	KindText:               "text",
	KindLineBreak:          "line_break",
	KindCode:               "code",
	KindHTML:               "html",
	KindLink:               "link",
	KindLinkReference:      "link_reference",
	KindImage:              "image",
	KindEmphasis:           "emphasis",
	KindStrong:             "strong",
	KindStrikethrough:      "strikethrough",
	KindAutolink:           "autolink",
	KindFootnoteReference:  "footnote_reference",
	KindEmptyInline:        "empty_inline",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// IsBlock reports whether the kind is a block-level kind (including the document and list items).
func (k Kind) IsBlock() bool {
	return k <= KindEmptyBlock
}

// IsInline reports whether the kind is an inline-level kind.
func (k Kind) IsInline() bool {
	return k >= KindText && k < kindCount
}
