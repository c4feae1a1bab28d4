package ast

// Text is literal text. Backslash escapes are kept as written; entities are decoded.
type Text struct {
	Value string
}

// LineBreak is a hard line break.
type LineBreak struct{}

// Code is a code span.
type Code struct {
	Value string
}

// HTML is raw inline HTML.
type HTML struct {
	Raw string
}

// Link is an inline link.
type Link struct {
	Destination string
	Title       string
	Children    []Inline
}

// LinkReference is a full, collapsed or shortcut reference link. It is
// resolved against the document's definitions at render time.
type LinkReference struct {
	Label string
	Text  []Inline
}

// Image is an inline image.
type Image struct {
	Destination string
	Title       string
	Alt         string
}

// Emphasis is emphasized content.
type Emphasis struct {
	Children []Inline
}

// Strong is strongly emphasized content.
type Strong struct {
	Children []Inline
}

// Strikethrough is struck-through content.
type Strikethrough struct {
	Children []Inline
}

// Autolink is a URI or email address in angle brackets.
type Autolink struct {
	URL string
}

// IsEmail reports whether the autolink is an email address.
func (a *Autolink) IsEmail() bool {
	for i := 0; i < len(a.URL); i++ {
		switch a.URL[i] {
		case ':':
			return false
		case '@':
			return true
		}
	}
	return false
}

// FootnoteReference refers to a footnote definition by label.
type FootnoteReference struct {
	Label string
}

// EmptyInline stands in for an inline whose rule is configured to be skipped.
type EmptyInline struct{}

func (*Text) Kind() Kind              { return KindText }
func (*LineBreak) Kind() Kind         { return KindLineBreak }
func (*Code) Kind() Kind              { return KindCode }
func (*HTML) Kind() Kind              { return KindHTML }
func (*Link) Kind() Kind              { return KindLink }
func (*LinkReference) Kind() Kind     { return KindLinkReference }
func (*Image) Kind() Kind             { return KindImage }
func (*Emphasis) Kind() Kind          { return KindEmphasis }
func (*Strong) Kind() Kind            { return KindStrong }
func (*Strikethrough) Kind() Kind     { return KindStrikethrough }
func (*Autolink) Kind() Kind          { return KindAutolink }
func (*FootnoteReference) Kind() Kind { return KindFootnoteReference }
func (*EmptyInline) Kind() Kind       { return KindEmptyInline }

func (*Text) isInline()              {}
func (*LineBreak) isInline()         {}
func (*Code) isInline()              {}
func (*HTML) isInline()              {}
func (*Link) isInline()              {}
func (*LinkReference) isInline()     {}
func (*Image) isInline()             {}
func (*Emphasis) isInline()          {}
func (*Strong) isInline()            {}
func (*Strikethrough) isInline()     {}
func (*Autolink) isInline()          {}
func (*FootnoteReference) isInline() {}
func (*EmptyInline) isInline()       {}
