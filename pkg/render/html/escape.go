package html

import (
	"bytes"
	"strings"
)

//nolint:gochecknoglobals // Shared, immutable replacer.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape replaces the five HTML special characters.
func escape(s string) string {
	return escaper.Replace(s)
}

type attr struct {
	key, value string
}

// open writes a start tag; attribute values are escaped.
func open(buf *bytes.Buffer, tag string, attrs ...attr) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.key)
		buf.WriteString(`="`)
		buf.WriteString(escape(a.value))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
}

func closeTag(buf *bytes.Buffer, tag string) {
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

// element writes an element with no content, such as <hr></hr>.
func element(buf *bytes.Buffer, tag string, attrs ...attr) {
	open(buf, tag, attrs...)
	closeTag(buf, tag)
}
