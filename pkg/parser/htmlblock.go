package parser

import (
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// rawTextTags hold content that runs to a matching closing tag.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rawTextTags = []string{"script", "pre", "style"}

// blockTags start an HTML block that runs to the next blank line.
//
//nolint:gochecknoglobals // Read-only lookup table.
var blockTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "base": {}, "basefont": {}, "blockquote": {},
	"body": {}, "caption": {}, "center": {}, "col": {}, "colgroup": {}, "dd": {},
	"details": {}, "dialog": {}, "dir": {}, "div": {}, "dl": {}, "dt": {},
	"fieldset": {}, "figcaption": {}, "figure": {}, "footer": {}, "form": {}, "frame": {},
	"frameset": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {},
	"h6": {}, "head": {}, "header": {}, "hr": {}, "html": {}, "iframe": {},
	"legend": {}, "li": {}, "link": {}, "main": {}, "menu": {}, "menuitem": {},
	"nav": {}, "noframes": {}, "ol": {}, "optgroup": {}, "option": {}, "p": {},
	"param": {}, "section": {}, "source": {}, "summary": {}, "table": {}, "tbody": {},
	"td": {}, "tfoot": {}, "th": {}, "thead": {}, "title": {}, "tr": {},
	"track": {}, "ul": {},
}

// htmlBlock parses a raw HTML block. The seven start conditions are tried in
// order; the first that matches decides where the block ends. Up to three
// leading spaces are not part of the raw text.
func (s *state) htmlBlock(in string) (string, ast.Block, bool) {
	p := skipIndent(in)
	if !strings.HasPrefix(p, "<") {
		return in, nil, false
	}

	for _, kind := range []func(string) (string, bool){
		htmlRawText,
		htmlComment,
		htmlProcessing,
		htmlDeclaration,
		htmlCDATA,
		htmlBlockTag,
		htmlAnyTag,
	} {
		if rest, ok := kind(p); ok {
			raw := consumed(p, rest)
			return skipBlankTail(rest), &ast.HTMLBlock{Raw: raw}, true
		}
	}
	return in, nil, false
}

// skipBlankTail consumes the rest of the current line if it is blank.
func skipBlankTail(in string) string {
	if rest, ok := blankLine(in); ok {
		return rest
	}
	return in
}

func rawTextTag(in string) (string, bool) {
	for _, tag := range rawTextTags {
		if hasPrefixFold(in, tag) {
			return in[len(tag):], true
		}
	}
	return in, false
}

// htmlRawText: <script>, <pre> or <style> up to a closing </script>, </pre>
// or </style>.
func htmlRawText(in string) (string, bool) {
	p, ok := rawTextTag(in[1:])
	if !ok {
		return in, false
	}
	switch {
	case strings.HasPrefix(p, " "), strings.HasPrefix(p, ">"):
		p = p[1:]
	default:
		if p, ok = eol(p); !ok {
			return in, false
		}
	}
	for p != "" {
		if strings.HasPrefix(p, "</") {
			if after, ok := rawTextTag(p[2:]); ok && strings.HasPrefix(after, ">") {
				return after[1:], true
			}
		}
		p = p[1:]
	}
	return in, false
}

func htmlComment(in string) (string, bool) {
	if !strings.HasPrefix(in, "<!--") {
		return in, false
	}
	return scanTo(in[4:], "-->")
}

func htmlProcessing(in string) (string, bool) {
	if !strings.HasPrefix(in, "<?") {
		return in, false
	}
	return scanTo(in[2:], "?>")
}

func htmlDeclaration(in string) (string, bool) {
	if len(in) < 3 || in[1] != '!' || in[2] < 'A' || in[2] > 'Z' {
		return in, false
	}
	return scanTo(in[3:], ">")
}

func htmlCDATA(in string) (string, bool) {
	if !strings.HasPrefix(in, "<![CDATA[") {
		return in, false
	}
	return scanTo(in[9:], "]]>")
}

// htmlBlockTag: an opening or closing block-level tag, up to the line before
// the next blank line or the end of input.
func htmlBlockTag(in string) (string, bool) {
	p := strings.TrimPrefix(in[1:], "/")
	p, name, ok := htmlTagName(p)
	if !ok {
		return in, false
	}
	if _, known := blockTags[strings.ToLower(name)]; !known {
		return in, false
	}
	switch {
	case strings.HasPrefix(p, " "), strings.HasPrefix(p, ">"):
	case strings.HasPrefix(p, "/>"):
	case isEOL(p):
	case p == "":
	default:
		return in, false
	}

	end := blankLineBreak(p)
	p = p[end:]
	if rest, ok := eol(p); ok {
		p = rest
	}
	return p, true
}

// htmlAnyTag: any other complete opening or closing tag alone on its line,
// up to and including the next blank line.
func htmlAnyTag(in string) (string, bool) {
	p, name, ok := htmlOpenTag(in)
	if ok {
		for _, tag := range rawTextTags {
			if strings.EqualFold(tag, name) {
				return in, false
			}
		}
	} else if p, _, ok = htmlClosingTag(in); !ok {
		return in, false
	}

	p = strings.TrimLeft(p, " \t")
	if p != "" && !isEOL(p) {
		return in, false
	}

	end := blankLineBreak(p)
	p = p[end:]
	if rest, ok := eol(p); ok {
		p = space0(rest)
		p, _ = eofOrEOL(p)
	}
	return p, true
}

// blankLineBreak returns the offset of the line ending that is followed by a
// blank line, or len(in) when there is none.
func blankLineBreak(in string) int {
	for i := 0; i < len(in); i++ {
		if !isEOL(in[i:]) {
			continue
		}
		after, _ := eol(in[i:])
		if _, ok := eol(space0(after)); ok {
			return i
		}
	}
	return len(in)
}
