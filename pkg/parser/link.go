package parser

import (
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// inlineLink parses [text](destination "title").
func (s *state) inlineLink(in string, _ rune) (string, ast.Inline, bool) {
	rest, link, ok := s.linkParts(in)
	if !ok {
		return in, nil, false
	}
	return rest, link, true
}

func (s *state) linkParts(in string) (string, *ast.Link, bool) {
	p, raw, _, ok := linkLabel(in)
	if !ok || !strings.HasPrefix(p, "(") {
		return in, nil, false
	}
	p = multispace(p[1:])

	link := &ast.Link{}
	if !strings.HasPrefix(p, ")") {
		if p, link.Destination, ok = linkDestination(p); !ok {
			return in, nil, false
		}
		if t, title, ok := linkTitle(multispace(p)); ok {
			p = t
			link.Title = title
		}
		p = multispace(p)
		if !strings.HasPrefix(p, ")") {
			return in, nil, false
		}
	}

	children, ok := s.inlines(raw)
	if !ok {
		return in, nil, false
	}
	link.Children = children
	return p[1:], link, true
}

// image parses ![alt](destination "title").
func (s *state) image(in string, _ rune) (string, ast.Inline, bool) {
	if !strings.HasPrefix(in, "!") {
		return in, nil, false
	}
	rest, link, ok := s.linkParts(in[1:])
	if !ok {
		return in, nil, false
	}
	return rest, &ast.Image{
		Destination: link.Destination,
		Title:       link.Title,
		Alt:         ast.PlainText(link.Children),
	}, true
}

// footnoteReference parses [^label] with an alphanumeric label.
func (s *state) footnoteReference(in string, _ rune) (string, ast.Inline, bool) {
	if !strings.HasPrefix(in, "[^") {
		return in, nil, false
	}
	p := in[2:]
	n := 0
	for n < len(p) && isASCIIAlnum(p[n]) {
		n++
	}
	if n == 0 || n == len(p) || p[n] != ']' {
		return in, nil, false
	}
	return p[n+1:], &ast.FootnoteReference{Label: p[:n]}, true
}

// referenceLink parses the full [text][label], collapsed [text][] and
// shortcut [text] forms. The label is resolved by renderers, not here.
func (s *state) referenceLink(in string, _ rune) (string, ast.Inline, bool) {
	p, raw, label, ok := linkLabel(in)
	if !ok {
		return in, nil, false
	}

	switch {
	case strings.HasPrefix(p, "[]"):
		p = p[2:]
	default:
		if rest, _, full, ok := linkLabel(p); ok {
			p = rest
			label = full
		}
	}

	text, ok := s.inlines(raw)
	if !ok {
		return in, nil, false
	}
	return p, &ast.LinkReference{Label: label, Text: text}, true
}
