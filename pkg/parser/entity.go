package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// EntityTable resolves named character references. Name excludes the
// leading '&' and the trailing ';'.
type EntityTable interface {
	Lookup(name string) (string, bool)
}

// EntityMap is an EntityTable backed by a map from name to replacement text.
type EntityMap map[string]string

// Lookup implements EntityTable.
func (m EntityMap) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type htmlEntities struct{}

// HTMLEntities returns the table of HTML5 named character references.
func HTMLEntities() EntityTable {
	return htmlEntities{}
}

func (htmlEntities) Lookup(name string) (string, bool) {
	ref := "&" + name + ";"
	out := html.UnescapeString(ref)
	if out == ref {
		return "", false
	}
	// UnescapeString also accepts legacy prefixes such as "&ampx;" and
	// leaves the unmatched tail behind.
	if strings.HasSuffix(out, ";") && name != "semi" {
		return "", false
	}
	return out, true
}
