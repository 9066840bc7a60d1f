package parse

import (
	"strings"

	"github.com/scrapekit/strut/debug"
	"github.com/scrapekit/strut/etree"
)

// Parse trims s and dispatches on its first character: '{' or '[' is
// decoded as JSON, '<' is scanned as markup, and anything else yields
// (nil, nil), meaning the format was not recognized.
//
// The returned root is independent of any other tree: parsing the same
// input twice gives two structurally equal trees with no shared nodes.
func Parse(s string, opts ...ParseOption) (*etree.Node, error) {
	pOpts := &parseOpts{rootName: DefaultRootName}
	for _, f := range opts {
		f(pOpts)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	switch s[0] {
	case '{', '[':
		if debug.Parse() {
			debug.Logf("parse: dispatching %d bytes as json\n", len(s))
		}
		return parseJSON(s, pOpts)
	case '<':
		if debug.Parse() {
			debug.Logf("parse: dispatching %d bytes as markup\n", len(s))
		}
		return parseMarkup(s)
	}
	return nil, nil
}
