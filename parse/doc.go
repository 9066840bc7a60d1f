// Package parse converts loosely structured text into element trees.
//
// # Usage
//
//	// Dispatch on the input's leading character
//	node, err := parse.Parse(`{"a": 1}`)
//	if err != nil {
//	    return err
//	}
//	if node == nil {
//	    // input recognized as neither JSON nor markup
//	}
//
//	// Map an already decoded JSON value
//	node = parse.FromValue(v, "root")
//
// JSON text (leading '{' or '[') and markup fragments (leading '<')
// produce the same tree shape. Markup may be arbitrarily malformed:
// unmatched closing tags are dropped and unclosed tags are closed
// implicitly when an ancestor closes. Only undecodable input fails,
// and every such failure wraps [ErrParse].
//
// # Related Packages
//
//   - github.com/scrapekit/strut/etree - the tree representation
//   - github.com/scrapekit/strut/encode - render trees as text
package parse
