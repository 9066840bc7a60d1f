// Package etree defines the element tree shared by the markup and JSON
// builders in the parse package.
//
// A Node is a named element with optional attributes, inner text, tail
// text, and ordered children. Both input formats are reduced to this
// one shape, so code that walks a tree never needs to know whether the
// input was a markup fragment or a JSON document.
//
// # Related Packages
//
//   - github.com/scrapekit/strut/parse - build trees from loose text
//   - github.com/scrapekit/strut/encode - render trees as text
//   - github.com/scrapekit/strut/eval - select nodes with expressions
package etree
