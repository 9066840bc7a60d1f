package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/scrapekit/strut/etree"
)

// parseJSON builds a tree from JSON text. It walks the decoder's token
// stream rather than round-tripping through map[string]any, so object
// fields keep their source order in the tree.
func parseJSON(s string, opts *parseOpts) (*etree.Node, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	root, err := decodeValue(dec, opts.rootName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return root, nil
}

// decodeValue builds the node for the next value in the stream, named
// name. Array elements are named i0, i1, ... in array order; object
// values are named by their key in source order; scalars become leaf
// text and null an empty leaf.
func decodeValue(dec *json.Decoder, name string) (*etree.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	el := etree.New(name)
	delim, ok := tok.(json.Delim)
	if !ok {
		setScalar(el, tok)
		return el, nil
	}
	switch delim {
	case '[':
		for i := 0; dec.More(); i++ {
			child, err := decodeValue(dec, "i"+strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			el.Append(child)
		}
	case '{':
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v", keyTok)
			}
			child, err := decodeValue(dec, key)
			if err != nil {
				return nil, err
			}
			el.Append(child)
		}
	}
	// closing ] or }
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return el, nil
}

func setScalar(el *etree.Node, tok json.Token) {
	switch t := tok.(type) {
	case nil:
		// null: leaf with neither text nor children
	case string:
		el.Text = t
	case json.Number:
		el.Text = t.String()
	case bool:
		el.Text = strconv.FormatBool(t)
	}
}

// FromValue maps an already decoded JSON value onto a tree rooted at a
// node named name, recursively. It is total: every value the stdlib
// decoder produces has a mapping, and anything else is stringified
// with %v.
//
// Decoded Go maps have no iteration order, so object children are
// emitted in sorted key order. Use Parse when the source order of the
// JSON text matters.
func FromValue(v any, name string) *etree.Node {
	el := etree.New(name)
	switch t := v.(type) {
	case nil:
	case []any:
		for i, item := range t {
			el.Append(FromValue(item, "i"+strconv.Itoa(i)))
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(t)) {
			el.Append(FromValue(t[k], k))
		}
	case string:
		el.Text = t
	case bool:
		el.Text = strconv.FormatBool(t)
	case json.Number:
		el.Text = t.String()
	case float64:
		el.Text = strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		el.Text = strconv.Itoa(t)
	case int64:
		el.Text = strconv.FormatInt(t, 10)
	default:
		el.Text = fmt.Sprintf("%v", t)
	}
	return el
}
