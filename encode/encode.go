// Package encode renders element trees as outline text, JSON, or YAML.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/scrapekit/strut/etree"
)

type Format int

const (
	OutlineFormat Format = iota
	JSONFormat
	YAMLFormat
)

type encOpts struct {
	format Format
	colors *Colors
	indent string
}

type EncodeOption func(*encOpts)

func EncodeFormat(f Format) EncodeOption {
	return func(o *encOpts) { o.format = f }
}
func EncodeJSON() EncodeOption {
	return EncodeFormat(JSONFormat)
}
func EncodeYAML() EncodeOption {
	return EncodeFormat(YAMLFormat)
}
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}
func EncodeIndent(s string) EncodeOption {
	return func(o *encOpts) { o.indent = s }
}

// Encode writes n to w. The default outline format prints one element
// per line with its attributes, inner text quoted below it, children
// indented, and tail text after the subtree marked with "~".
func Encode(w io.Writer, n *etree.Node, opts ...EncodeOption) error {
	o := &encOpts{indent: "  "}
	for _, f := range opts {
		f(o)
	}
	switch o.format {
	case JSONFormat:
		d, err := json.MarshalIndent(n, "", o.indent)
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case YAMLFormat:
		d, err := yaml.Marshal(yamlView(n))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if o.colors == nil {
		o.colors = noColors()
	}
	return encodeOutline(w, n, o, 0)
}

func encodeOutline(w io.Writer, n *etree.Node, o *encOpts, depth int) error {
	prefix := ""
	for range depth {
		prefix += o.indent
	}
	line := prefix + o.colors.Get(NameColor)(n.Name)
	for _, k := range slices.Sorted(maps.Keys(n.Attr)) {
		line += " " + o.colors.Get(AttrKeyColor)(k) +
			o.colors.Get(SepColor)("=") +
			o.colors.Get(AttrValueColor)(strconv.Quote(n.Attr[k]))
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if n.Text != "" {
		text := prefix + o.indent + o.colors.Get(TextColor)(strconv.Quote(n.Text))
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeOutline(w, c, o, depth+1); err != nil {
			return err
		}
	}
	if n.Tail != "" {
		tail := prefix + o.colors.Get(SepColor)("~ ") +
			o.colors.Get(TailColor)(strconv.Quote(n.Tail))
		if _, err := fmt.Fprintln(w, tail); err != nil {
			return err
		}
	}
	return nil
}

// yamlView lays a node out as an order-preserving MapSlice; a plain map
// would scramble the fields.
func yamlView(n *etree.Node) yaml.MapSlice {
	res := yaml.MapSlice{{Key: "name", Value: n.Name}}
	if len(n.Attr) > 0 {
		attr := yaml.MapSlice{}
		for _, k := range slices.Sorted(maps.Keys(n.Attr)) {
			attr = append(attr, yaml.MapItem{Key: k, Value: n.Attr[k]})
		}
		res = append(res, yaml.MapItem{Key: "attr", Value: attr})
	}
	if n.Text != "" {
		res = append(res, yaml.MapItem{Key: "text", Value: n.Text})
	}
	if n.Tail != "" {
		res = append(res, yaml.MapItem{Key: "tail", Value: n.Tail})
	}
	if len(n.Children) > 0 {
		kids := make([]yaml.MapSlice, len(n.Children))
		for i, c := range n.Children {
			kids[i] = yamlView(c)
		}
		res = append(res, yaml.MapItem{Key: "children", Value: kids})
	}
	return res
}
