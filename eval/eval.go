// Package eval selects tree nodes with expr-lang expressions.
//
// Expressions see the candidate node through the variables name, text,
// and tail, the attrs map, and the functions attr(key), whereami(),
// find(path), and findall(path).
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/scrapekit/strut/debug"
	"github.com/scrapekit/strut/etree"
)

func exprOpts(n *etree.Node) []expr.Option {
	return []expr.Option{
		expr.Function("attr", func(params ...any) (any, error) {
			return n.Attr[params[0].(string)], nil
		},
			new(func(string) string)),
		expr.Function("whereami", func(params ...any) (any, error) {
			return n.Path(), nil
		},
			new(func() string)),
		expr.Function("find", func(params ...any) (any, error) {
			return n.Find(params[0].(string)), nil
		},
			new(func(string) *etree.Node)),
		expr.Function("findall", func(params ...any) (any, error) {
			return n.FindAll(params[0].(string)), nil
		},
			new(func(string) []*etree.Node)),
	}
}

// Matches evaluates src against a single node. The expression must
// yield a bool.
func Matches(n *etree.Node, src string) (bool, error) {
	if debug.Eval() {
		debug.Logf("eval %q at %s\n", src, n.Path())
	}
	prg, err := expr.Compile(src, exprOpts(n)...)
	if err != nil {
		return false, fmt.Errorf("compiling %q: %w", src, err)
	}
	env := map[string]any{
		"name":  n.Name,
		"text":  n.Text,
		"tail":  n.Tail,
		"attrs": n.Attr,
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q: want bool, got %T", src, out)
	}
	return b, nil
}

// Select returns the nodes under root (root included) matching src, in
// document order.
func Select(root *etree.Node, src string) ([]*etree.Node, error) {
	var res []*etree.Node
	err := root.Visit(func(n *etree.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := Matches(n, src)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
