package etree

import (
	"strconv"
	"strings"
)

// Path returns a rooted path for n, mainly for diagnostics. Siblings
// sharing a name are disambiguated by ordinal, so the second div under
// the root is $.div[1].
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	seg := n.Name
	same, ord := 0, 0
	for i, c := range n.Parent.Children {
		if c.Name != n.Name {
			continue
		}
		same++
		if i < n.ParentIndex {
			ord++
		}
	}
	if same > 1 {
		seg += "[" + strconv.Itoa(ord) + "]"
	}
	return n.Parent.Path() + "." + seg
}

// Find returns the first descendant reached by path, a "/"-separated
// sequence of child names where "*" matches any name. An empty path
// returns n itself.
func (n *Node) Find(path string) *Node {
	res := n.findAll(path, true)
	if len(res) == 0 {
		return nil
	}
	return res[0]
}

// FindAll returns every descendant reached by path, in document order.
func (n *Node) FindAll(path string) []*Node {
	return n.findAll(path, false)
}

func (n *Node) findAll(path string, first bool) []*Node {
	level := []*Node{n}
	for seg := range strings.SplitSeq(path, "/") {
		if seg == "" {
			continue
		}
		var next []*Node
		for _, p := range level {
			for _, c := range p.Children {
				if seg == "*" || c.Name == seg {
					next = append(next, c)
				}
			}
		}
		level = next
		if len(level) == 0 {
			return nil
		}
	}
	if first && len(level) > 1 {
		level = level[:1]
	}
	return level
}
