package etree

// Node is one element of a tree. Name is a tag name for markup input
// and a synthesized key for JSON input. Text is content appearing
// immediately inside the element, before any child; Tail is content
// between this element's close and the next sibling (markup only).
//
// Children order is document order and is significant. A node belongs
// to at most one parent; Append keeps Parent and ParentIndex in sync.
type Node struct {
	Name string
	Attr map[string]string

	Text string
	Tail string

	Parent      *Node
	ParentIndex int

	Children []*Node
}

func New(name string) *Node {
	return &Node{Name: name}
}

func NewWithAttr(name string, attr map[string]string) *Node {
	if attr == nil {
		attr = map[string]string{}
	}
	return &Node{Name: name, Attr: attr}
}

// Append adds c as the last child of n.
func (n *Node) Append(c *Node) {
	c.Parent = n
	c.ParentIndex = len(n.Children)
	n.Children = append(n.Children, c)
}

// Get returns the first child named name, or nil.
func (n *Node) Get(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Name = n.Name
	dst.Text = n.Text
	dst.Tail = n.Tail
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	if n.Attr != nil {
		dst.Attr = make(map[string]string, len(n.Attr))
		for k, v := range n.Attr {
			dst.Attr[k] = v
		}
	}
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			dstC := &Node{}
			c.CloneTo(dstC)
			dstC.Parent = dst
			dstC.ParentIndex = i
			dst.Children[i] = dstC
		}
	}
	return dst
}

// Visit calls f on every node in document order, once before the
// children (isPost false) and once after (isPost true). Returning
// false from the pre call skips the subtree.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
