package etree

import "encoding/json"

type nodeBase struct {
	Name     string            `json:"name"`
	Attr     map[string]string `json:"attr,omitempty"`
	Text     string            `json:"text,omitempty"`
	Tail     string            `json:"tail,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&nodeBase{
		Name:     n.Name,
		Attr:     n.Attr,
		Text:     n.Text,
		Tail:     n.Tail,
		Children: n.Children,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	base := &nodeBase{}
	if err := json.Unmarshal(d, base); err != nil {
		return err
	}
	n.Name = base.Name
	n.Attr = base.Attr
	n.Text = base.Text
	n.Tail = base.Tail
	n.Children = base.Children
	// parent links are not on the wire
	for i, c := range n.Children {
		c.Parent = n
		c.ParentIndex = i
	}
	return nil
}
