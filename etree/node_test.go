package etree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreParents = cmpopts.IgnoreFields(Node{}, "Parent")

func sample() *Node {
	a := NewWithAttr("a", map[string]string{"href": "x"})
	a.Text = "hi"
	b := New("b")
	b.Text = "in"
	b.Tail = "after"
	a.Append(b)
	c := New("c")
	a.Append(c)
	return a
}

func TestAppend(t *testing.T) {
	root := sample()
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}
	for i, c := range root.Children {
		if c.Parent != root {
			t.Errorf("child %d parent not set", i)
		}
		if c.ParentIndex != i {
			t.Errorf("child %d index = %d", i, c.ParentIndex)
		}
	}
}

func TestGet(t *testing.T) {
	root := sample()
	if got := root.Get("c"); got == nil || got.Name != "c" {
		t.Errorf("Get(c) = %+v", got)
	}
	if got := root.Get("zz"); got != nil {
		t.Errorf("Get(zz) = %+v, want nil", got)
	}
}

func TestRoot(t *testing.T) {
	root := sample()
	if got := root.Children[0].Root(); got != root {
		t.Errorf("Root() = %+v, want the tree root", got)
	}
}

func TestClone(t *testing.T) {
	root := sample()
	dup := root.Clone()
	if d := cmp.Diff(root, dup, ignoreParents); d != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", d)
	}
	dup.Children[0].Text = "changed"
	if root.Children[0].Text == "changed" {
		t.Error("clone shares child nodes with original")
	}
	dup.Attr["href"] = "y"
	if root.Attr["href"] == "y" {
		t.Error("clone shares attr map with original")
	}
}

func TestVisitOrder(t *testing.T) {
	root := sample()
	var pre, post []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Name)
		} else {
			pre = append(pre, n.Name)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a", "b", "c"}, pre); d != "" {
		t.Errorf("pre order (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"b", "c", "a"}, post); d != "" {
		t.Errorf("post order (-want +got):\n%s", d)
	}
}

func TestVisitSkip(t *testing.T) {
	root := sample()
	var pre []string
	root.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.Name)
		}
		return n.Name != "a", nil
	})
	if d := cmp.Diff([]string{"a"}, pre); d != "" {
		t.Errorf("pre order with skip (-want +got):\n%s", d)
	}
}
