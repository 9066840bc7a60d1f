package parse

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/scrapekit/strut/etree"
)

var ignoreParents = cmpopts.IgnoreFields(etree.Node{}, "Parent")

func TestJSONArrayNaming(t *testing.T) {
	root := mustParse(t, `[10, "x", false]`)
	if root.Name != "root" {
		t.Fatalf("root = %s, want root", root.Name)
	}
	wantText := []string{"10", "x", "false"}
	if len(root.Children) != len(wantText) {
		t.Fatalf("got %d children, want %d", len(root.Children), len(wantText))
	}
	for i, w := range wantText {
		c := root.Children[i]
		if c.Name != "i"+strconv.Itoa(i) {
			t.Errorf("child %d named %s, want i%d", i, c.Name, i)
		}
		if c.Text != w {
			t.Errorf("child %d text %q, want %q", i, c.Text, w)
		}
	}
}

func TestJSONObjectOrder(t *testing.T) {
	// source order, not sorted
	root := mustParse(t, `{"b": 1, "a": 2, "c": 3}`)
	var got []string
	for _, c := range root.Children {
		got = append(got, c.Name)
	}
	want := []string{"b", "a", "c"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("key order (-want +got):\n%s", d)
	}
}

func TestJSONScalars(t *testing.T) {
	for _, tt := range []struct {
		in   string
		text string
	}{
		{`{"v": "s"}`, "s"},
		{`{"v": 1.5}`, "1.5"},
		{`{"v": 1e3}`, "1e3"},
		{`{"v": true}`, "true"},
		{`{"v": false}`, "false"},
	} {
		root := mustParse(t, tt.in)
		v := root.Get("v")
		if v == nil {
			t.Fatalf("%s: no v child", tt.in)
		}
		if v.Text != tt.text {
			t.Errorf("%s: text = %q, want %q", tt.in, v.Text, tt.text)
		}
		if len(v.Children) != 0 {
			t.Errorf("%s: scalar node has children", tt.in)
		}
	}
}

func TestJSONNull(t *testing.T) {
	root := mustParse(t, `{"v": null}`)
	v := root.Get("v")
	if v == nil {
		t.Fatal("no v child")
	}
	if v.Text != "" || len(v.Children) != 0 {
		t.Errorf("null node = %+v, want empty leaf", v)
	}
}

func TestJSONNested(t *testing.T) {
	root := mustParse(t, `{"items": [{"id": 1}, {"id": 2}]}`)
	want := &etree.Node{
		Name: "root",
		Children: []*etree.Node{{
			Name: "items",
			Children: []*etree.Node{
				{Name: "i0", Children: []*etree.Node{{Name: "id", Text: "1"}}},
				{Name: "i1", ParentIndex: 1, Children: []*etree.Node{{Name: "id", Text: "2"}}},
			},
		}},
	}
	if d := cmp.Diff(want, root, ignoreParents); d != "" {
		t.Errorf("tree (-want +got):\n%s", d)
	}
}

func TestJSONRootName(t *testing.T) {
	root, err := Parse(`[1]`, ParseRootName("doc"))
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != "doc" {
		t.Errorf("root = %s, want doc", root.Name)
	}
}

func TestFromValue(t *testing.T) {
	v := map[string]any{
		"b": []any{true, nil, "s"},
		"a": map[string]any{"k": 1.5},
	}
	got := FromValue(v, "root")
	want := &etree.Node{
		Name: "root",
		Children: []*etree.Node{
			// map keys come out sorted
			{Name: "a", Children: []*etree.Node{{Name: "k", Text: "1.5"}}},
			{Name: "b", ParentIndex: 1, Children: []*etree.Node{
				{Name: "i0", Text: "true"},
				{Name: "i1", ParentIndex: 1},
				{Name: "i2", Text: "s", ParentIndex: 2},
			}},
		},
	}
	if d := cmp.Diff(want, got, ignoreParents); d != "" {
		t.Errorf("tree (-want +got):\n%s", d)
	}
}

func TestFromValueScalarRoot(t *testing.T) {
	got := FromValue("hello", "root")
	if got.Text != "hello" || len(got.Children) != 0 {
		t.Errorf("got %+v, want leaf with text hello", got)
	}
}
