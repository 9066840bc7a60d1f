package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNotRecognized(t *testing.T) {
	for _, in := range []string{
		"",
		"  ",
		"not json or html",
		"42",
		"x < y",
	} {
		root, err := Parse(in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", in, err)
		}
		if root != nil {
			t.Errorf("Parse(%q) = %+v, want nil", in, root)
		}
	}
}

func TestParseBadJSON(t *testing.T) {
	for _, in := range []string{
		"{bad json",
		"[1, 2",
		`{"a": }`,
		`{"a": 1} trailing`,
	} {
		_, err := Parse(in)
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): err = %v, want ErrParse", in, err)
		}
	}
}

func TestParseLeadingWhitespace(t *testing.T) {
	root := mustParse(t, "\n\t {\"a\": 1}")
	if root == nil || root.Get("a") == nil {
		t.Fatalf("root = %+v, want object tree", root)
	}
}

func TestParseIdempotent(t *testing.T) {
	for _, in := range []string{
		`<a href="x">hi<b>in</b>after</a>`,
		`{"b": [1, {"c": null}], "a": "s"}`,
	} {
		first := mustParse(t, in)
		second := mustParse(t, in)
		if first == second {
			t.Fatalf("Parse(%q) returned a shared tree", in)
		}
		if d := cmp.Diff(first, second, ignoreParents); d != "" {
			t.Errorf("Parse(%q) not idempotent (-first +second):\n%s", in, d)
		}
	}
}
