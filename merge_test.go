package strut

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst, src map[string]any
		want     map[string]any
	}{
		{
			name: "overwrite scalar",
			dst:  map[string]any{"a": 1},
			src:  map[string]any{"a": 2},
			want: map[string]any{"a": 2},
		},
		{
			name: "add key",
			dst:  map[string]any{"a": 1},
			src:  map[string]any{"b": 2},
			want: map[string]any{"a": 1, "b": 2},
		},
		{
			name: "recurse maps",
			dst:  map[string]any{"m": map[string]any{"x": 1, "y": 2}},
			src:  map[string]any{"m": map[string]any{"y": 3}},
			want: map[string]any{"m": map[string]any{"x": 1, "y": 3}},
		},
		{
			name: "extend lists skipping duplicates",
			dst:  map[string]any{"l": []any{1, 2}},
			src:  map[string]any{"l": []any{2, 3}},
			want: map[string]any{"l": []any{1, 2, 3}},
		},
		{
			name: "type mismatch overwrites",
			dst:  map[string]any{"a": map[string]any{"x": 1}},
			src:  map[string]any{"a": []any{1}},
			want: map[string]any{"a": []any{1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.dst, tt.src)
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestMergeReturnsDst(t *testing.T) {
	dst := map[string]any{"a": 1}
	Merge(dst, map[string]any{"b": 2})
	if dst["b"] != 2 {
		t.Error("Merge did not update dst in place")
	}
}
