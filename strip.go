package strut

import "strings"

// Strip trims every string reachable from v. A string trimming to ""
// becomes nil; slices drop their nil entries, while maps keep the key
// with a nil value so the key set survives. Non-container, non-string
// values pass through unchanged.
func Strip(v any) any {
	switch t := v.(type) {
	case []any:
		res := make([]any, 0, len(t))
		for _, item := range t {
			if sv := Strip(item); sv != nil {
				res = append(res, sv)
			}
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(t))
		for k, mv := range t {
			res[k] = Strip(mv)
		}
		return res
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		return s
	}
	return v
}
