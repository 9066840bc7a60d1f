package strut

import "regexp"

// ReSub applies re.ReplaceAllString to every string reachable from v,
// returning a rebuilt value; v itself is not modified.
func ReSub(v any, re *regexp.Regexp, repl string) any {
	switch t := v.(type) {
	case []any:
		res := make([]any, len(t))
		for i, item := range t {
			res[i] = ReSub(item, re, repl)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(t))
		for k, mv := range t {
			res[k] = ReSub(mv, re, repl)
		}
		return res
	case string:
		return re.ReplaceAllString(t, repl)
	}
	return v
}
