package strut

import "reflect"

// Merge recursively folds src into dst and returns dst. Map values
// merge by key, slice values extend with the src elements not already
// present, and any other pairing overwrites the dst value.
func Merge(dst, src map[string]any) map[string]any {
	for k, sv := range src {
		switch dv := dst[k].(type) {
		case map[string]any:
			if sm, ok := sv.(map[string]any); ok {
				dst[k] = Merge(dv, sm)
				continue
			}
		case []any:
			if ss, ok := sv.([]any); ok {
				dst[k] = extend(dv, ss)
				continue
			}
		}
		dst[k] = sv
	}
	return dst
}

func extend(dst, src []any) []any {
	for _, v := range src {
		if !containsValue(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

func containsValue(s []any, v any) bool {
	for _, x := range s {
		if reflect.DeepEqual(x, v) {
			return true
		}
	}
	return false
}
