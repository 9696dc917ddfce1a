package theme

import (
	"maps"
	"slices"
)

// mergeTheme deep-merges src into dst.
// Maps are merged recursively; slices and scalars replace the existing value.
// Values taken from src are copied, so dst never aliases src.
func mergeTheme(dst, src map[string]any) {
	for k, v := range src {
		if mv, ok := v.(map[string]any); ok {
			if existing, ok2 := dst[k].(map[string]any); ok2 {
				mergeTheme(existing, mv)
			} else {
				cp := map[string]any{}
				mergeTheme(cp, mv)
				dst[k] = cp
			}
			continue
		}
		dst[k] = cloneValue(v)
	}
}

// cloneValue copies the maps and slices reachable from v.
// Scalars and other values are returned as is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item).(map[string]any)
		}
		return out
	case map[string]string:
		return maps.Clone(val)
	case []string:
		return slices.Clone(val)
	default:
		return v
	}
}
