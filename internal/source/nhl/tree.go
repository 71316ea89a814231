package nhl

import "strconv"

// The live feed's shape shifts between deployments, so every field access
// goes through a total get-or-default traversal over the decoded JSON value.
// A missing key, out-of-range index, or type mismatch yields the caller's
// default, never a panic.

// get walks path segments (string map keys or int slice indexes) through a
// json.Unmarshal-produced value.
func get(v any, path ...any) (any, bool) {
	for _, seg := range path {
		switch key := seg.(type) {
		case string:
			m, ok := v.(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok = m[key]
			if !ok {
				return nil, false
			}
		case int:
			s, ok := v.([]any)
			if !ok || key < 0 || key >= len(s) {
				return nil, false
			}
			v = s[key]
		default:
			return nil, false
		}
	}
	if v == nil {
		return nil, false
	}
	return v, true
}

func getString(v any, def string, path ...any) string {
	raw, ok := get(v, path...)
	if !ok {
		return def
	}
	s, ok := raw.(string)
	if !ok {
		return def
	}
	return s
}

func getBool(v any, def bool, path ...any) bool {
	raw, ok := get(v, path...)
	if !ok {
		return def
	}
	b, ok := raw.(bool)
	if !ok {
		return def
	}
	return b
}

func getInt(v any, def int, path ...any) int {
	f, ok := lookupFloat(v, path...)
	if !ok {
		return def
	}
	return int(f)
}

func getInt64(v any, path ...any) (int64, bool) {
	f, ok := lookupFloat(v, path...)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func getFloat(v any, def float64, path ...any) float64 {
	f, ok := lookupFloat(v, path...)
	if !ok {
		return def
	}
	return f
}

// lookupFloat coerces the value at path to a float. Numeric fields arrive as
// JSON numbers, strings, or localized objects carrying a "default" value
// depending on feed generation.
func lookupFloat(v any, path ...any) (float64, bool) {
	raw, ok := get(v, path...)
	if !ok {
		return 0, false
	}
	return asFloat(raw)
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case map[string]any:
		inner, ok := n["default"]
		if !ok {
			return 0, false
		}
		return asFloat(inner)
	}
	return 0, false
}

func getSlice(v any, path ...any) []any {
	raw, ok := get(v, path...)
	if !ok {
		return nil
	}
	s, _ := raw.([]any)
	return s
}
