package render

import "strings"

// Lookup resolves a dot-separated path in ctx. The boolean is false when a
// segment is absent or an intermediate value is not a Mapping; a path that
// resolves to null is found.
func Lookup(ctx Mapping, path string) (Value, bool) {
	var current Value = ctx
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(Mapping)
		if !ok {
			return nil, false
		}
		next, ok := m[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return Null(), true
	}
	return current, true
}
