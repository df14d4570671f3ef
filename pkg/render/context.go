package render

import (
	"github.com/arthur-debert/docmap/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ContextFromYAML decodes a YAML (or JSON) document into a Context. An empty
// document yields an empty context.
func ContextFromYAML(data []byte) (Context, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to decode variables")
	}
	if raw == nil {
		return Context{}, nil
	}
	return NewContext(raw)
}

// Merge returns a new context holding base overlaid with overlay. Nested
// mappings are merged recursively; any other value in overlay replaces the
// one in base. Neither input is modified.
func Merge(base, overlay Context) Context {
	out := make(Mapping, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if existing, ok := out[k].(Mapping); ok {
			if incoming, ok := v.(Mapping); ok {
				out[k] = Merge(existing, incoming)
				continue
			}
		}
		out[k] = v
	}
	return out
}
