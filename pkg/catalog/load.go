package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a template catalog
type File struct {
	Templates []types.Template `toml:"templates" yaml:"templates"`
}

// LoadFile reads a catalog file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as TOML.
func LoadFile(path string, defaultFormat types.Format) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read template file %s", path)
	}

	var templates []types.Template
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		templates, err = ParseYAML(data)
	default:
		templates, err = Parse(data)
	}
	if err != nil {
		return nil, err
	}

	c, err := FromTemplates(defaultFormat, templates...)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("templateCount", c.Len()).
		Msg("Loaded template catalog")

	return c, nil
}

// FromTemplates builds a catalog, failing on the first invalid template.
func FromTemplates(defaultFormat types.Format, templates ...types.Template) (*Catalog, error) {
	c := New(defaultFormat)
	for _, tmpl := range templates {
		if err := c.Add(tmpl); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Parse decodes TOML templates without validating them.
func Parse(data []byte) ([]types.Template, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse templates TOML")
	}
	return f.Templates, nil
}

// ParseYAML decodes YAML templates without validating them.
func ParseYAML(data []byte) ([]types.Template, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse templates YAML")
	}
	return f.Templates, nil
}
