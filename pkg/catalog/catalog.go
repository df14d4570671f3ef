package catalog

import (
	"sort"
	"sync"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/render"
	"github.com/arthur-debert/docmap/pkg/types"
)

// Catalog is a concurrency-safe set of templates keyed by id.
type Catalog struct {
	mu            sync.RWMutex
	templates     map[int64]types.Template
	defaultFormat types.Format
}

// New creates an empty catalog. Templates added without a format get
// defaultFormat; an empty defaultFormat means markdown.
func New(defaultFormat types.Format) *Catalog {
	if defaultFormat == "" {
		defaultFormat = types.FormatMarkdown
	}
	return &Catalog{
		templates:     make(map[int64]types.Template),
		defaultFormat: defaultFormat,
	}
}

// Add validates and stores a template. Ids must be positive and unique.
// Missing variable documentation is filled in from the body's placeholders.
func (c *Catalog) Add(tmpl types.Template) error {
	if tmpl.ID <= 0 {
		return errors.Newf(errors.ErrConfigValid, "template %q has invalid id %d", tmpl.Name, tmpl.ID).
			WithDetail(errors.DetailTemplateID, tmpl.ID)
	}

	if tmpl.Format == "" {
		tmpl.Format = c.defaultFormat
	}
	tmpl.Format = types.ParseFormat(string(tmpl.Format))
	if !tmpl.Format.IsValid() {
		return errors.Newf(errors.ErrUnsupportedFormat, "template %d has unsupported format %q", tmpl.ID, tmpl.Format).
			WithDetail(errors.DetailTemplateID, tmpl.ID).
			WithDetail(errors.DetailFormat, string(tmpl.Format))
	}

	if len(tmpl.Variables) == 0 {
		extracted := render.ExtractVariables(tmpl.Body)
		if len(extracted) > 0 {
			tmpl.Variables = make(map[string]string, len(extracted))
			for path, info := range extracted {
				tmpl.Variables[path] = info.Description
			}
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.templates[tmpl.ID]; exists {
		return errors.Newf(errors.ErrConfigValid, "duplicate template id %d", tmpl.ID).
			WithDetail(errors.DetailTemplateID, tmpl.ID)
	}
	c.templates[tmpl.ID] = tmpl
	return nil
}

// Get returns the template with the given id.
func (c *Catalog) Get(id int64) (types.Template, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tmpl, ok := c.templates[id]
	if !ok {
		return types.Template{}, errors.Newf(errors.ErrTemplateNotFound, "template %d not found", id).
			WithDetail(errors.DetailTemplateID, id)
	}
	return tmpl, nil
}

// List returns all templates ordered by id.
func (c *Catalog) List() []types.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]types.Template, 0, len(c.templates))
	for _, tmpl := range c.templates {
		out = append(out, tmpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}
