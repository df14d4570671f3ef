package render

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/types"
	"github.com/rs/zerolog"
)

// Renderer substitutes context values into template bodies.
type Renderer struct {
	logger zerolog.Logger
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{
		logger: logging.GetLogger("render.renderer"),
	}
}

// Option adjusts a single render call
type Option func(*options)

type options struct {
	templateID    int64
	hasTemplateID bool
}

// WithTemplateID attaches a template id to any error the call returns
func WithTemplateID(id int64) Option {
	return func(o *options) {
		o.templateID = id
		o.hasTemplateID = true
	}
}

// Render substitutes placeholders in body with values from ctx.
//
// In strict mode an unresolved placeholder fails with MISSING_VARIABLE; in
// non-strict mode it is kept verbatim. Storage output is checked for XML
// well-formedness after substitution. Any other failure is reported as
// TEMPLATE_SYNTAX.
func (r *Renderer) Render(body string, format types.Format, ctx Context, strict bool, opts ...Option) (out string, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	defer func() {
		if err != nil && o.hasTemplateID {
			if docErr, ok := errors.As(err); ok {
				docErr.WithDetail(errors.DetailTemplateID, o.templateID)
			}
		}
	}()

	if !format.IsValid() {
		return "", errors.Newf(errors.ErrUnsupportedFormat, "unsupported template format %q", string(format)).
			WithDetail(errors.DetailFormat, string(format))
	}

	if err := checkSyntax(body); err != nil {
		return "", err
	}

	out, err = r.substitute(body, ctx, strict)
	if err != nil {
		return "", err
	}

	if format == types.FormatStorage {
		if err := validateStorage(out); err != nil {
			return "", err
		}
	}

	r.logger.Debug().
		Str("format", string(format)).
		Bool("strict", strict).
		Int("inputBytes", len(body)).
		Int("outputBytes", len(out)).
		Msg("Rendered template")

	return out, nil
}

// RenderTemplate renders a stored template, tagging errors with its id.
func (r *Renderer) RenderTemplate(tmpl types.Template, ctx Context, strict bool) (string, error) {
	return r.Render(tmpl.Body, tmpl.Format, ctx, strict, WithTemplateID(tmpl.ID))
}

func (r *Renderer) substitute(body string, ctx Context, strict bool) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().Interface("panic", rec).Msg("Recovered from rendering failure")
			err = errors.Wrap(fmt.Errorf("%v", rec), errors.ErrTemplateSyntax, "unexpected rendering failure")
		}
	}()

	var b strings.Builder
	b.Grow(len(body))

	last := 0
	for _, p := range scan(body) {
		b.WriteString(body[last:p.start])
		last = p.end

		value, found := Lookup(ctx, p.path)
		if !found {
			if strict {
				return "", errors.Newf(errors.ErrMissingVariable, "variable %q not found in context", p.path).
					WithDetail(errors.DetailVariable, p.path)
			}
			r.logger.Debug().Str("variable", p.path).Msg("Leaving unresolved placeholder")
			b.WriteString(p.raw)
			continue
		}

		text, err := Text(value)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrTemplateSyntax, "cannot render variable %q", p.path).
				WithDetail(errors.DetailVariable, p.path)
		}
		b.WriteString(text)
	}
	b.WriteString(body[last:])

	return b.String(), nil
}

var defaultRenderer = NewRenderer()

// Render renders body with a shared renderer.
func Render(body string, format types.Format, ctx Context, strict bool, opts ...Option) (string, error) {
	return defaultRenderer.Render(body, format, ctx, strict, opts...)
}
