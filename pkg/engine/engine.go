package engine

import (
	"path"

	"github.com/arthur-debert/docmap/pkg/catalog"
	"github.com/arthur-debert/docmap/pkg/config"
	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/render"
	"github.com/arthur-debert/docmap/pkg/rules"
	"github.com/arthur-debert/docmap/pkg/selector"
	"github.com/arthur-debert/docmap/pkg/types"
	"github.com/rs/zerolog"
)

// Request describes one file to map.
type Request struct {
	Path    string
	Rules   []types.Rule
	Context render.Context
	Strict  bool
}

// Result is the outcome for one rule.
type Result struct {
	Rule     types.Rule
	Template types.Template
	Output   string

	// Rendered is false when the rule references no template
	Rendered bool
}

// Engine wires a resolver, a template catalog and a renderer together.
type Engine struct {
	resolver *rules.Resolver
	renderer *render.Renderer
	catalog  *catalog.Catalog
	logger   zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithResolver replaces the default resolver
func WithResolver(r *rules.Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithRenderer replaces the default renderer
func WithRenderer(r *render.Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// New creates an engine over cat. A nil catalog behaves as an empty one.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	if cat == nil {
		cat = catalog.New("")
	}
	e := &Engine{
		catalog: cat,
		logger:  logging.GetLogger("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.resolver == nil {
		e.resolver = rules.NewResolver(selector.NewMatcher())
	}
	if e.renderer == nil {
		e.renderer = render.NewRenderer()
	}
	return e
}

// NewFromConfig creates an engine whose selector cache is sized from cfg.
func NewFromConfig(cfg *config.Config, cat *catalog.Catalog) *Engine {
	matcher := selector.NewMatcher(selector.WithCache(selector.NewRegexCache(cfg.Selector.CacheSize)))
	return New(cat, WithResolver(rules.NewResolver(matcher)))
}

// Resolver returns the engine's resolver
func (e *Engine) Resolver() *rules.Resolver {
	return e.resolver
}

// Catalog returns the engine's template catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Process maps req.Path to its winning rule and renders that rule's template.
//
// Errors are NO_MATCH when no rule applies, INVALID_TARGET when the winner's
// target is incomplete, TEMPLATE_NOT_FOUND for a dangling template id, and
// the renderer's errors otherwise.
func (e *Engine) Process(req Request) (Result, error) {
	done := logging.LogOperationStart(e.logger, "process")
	defer done()

	rule, err := e.resolver.Resolve(req.Path, req.Rules)
	if err != nil {
		return Result{}, err
	}

	return e.renderRule(req, rule)
}

// ProcessGroup renders every rule sharing the winning priority, in the order
// the rules were given.
func (e *Engine) ProcessGroup(req Request) ([]Result, error) {
	done := logging.LogOperationStart(e.logger, "process_group")
	defer done()

	group, err := e.resolver.ResolveGroupFor(req.Path, req.Rules)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(group))
	for _, match := range group {
		result, err := e.renderRule(req, match.Rule)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (e *Engine) renderRule(req Request, rule types.Rule) (Result, error) {
	result := Result{Rule: rule}
	if !rule.HasTemplate() {
		e.logger.Debug().
			Int64("rule_id", rule.ID).
			Msg("Rule has no template, nothing to render")
		return result, nil
	}

	tmpl, err := e.catalog.Get(rule.TemplateID)
	if err != nil {
		if docErr, ok := errors.As(err); ok {
			docErr.WithDetail(errors.DetailRuleID, rule.ID)
		}
		return Result{}, err
	}

	ctx := render.Merge(BuildContext(req.Path, rule), req.Context)
	out, err := e.renderer.RenderTemplate(tmpl, ctx, req.Strict)
	if err != nil {
		return Result{}, err
	}

	e.logger.Info().
		Str("path", req.Path).
		Int64("rule_id", rule.ID).
		Int64("template_id", tmpl.ID).
		Msg("Rendered documentation")

	result.Template = tmpl
	result.Output = out
	result.Rendered = true
	return result, nil
}

// BuildContext returns the values the engine provides to every template:
// file.path, file.name, file.dir, file.ext, rule.id, rule.name,
// rule.selector, rule.priority, target.space_key and target.page_id.
// Caller supplied values with the same names take precedence.
func BuildContext(filePath string, rule types.Rule) render.Context {
	normalized := selector.NormalizePath(filePath)
	return render.Context{
		"file": render.Mapping{
			"path": render.Str(normalized),
			"name": render.Str(path.Base(normalized)),
			"dir":  render.Str(path.Dir(normalized)),
			"ext":  render.Str(path.Ext(normalized)),
		},
		"rule": render.Mapping{
			"id":       render.Int(rule.ID),
			"name":     render.Str(rule.Name),
			"selector": render.Str(rule.Selector),
			"priority": render.Int(int64(rule.Priority)),
		},
		"target": render.Mapping{
			"space_key": render.Str(rule.SpaceKey),
			"page_id":   render.Str(rule.PageID),
		},
	}
}
