package cli

import (
	"os"

	"github.com/arthur-debert/docmap/pkg/catalog"
	"github.com/arthur-debert/docmap/pkg/config"
	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/render"
	"github.com/arthur-debert/docmap/pkg/rules"
	"github.com/arthur-debert/docmap/pkg/selector"
	"github.com/arthur-debert/docmap/pkg/types"
)

// templateSource selects a template either from a body file or a catalog.
type templateSource struct {
	file    string
	catalog string
	id      int64
}

func (s templateSource) load(cfg *config.Config) (types.Template, error) {
	switch {
	case s.file != "" && s.catalog != "":
		return types.Template{}, errors.New(errors.ErrInvalidInput, MsgErrTemplateConflict)
	case s.file != "":
		body, err := os.ReadFile(s.file)
		if err != nil {
			return types.Template{}, errors.Wrapf(err, errors.ErrNotFound, MsgErrReadTemplate, s.file)
		}
		return types.Template{
			Name:   s.file,
			Format: cfg.Render.DefaultFormat(),
			Body:   string(body),
		}, nil
	case s.catalog != "" && s.id != 0:
		cat, err := catalog.LoadFile(s.catalog, cfg.Render.DefaultFormat())
		if err != nil {
			return types.Template{}, err
		}
		return cat.Get(s.id)
	default:
		return types.Template{}, errors.New(errors.ErrInvalidInput, MsgErrTemplateRequired)
	}
}

func loadRules(path string, cfg *config.Config) ([]types.Rule, *selector.Matcher, error) {
	if path == "" {
		return nil, nil, errors.New(errors.ErrInvalidInput, MsgErrRulesRequired)
	}
	matcher := selector.NewMatcher(
		selector.WithCache(selector.NewRegexCache(cfg.Selector.CacheSize)),
		selector.WithLogger(logging.GetLogger("selector.matcher").With().Str("rules", path).Logger()),
	)
	set, err := rules.LoadFile(path, matcher)
	if err != nil {
		return nil, nil, err
	}
	return set, matcher, nil
}

func loadVars(path string) (render.Context, error) {
	if path == "" {
		return render.Context{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, MsgErrReadVars, path)
	}
	return render.ContextFromYAML(data)
}
