package selector

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/rs/zerolog"
)

// Matcher evaluates selectors against file paths.
type Matcher struct {
	table  Table
	cache  *RegexCache
	logger zerolog.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithCache attaches a regex cache to the matcher
func WithCache(cache *RegexCache) Option {
	return func(m *Matcher) {
		m.cache = cache
	}
}

// WithTable replaces the classification table
func WithTable(table Table) Option {
	return func(m *Matcher) {
		m.table = table
	}
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// NewMatcher creates a matcher using DefaultTable and no cache.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		table:  DefaultTable,
		logger: logging.GetLogger("selector.matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Cache returns the matcher's regex cache, possibly nil.
func (m *Matcher) Cache() *RegexCache {
	return m.cache
}

// Classify returns the classification of selector under the matcher's table.
func (m *Matcher) Classify(selector string) Classification {
	return m.table.Classify(selector)
}

// IsGlob reports whether selector is matched as a glob or literal.
func (m *Matcher) IsGlob(selector string) bool {
	return m.Classify(selector).Kind != KindRegex
}

// Validate checks that selector is usable: non-empty, and compilable when it
// is a regex.
func (m *Matcher) Validate(selector string) error {
	_, _, err := m.compile(selector)
	return err
}

// Compile returns the regular expression used to evaluate selector.
func (m *Matcher) Compile(selector string) (*regexp.Regexp, error) {
	re, _, err := m.compile(selector)
	return re, err
}

// Matches reports whether path is governed by selector. An invalid selector
// returns an INVALID_SELECTOR error.
func (m *Matcher) Matches(selector, path string) (bool, error) {
	re, kind, err := m.compile(selector)
	if err != nil {
		return false, err
	}

	normalized := NormalizePath(path)
	matched := re.MatchString(normalized)

	m.logger.Trace().
		Str("selector", selector).
		Str("kind", kind.String()).
		Str("path", normalized).
		Bool("matched", matched).
		Msg("Evaluated selector")

	return matched, nil
}

func (m *Matcher) compile(selector string) (*regexp.Regexp, Kind, error) {
	c := m.Classify(selector)
	if strings.TrimSpace(c.Pattern) == "" {
		return nil, c.Kind, errors.New(errors.ErrInvalidSelector, "selector is empty").
			WithDetail(errors.DetailSelector, selector)
	}

	source := c.Pattern
	if c.Kind != KindRegex {
		source = GlobToRegex(c.Pattern)
	}

	re, err := m.cache.GetOrCompile(source)
	if err != nil {
		return nil, c.Kind, errors.Wrapf(err, errors.ErrInvalidSelector,
			"invalid %s selector %q", c.Kind, c.Pattern).
			WithDetail(errors.DetailSelector, selector)
	}
	return re, c.Kind, nil
}

var defaultMatcher = NewMatcher()

// Matches evaluates selector against path without caching.
func Matches(selector, path string) (bool, error) {
	return defaultMatcher.Matches(selector, path)
}

// Validate checks selector without caching.
func Validate(selector string) error {
	return defaultMatcher.Validate(selector)
}
