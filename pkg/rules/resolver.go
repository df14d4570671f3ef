package rules

import (
	"cmp"
	"slices"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/selector"
	"github.com/arthur-debert/docmap/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver matches rule collections against file paths.
type Resolver struct {
	matcher *selector.Matcher
	logger  zerolog.Logger
}

// NewResolver creates a resolver. A nil matcher gets an uncached default.
func NewResolver(matcher *selector.Matcher) *Resolver {
	if matcher == nil {
		matcher = selector.NewMatcher()
	}
	return &Resolver{
		matcher: matcher,
		logger:  logging.GetLogger("rules.resolver"),
	}
}

// Matcher returns the selector matcher used by the resolver
func (r *Resolver) Matcher() *selector.Matcher {
	return r.matcher
}

// MatchRules returns every rule matching path, winners first.
func (r *Resolver) MatchRules(path string, rules []types.Rule) []types.MatchResult {
	matches := make([]types.MatchResult, 0, len(rules))

	for _, rule := range rules {
		matched, err := r.matcher.Matches(rule.Selector, path)
		if err != nil {
			r.logger.Warn().
				Err(err).
				Int64("rule_id", rule.ID).
				Str("selector", rule.Selector).
				Msg("Skipping rule with invalid selector")
			continue
		}
		if !matched {
			continue
		}
		matches = append(matches, types.MatchResult{Rule: rule, Path: path})
	}

	SortMatches(matches)

	r.logger.Debug().
		Str("path", path).
		Int("ruleCount", len(rules)).
		Int("matchCount", len(matches)).
		Msg("Matched rules")

	return matches
}

// ResolveTop returns the winning rule for path, if any rule matches.
func (r *Resolver) ResolveTop(path string, rules []types.Rule) (types.Rule, bool) {
	matches := r.MatchRules(path, rules)
	if len(matches) == 0 {
		return types.Rule{}, false
	}
	return matches[0].Rule, true
}

// Resolve returns the winning rule for path after validating its target.
// It fails with NO_MATCH when no rule applies and INVALID_TARGET when the
// winner has no usable target.
func (r *Resolver) Resolve(path string, rules []types.Rule) (types.Rule, error) {
	rule, ok := r.ResolveTop(path, rules)
	if !ok {
		return types.Rule{}, errors.Newf(errors.ErrNoMatch, "no rule matches %q", path).
			WithDetail("path", path)
	}
	if err := ValidateTarget(rule); err != nil {
		return types.Rule{}, err
	}

	r.logger.Info().
		Str("path", path).
		Int64("rule_id", rule.ID).
		Str("space", rule.SpaceKey).
		Str("page", rule.PageID).
		Msg("Resolved rule")

	return rule, nil
}

// ResolveGroupFor returns every match at the winning priority for path, each
// with a validated target.
func (r *Resolver) ResolveGroupFor(path string, rules []types.Rule) ([]types.MatchResult, error) {
	group := ResolveGroup(r.MatchRules(path, rules))
	if len(group) == 0 {
		return nil, errors.Newf(errors.ErrNoMatch, "no rule matches %q", path).
			WithDetail("path", path)
	}
	for _, m := range group {
		if err := ValidateTarget(m.Rule); err != nil {
			return nil, err
		}
	}
	return group, nil
}

// ResolveGroup returns the matches sharing the winning (lowest) priority,
// keeping the order they were given in.
func ResolveGroup(matches []types.MatchResult) []types.MatchResult {
	if len(matches) == 0 {
		return nil
	}

	best := matches[0].Rule.Priority
	for _, m := range matches[1:] {
		if m.Rule.Priority < best {
			best = m.Rule.Priority
		}
	}

	group := make([]types.MatchResult, 0, 1)
	for _, m := range matches {
		if m.Rule.Priority == best {
			group = append(group, m)
		}
	}
	return group
}

// Compare orders rules by precedence: priority, then id. The remaining
// fields only break ties between rules that share an id, keeping the order
// total.
func Compare(a, b types.Rule) int {
	return cmp.Or(
		cmp.Compare(a.Priority, b.Priority),
		cmp.Compare(a.ID, b.ID),
		cmp.Compare(a.Selector, b.Selector),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.SpaceKey, b.SpaceKey),
		cmp.Compare(a.PageID, b.PageID),
		cmp.Compare(a.TemplateID, b.TemplateID),
	)
}

// SortMatches orders matches in place, winners first.
func SortMatches(matches []types.MatchResult) {
	slices.SortStableFunc(matches, func(a, b types.MatchResult) int {
		return Compare(a.Rule, b.Rule)
	})
}
