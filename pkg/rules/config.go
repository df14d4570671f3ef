package rules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/logging"
	"github.com/arthur-debert/docmap/pkg/selector"
	"github.com/arthur-debert/docmap/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a rule set
type File struct {
	Rules []types.Rule `toml:"rules" yaml:"rules"`
}

// LoadFile reads and validates a rule set. Files ending in .yaml or .yml are
// decoded as YAML, everything else as TOML.
func LoadFile(path string, matcher *selector.Matcher) ([]types.Rule, error) {
	logger := logging.GetLogger("rules.config")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read rules file %s", path)
	}

	var rules []types.Rule
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		rules, err = ParseYAML(data)
	default:
		rules, err = Parse(data)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateRules(rules, matcher); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", len(rules)).
		Msg("Loaded rules file")

	return rules, nil
}

// Parse decodes a TOML rule set without validating it.
func Parse(data []byte) ([]types.Rule, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse rules TOML")
	}
	return f.Rules, nil
}

// ParseYAML decodes a YAML rule set without validating it.
func ParseYAML(data []byte) ([]types.Rule, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse rules YAML")
	}
	return f.Rules, nil
}

// ValidateRules checks a rule set at creation time: every selector must
// compile, priorities must be non-negative and ids unique. Targets are not
// checked here; see ValidateTarget.
func ValidateRules(rules []types.Rule, matcher *selector.Matcher) error {
	if matcher == nil {
		matcher = selector.NewMatcher()
	}

	seen := make(map[int64]bool, len(rules))
	for i, rule := range rules {
		if err := matcher.Validate(rule.Selector); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidSelector,
				"rule %d (%s) has an invalid selector", rule.ID, rule.Name).
				WithDetail(errors.DetailRuleID, rule.ID).
				WithDetail(errors.DetailSelector, rule.Selector)
		}
		if rule.Priority < 0 {
			return errors.Newf(errors.ErrConfigValid,
				"rule %d (%s) has negative priority %d", rule.ID, rule.Name, rule.Priority).
				WithDetail(errors.DetailRuleID, rule.ID)
		}
		if seen[rule.ID] {
			return errors.Newf(errors.ErrConfigValid,
				"rule at index %d reuses id %d", i, rule.ID).
				WithDetail(errors.DetailRuleID, rule.ID)
		}
		seen[rule.ID] = true
	}
	return nil
}
