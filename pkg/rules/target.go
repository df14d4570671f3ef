package rules

import (
	"strings"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/types"
)

// ValidateTarget checks that rule points at a usable documentation target.
func ValidateTarget(rule types.Rule) error {
	if strings.TrimSpace(rule.PageID) == "" {
		return invalidTarget(rule, "page id")
	}
	if strings.TrimSpace(rule.SpaceKey) == "" {
		return invalidTarget(rule, "space key")
	}
	return nil
}

func invalidTarget(rule types.Rule, field string) error {
	return errors.Newf(errors.ErrInvalidTarget,
		"rule %d (%s) has an empty %s", rule.ID, rule.Name, field).
		WithDetail(errors.DetailRuleID, rule.ID).
		WithDetail(errors.DetailRuleName, rule.Name)
}
