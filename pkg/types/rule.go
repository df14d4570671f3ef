package types

import "fmt"

// Rule maps a selector to a documentation target.
type Rule struct {
	// ID is the stable identity of the rule and the final ordering tie-break
	ID int64 `toml:"id" yaml:"id" json:"id"`

	// Name is a human-readable label used in messages
	Name string `toml:"name" yaml:"name" json:"name"`

	// Selector is a glob or regex, optionally prefixed with "regex:"
	Selector string `toml:"selector" yaml:"selector" json:"selector"`

	// Priority orders competing matches (lower value wins)
	Priority int `toml:"priority" yaml:"priority" json:"priority"`

	// SpaceKey identifies the documentation space
	SpaceKey string `toml:"space_key" yaml:"space_key" json:"space_key"`

	// PageID identifies the page inside the space
	PageID string `toml:"page_id" yaml:"page_id" json:"page_id"`

	// TemplateID references a Template; 0 means none
	TemplateID int64 `toml:"template_id" yaml:"template_id" json:"template_id,omitempty"`
}

// HasTemplate reports whether the rule references a template.
func (r Rule) HasTemplate() bool {
	return r.TemplateID != 0
}

// String returns a short description used in logs and CLI output.
func (r Rule) String() string {
	if r.Name == "" {
		return fmt.Sprintf("#%d %s", r.ID, r.Selector)
	}
	return fmt.Sprintf("#%d %s (%s)", r.ID, r.Name, r.Selector)
}

// MatchResult pairs a rule with the path it matched.
type MatchResult struct {
	Rule Rule
	Path string
}
