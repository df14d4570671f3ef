package selector

import (
	"strings"
)

// Kind is the dialect of a selector.
type Kind int

const (
	// KindLiteral matches the whole path exactly
	KindLiteral Kind = iota

	// KindGlob matches the whole path with * and ? wildcards
	KindGlob

	// KindRegex searches the path with a regular expression
	KindRegex
)

// String returns the dialect name
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindGlob:
		return "glob"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// RegexPrefix marks an explicit regex selector.
const RegexPrefix = "regex:"

// regexIndicators are characters that only make sense in a regex.
const regexIndicators = "^$[{(|+"

// Row is one entry of a classification table.
type Row struct {
	// Name identifies the row in logs and tests
	Name string

	// Kind is the dialect assigned when Test succeeds
	Kind Kind

	// Test reports whether the row applies to the selector
	Test func(selector string) bool

	// Strip returns the pattern body once the row applied (nil keeps the selector)
	Strip func(selector string) string
}

// Table is an ordered list of rows; the first row whose Test succeeds decides
// the dialect. A selector no row accepts is a literal.
type Table []Row

// DefaultTable is the classification used by docmap.
var DefaultTable = Table{
	{
		Name:  "regex-prefix",
		Kind:  KindRegex,
		Test:  HasRegexPrefix,
		Strip: stripRegexPrefix,
	},
	{
		Name: "regex-indicator",
		Kind: KindRegex,
		Test: hasRegexIndicator,
	},
	{
		Name: "glob-wildcard",
		Kind: KindGlob,
		Test: hasGlobWildcard,
	},
}

// Classification is the outcome of running a selector through a Table.
type Classification struct {
	Kind Kind
	// Row is the name of the row that decided, empty for the literal fallback
	Row string
	// Pattern is the selector body with any dialect prefix removed
	Pattern string
}

// Classify runs the selector through the table.
func (t Table) Classify(selector string) Classification {
	for _, row := range t {
		if !row.Test(selector) {
			continue
		}
		pattern := selector
		if row.Strip != nil {
			pattern = row.Strip(selector)
		}
		return Classification{Kind: row.Kind, Row: row.Name, Pattern: pattern}
	}
	return Classification{Kind: KindLiteral, Pattern: selector}
}

// Classify returns the dialect of selector under DefaultTable.
func Classify(selector string) Kind {
	return DefaultTable.Classify(selector).Kind
}

// IsGlob reports whether selector is matched as a glob. Literal selectors
// count as globs without wildcards; regex selectors never do.
func IsGlob(selector string) bool {
	return Classify(selector) != KindRegex
}

// HasRegexPrefix reports whether selector starts with "regex:" in any case.
func HasRegexPrefix(selector string) bool {
	return len(selector) >= len(RegexPrefix) &&
		strings.EqualFold(selector[:len(RegexPrefix)], RegexPrefix)
}

func stripRegexPrefix(selector string) string {
	return selector[len(RegexPrefix):]
}

func hasRegexIndicator(selector string) bool {
	return strings.ContainsAny(selector, regexIndicators) || strings.Contains(selector, ".*")
}

func hasGlobWildcard(selector string) bool {
	return strings.ContainsAny(selector, "*?")
}
