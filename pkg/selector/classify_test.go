// Test Type: Unit Test
// Description: Tests for the selector classification table

package selector_test

import (
	"testing"

	"github.com/arthur-debert/docmap/pkg/selector"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantKind selector.Kind
		wantRow  string
		pattern  string
	}{
		{"regex prefix", "regex:src/.*", selector.KindRegex, "regex-prefix", "src/.*"},
		{"regex prefix upper case", "REGEX:^a$", selector.KindRegex, "regex-prefix", "^a$"},
		{"regex prefix mixed case with glob chars", "Regex:*.py", selector.KindRegex, "regex-prefix", "*.py"},
		{"caret", "^src/", selector.KindRegex, "regex-indicator", "^src/"},
		{"dollar", `\.py$`, selector.KindRegex, "regex-indicator", `\.py$`},
		{"character class", "src/[ab].py", selector.KindRegex, "regex-indicator", "src/[ab].py"},
		{"braces", "a{2}", selector.KindRegex, "regex-indicator", "a{2}"},
		{"group", "(src|lib)/x", selector.KindRegex, "regex-indicator", "(src|lib)/x"},
		{"plus", "a+b", selector.KindRegex, "regex-indicator", "a+b"},
		{"dot star", "src/.*py", selector.KindRegex, "regex-indicator", "src/.*py"},
		{"star glob", "*.py", selector.KindGlob, "glob-wildcard", "*.py"},
		{"recursive glob", "src/**/*.py", selector.KindGlob, "glob-wildcard", "src/**/*.py"},
		{"question glob", "file?.txt", selector.KindGlob, "glob-wildcard", "file?.txt"},
		{"literal", "README.md", selector.KindLiteral, "", "README.md"},
		{"literal with dirs", "docs/index.md", selector.KindLiteral, "", "docs/index.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selector.DefaultTable.Classify(tt.selector)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantRow, got.Row)
			assert.Equal(t, tt.pattern, got.Pattern)
			assert.Equal(t, tt.wantKind, selector.Classify(tt.selector))
		})
	}
}

func TestIsGlob(t *testing.T) {
	assert.True(t, selector.IsGlob("*.py"))
	assert.True(t, selector.IsGlob("README.md"), "literal selectors are globs without wildcards")
	assert.False(t, selector.IsGlob("^src/"))

	for _, s := range []string{"regex:*.py", "regex:README", "REGEX:a?b", "regex:"} {
		assert.False(t, selector.IsGlob(s), "regex-prefixed selector %q must never be a glob", s)
	}
}

func TestCustomTable(t *testing.T) {
	// A third dialect slots in ahead of the defaults.
	table := append(selector.Table{{
		Name:  "path-prefix",
		Kind:  selector.KindRegex,
		Test:  func(s string) bool { return len(s) > 7 && s[:7] == "prefix:" },
		Strip: func(s string) string { return "^" + s[7:] },
	}}, selector.DefaultTable...)

	m := selector.NewMatcher(selector.WithTable(table))

	got := m.Classify("prefix:src/")
	assert.Equal(t, "path-prefix", got.Row)
	assert.Equal(t, "^src/", got.Pattern)

	ok, err := m.Matches("prefix:src/", "src/a/b.go")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Matches("prefix:src/", "lib/src/b.go")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "literal", selector.KindLiteral.String())
	assert.Equal(t, "glob", selector.KindGlob.String())
	assert.Equal(t, "regex", selector.KindRegex.String())
	assert.Equal(t, "unknown", selector.Kind(42).String())
}
