// Test Type: Unit Test
// Description: Tests for loading and validating rule set files

package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/rules"
	"github.com/arthur-debert/docmap/pkg/testutil"
	"github.com/arthur-debert/docmap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlRules = `
[[rules]]
id = 1
name = "python sources"
selector = "src/**/*.py"
priority = 10
space_key = "ENG"
page_id = "12345"
template_id = 3

[[rules]]
id = 2
name = "go tests"
selector = 'regex:_test\.go$'
priority = 0
space_key = "QA"
page_id = "67890"
`

const yamlRules = `
rules:
  - id: 1
    name: docs
    selector: "docs/**/*.md"
    priority: 1
    space_key: DOC
    page_id: "42"
`

func TestLoadFile(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		loaded, err := rules.LoadFile(testutil.TempFile(t, "rules.toml", tomlRules), nil)
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		assert.Equal(t, types.Rule{
			ID:         1,
			Name:       "python sources",
			Selector:   "src/**/*.py",
			Priority:   10,
			SpaceKey:   "ENG",
			PageID:     "12345",
			TemplateID: 3,
		}, loaded[0])
		assert.Equal(t, `regex:_test\.go$`, loaded[1].Selector)
		assert.False(t, loaded[1].HasTemplate())
	})

	t.Run("yaml", func(t *testing.T) {
		loaded, err := rules.LoadFile(testutil.TempFile(t, "rules.yaml", yamlRules), nil)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "DOC", loaded[0].SpaceKey)
		assert.Equal(t, "42", loaded[0].PageID)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := rules.LoadFile(filepath.Join(t.TempDir(), "nope.toml"), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		_, err := rules.LoadFile(testutil.TempFile(t, "rules.toml", "[[rules]\nid ="), nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_selector_rejected_at_load", func(t *testing.T) {
		content := "[[rules]]\nid = 1\nselector = \"regex:(oops\"\nspace_key = \"A\"\npage_id = \"1\"\n"
		_, err := rules.LoadFile(testutil.TempFile(t, "rules.toml", content), nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSelector))
	})
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name     string
		rules    []types.Rule
		wantCode errors.ErrorCode
	}{
		{
			name:  "valid",
			rules: []types.Rule{{ID: 1, Selector: "*.go"}, {ID: 2, Selector: "regex:^a"}},
		},
		{
			name:     "empty selector",
			rules:    []types.Rule{{ID: 1, Selector: ""}},
			wantCode: errors.ErrInvalidSelector,
		},
		{
			name:     "negative priority",
			rules:    []types.Rule{{ID: 1, Selector: "*", Priority: -1}},
			wantCode: errors.ErrConfigValid,
		},
		{
			name:     "duplicate id",
			rules:    []types.Rule{{ID: 1, Selector: "*"}, {ID: 1, Selector: "*.go"}},
			wantCode: errors.ErrConfigValid,
		},
		{
			name:  "empty targets are not checked here",
			rules: []types.Rule{{ID: 1, Selector: "*"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.ValidateRules(tt.rules, nil)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
		})
	}
}
