package types_test

import (
	"testing"

	"github.com/arthur-debert/docmap/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  types.Format
		valid bool
	}{
		{"markdown", types.FormatMarkdown, true},
		{" Storage ", types.FormatStorage, true},
		{"MARKDOWN", types.FormatMarkdown, true},
		{"wiki", types.Format("wiki"), false},
		{"", types.Format(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := types.ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, got.IsValid())
		})
	}
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "#3 src/*.py", types.Rule{ID: 3, Selector: "src/*.py"}.String())
	assert.Equal(t, "#3 python (src/*.py)", types.Rule{ID: 3, Name: "python", Selector: "src/*.py"}.String())
}

func TestRuleHasTemplate(t *testing.T) {
	assert.False(t, types.Rule{}.HasTemplate())
	assert.True(t, types.Rule{TemplateID: 9}.HasTemplate())
}
