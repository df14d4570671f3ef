// Test Type: Integration Test
// Description: Tests for the resolve, fetch and render flow

package engine_test

import (
	"testing"

	"github.com/arthur-debert/docmap/pkg/catalog"
	"github.com/arthur-debert/docmap/pkg/config"
	"github.com/arthur-debert/docmap/pkg/engine"
	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/render"
	"github.com/arthur-debert/docmap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.FromTemplates(types.FormatMarkdown,
		types.Template{ID: 1, Name: "overview", Body: "# {{symbol.name}} in {{file.name}} -> {{target.space_key}}/{{target.page_id}}"},
		types.Template{ID: 2, Name: "panel", Format: types.FormatStorage, Body: "<p>{{rule.name}}</p>"},
		types.Template{ID: 3, Name: "broken", Format: types.FormatStorage, Body: "<p>{{symbol.name}}"},
	)
	require.NoError(t, err)
	return c
}

func testRules() []types.Rule {
	return []types.Rule{
		{ID: 10, Name: "python", Selector: "src/**/*.py", Priority: 5, SpaceKey: "ENG", PageID: "100", TemplateID: 1},
		{ID: 11, Name: "core", Selector: "src/core/*", Priority: 1, SpaceKey: "CORE", PageID: "200", TemplateID: 1},
		{ID: 12, Name: "core panel", Selector: "regex:^src/core/", Priority: 1, SpaceKey: "CORE", PageID: "201", TemplateID: 2},
		{ID: 13, Name: "docs", Selector: "*.md", Priority: 0, SpaceKey: "DOC", PageID: "300"},
		{ID: 14, Name: "no page", Selector: "*.txt", Priority: 0, SpaceKey: "DOC"},
		{ID: 15, Name: "dangling", Selector: "*.cfg", Priority: 0, SpaceKey: "OPS", PageID: "400", TemplateID: 99},
		{ID: 16, Name: "bad xml", Selector: "*.xml", Priority: 0, SpaceKey: "OPS", PageID: "401", TemplateID: 3},
	}
}

func TestEngine_Process(t *testing.T) {
	e := engine.New(testCatalog(t))
	ctx := render.MustContext(map[string]any{"symbol": map[string]any{"name": "load"}})

	result, err := e.Process(engine.Request{
		Path:    "src/app/io.py",
		Rules:   testRules(),
		Context: ctx,
		Strict:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.Rule.ID)
	assert.Equal(t, int64(1), result.Template.ID)
	assert.True(t, result.Rendered)
	assert.Equal(t, "# load in io.py -> ENG/100", result.Output)
}

func TestEngine_ProcessLowerPriorityWins(t *testing.T) {
	e := engine.New(testCatalog(t))

	result, err := e.Process(engine.Request{
		Path:    "src/core/db.py",
		Rules:   testRules(),
		Context: render.MustContext(map[string]any{"symbol": map[string]any{"name": "Open"}}),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), result.Rule.ID, "priority 1 beats 5, then lower id")
	assert.Equal(t, "# Open in db.py -> CORE/200", result.Output)
}

func TestEngine_ProcessWithoutTemplate(t *testing.T) {
	e := engine.New(nil)

	result, err := e.Process(engine.Request{Path: "README.md", Rules: testRules()})
	require.NoError(t, err)

	assert.Equal(t, int64(13), result.Rule.ID)
	assert.False(t, result.Rendered)
	assert.Empty(t, result.Output)
}

func TestEngine_ProcessErrors(t *testing.T) {
	e := engine.New(testCatalog(t))

	tests := []struct {
		name     string
		path     string
		strict   bool
		wantCode errors.ErrorCode
	}{
		{"no match", "main.go", false, errors.ErrNoMatch},
		{"invalid target", "notes.txt", false, errors.ErrInvalidTarget},
		{"template not found", "app.cfg", false, errors.ErrTemplateNotFound},
		{"missing variable in strict mode", "src/app/io.py", true, errors.ErrMissingVariable},
		{"malformed storage output", "feed.xml", false, errors.ErrTemplateSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Process(engine.Request{Path: tt.path, Rules: testRules(), Strict: tt.strict})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestEngine_ErrorDetails(t *testing.T) {
	e := engine.New(testCatalog(t))

	_, err := e.Process(engine.Request{Path: "app.cfg", Rules: testRules()})
	details := errors.GetErrorDetails(err)
	assert.Equal(t, int64(99), details[errors.DetailTemplateID])
	assert.Equal(t, int64(15), details[errors.DetailRuleID])

	_, err = e.Process(engine.Request{Path: "src/app/io.py", Rules: testRules(), Strict: true})
	docErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "symbol.name", docErr.Variable())
	id, ok := docErr.TemplateID()
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)
}

func TestEngine_NonStrictKeepsPlaceholders(t *testing.T) {
	e := engine.New(testCatalog(t))

	result, err := e.Process(engine.Request{Path: "src/app/io.py", Rules: testRules()})
	require.NoError(t, err)
	assert.Equal(t, "# {{symbol.name}} in io.py -> ENG/100", result.Output)
}

func TestEngine_ProcessGroup(t *testing.T) {
	e := engine.New(testCatalog(t))

	results, err := e.ProcessGroup(engine.Request{
		Path:    "src/core/db.py",
		Rules:   testRules(),
		Context: render.MustContext(map[string]any{"symbol": map[string]any{"name": "Open"}}),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, int64(11), results[0].Rule.ID)
	assert.Equal(t, "# Open in db.py -> CORE/200", results[0].Output)
	assert.Equal(t, int64(12), results[1].Rule.ID)
	assert.Equal(t, "<p>core panel</p>", results[1].Output)

	_, err = e.ProcessGroup(engine.Request{Path: "main.go", Rules: testRules()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoMatch))
}

func TestEngine_CallerContextWins(t *testing.T) {
	e := engine.New(testCatalog(t))

	result, err := e.Process(engine.Request{
		Path:  "src/app/io.py",
		Rules: testRules(),
		Context: render.MustContext(map[string]any{
			"symbol": map[string]any{"name": "x"},
			"file":   map[string]any{"name": "override.py"},
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, "# x in override.py -> ENG/100", result.Output)
}

func TestBuildContext(t *testing.T) {
	rule := types.Rule{ID: 4, Name: "n", Selector: "*.go", Priority: 2, SpaceKey: "S", PageID: "P"}

	ctx := engine.BuildContext(`pkg\engine\engine.go`, rule)

	assert.Equal(t, map[string]any{
		"file": map[string]any{
			"path": "pkg/engine/engine.go",
			"name": "engine.go",
			"dir":  "pkg/engine",
			"ext":  ".go",
		},
		"rule": map[string]any{
			"id":       int64(4),
			"name":     "n",
			"selector": "*.go",
			"priority": int64(2),
		},
		"target": map[string]any{
			"space_key": "S",
			"page_id":   "P",
		},
	}, ctx.Native())
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Selector.CacheSize = 4

	e := engine.NewFromConfig(cfg, testCatalog(t))
	_, err := e.Process(engine.Request{Path: "README.md", Rules: testRules()})
	require.NoError(t, err)

	stats := e.Resolver().Matcher().Cache().Stats()
	assert.Equal(t, 4, stats.Capacity)
	assert.Positive(t, stats.Size)
	assert.Equal(t, 3, e.Catalog().Len())
}
