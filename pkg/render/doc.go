// Package render produces documentation bodies from templates.
//
// Templates contain `{{dot.path}}` placeholders. Each path is looked up in a
// Context, a tree of Mapping, List and Scalar values, one dot-separated
// segment at a time:
//
//	body := "## {{ symbol.name }}\n\nChanged in {{run.id}}."
//	ctx, _ := render.NewContext(map[string]any{
//	    "symbol": map[string]any{"name": "ParseConfig"},
//	    "run":    map[string]any{"id": 42},
//	})
//	out, err := render.NewRenderer().Render(body, types.FormatMarkdown, ctx, true)
//
// In strict mode an unresolved placeholder is a MISSING_VARIABLE error; in
// non-strict mode it is left in the output verbatim. A path that resolves to
// null is found and renders as "null".
//
// Storage-format output must be well-formed XML. It is parsed inside a
// synthetic root that declares the ac, ri and at namespace prefixes, and
// retried once unwrapped before failing with TEMPLATE_SYNTAX.
//
// Every failure is one of UNSUPPORTED_FORMAT, TEMPLATE_SYNTAX or
// MISSING_VARIABLE from pkg/errors.
package render
