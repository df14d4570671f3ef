package cli

// Command descriptions
const (
	MsgRootShort = "Map source files to documentation pages and render their templates"
	MsgRootLong  = `docmap decides which documentation page a source file belongs to and
renders the page content from a template.

Rules pair a selector (a glob such as "src/**/*.py", or a regular expression
written "regex:^src/.*_test\.go$") with a documentation target and an
optional template. When several rules match a file, the lowest priority
value wins; ties go to the lowest rule id.

Templates are plain Markdown or storage markup with {{dotted.path}}
placeholders filled from a YAML or JSON variables file.`

	MsgVersionShort = "Print version information"
	MsgMatchShort   = "List the rules matching a file, winners first"
	MsgResolveShort = "Print the documentation target of a file"
	MsgRenderShort  = "Render a template against a variables file"
	MsgProcessShort = "Resolve a file and render its rule's template"
	MsgVarsShort    = "List the placeholders used by a template"
)

// Flag descriptions
const (
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default: docmap.toml or docmap.yaml in the XDG config directory)"
	MsgFlagColor    = "Output styling: auto, always or never"
	MsgFlagRules    = "Rule set file (TOML or YAML)"
	MsgFlagGroup    = "Only show rules sharing the winning priority"
	MsgFlagTemplate = "Template body file"
	MsgFlagCatalog  = "Template catalog file (TOML or YAML)"
	MsgFlagID       = "Template id in the catalog"
	MsgFlagVars     = "Variables file (YAML or JSON)"
	MsgFlagFormat   = "Template format: markdown or storage"
	MsgFlagStrict   = "Fail on placeholders missing from the variables"
	MsgFlagPretty   = "Preview Markdown output with terminal styling"
	MsgFlagYAML     = "Print a YAML variables skeleton instead of a table"
)

// Error messages
const (
	MsgErrRulesRequired    = "--rules is required"
	MsgErrTemplateRequired = "either --template or --catalog with --id is required"
	MsgErrTemplateConflict = "--template cannot be combined with --catalog"
	MsgErrReadTemplate     = "failed to read template %s"
	MsgErrReadVars         = "failed to read variables file %s")

// Output headings
const (
	MsgGroupTitle = "Priority %d group (%d rules)"
)
