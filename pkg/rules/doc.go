// Package rules resolves which documentation rule governs a file path.
//
// # Rule Priority
//
// Every rule whose selector matches the path is collected and ordered by
// (priority, id) ascending. A lower priority value wins; on equal priority
// the lower id wins. The same input always produces the same order,
// regardless of the order the rules were supplied in.
//
// Rules with an invalid selector are logged and skipped during matching so
// one broken rule cannot block the rest of the collection. Validate rule
// sets when they are created (ValidateRules, LoadFile) to surface those
// errors early.
//
// # Targets
//
// Resolution and target validation are separate steps: a winning rule with
// an empty space key or page id yields an INVALID_TARGET error instead of
// silently falling through to the next rule.
//
// # Rule Files
//
// Rule sets can be loaded from TOML or YAML:
//
//	[[rules]]
//	id = 1
//	name = "python sources"
//	selector = "src/**/*.py"
//	priority = 10
//	space_key = "ENG"
//	page_id = "12345"
//	template_id = 1
//
//	[[rules]]
//	id = 2
//	name = "tests"
//	selector = "regex:_test\\.go$"
//	priority = 0
//	space_key = "ENG"
//	page_id = "67890"
package rules
