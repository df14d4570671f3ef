// Package engine runs the full documentation mapping flow for a file path:
// resolve the winning rule, validate its target, fetch the rule's template
// from the catalog and render it against the caller's context enriched with
// facts about the file, the rule and the target.
package engine
