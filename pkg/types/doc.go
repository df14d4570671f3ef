// Package types defines the data model shared by the selector, rules and
// render packages: Rule, Template, Format and MatchResult.
//
// Rules and templates are owned by an external store; docmap treats them as
// read-only values. MatchResult is created and discarded within a single
// resolution call.
package types
