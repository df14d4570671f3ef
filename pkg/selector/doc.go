// Package selector decides whether a file path is governed by a selector.
//
// A selector is one of three dialects, decided by an ordered decision table
// (first matching row wins):
//
//   - `regex:src/.*_test\.go` - explicit regex (prefix is case-insensitive)
//   - `^docs/.*\.md$` - implicit regex, contains one of ^ $ [ { ( | + or ".*"
//   - `src/**/*.py` - glob, contains * or ?
//   - `README.md` - literal, exact match
//
// Regexes use search semantics: they match anywhere in the path unless the
// pattern anchors itself. Globs and literals always match the whole path.
//
// # Glob Conventions
//
//   - `*` matches any run of characters, including `/`
//   - `?` matches exactly one character
//   - `**/` matches zero or more leading directories, so `src/**/*.py`
//     matches both `src/main.py` and `src/a/b/main.py`
//
// Paths are normalised to forward slashes before matching.
//
// # Caching
//
// A Matcher may own a RegexCache. The cache only saves recompilation; a
// Matcher with no cache returns the same answers.
package selector
