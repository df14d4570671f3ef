package selector

import (
	"regexp"
	"strings"
)

// Escaped forms produced by regexp.QuoteMeta.
const (
	escapedRecursiveDir = `\*\*/`
	escapedRecursive    = `\*\*`
	escapedStar         = `\*`
	escapedQuestion     = `\?`
)

// GlobToRegex translates a glob or literal selector into an anchored regular
// expression source.
func GlobToRegex(glob string) string {
	src := regexp.QuoteMeta(glob)
	src = strings.ReplaceAll(src, escapedRecursiveDir, "(.*/)?")
	src = strings.ReplaceAll(src, escapedRecursive, ".*")
	src = strings.ReplaceAll(src, escapedStar, ".*")
	src = strings.ReplaceAll(src, escapedQuestion, ".")
	return "^" + src + "$"
}

// NormalizePath converts path separators to forward slashes.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
