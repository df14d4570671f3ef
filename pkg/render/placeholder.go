package render

import (
	"sort"
	"strings"

	"github.com/arthur-debert/docmap/pkg/errors"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// placeholder is one `{{path}}` occurrence in a template body.
type placeholder struct {
	start int    // offset of the opening delimiter
	end   int    // offset just past the closing delimiter
	raw   string // the placeholder text as written, delimiters included
	path  string // enclosed text with surrounding whitespace trimmed
}

// scan returns the non-overlapping placeholders in body, each running from a
// `{{` to the next `}}`. An opening delimiter with no closing one after it
// ends the scan.
func scan(body string) []placeholder {
	var found []placeholder
	offset := 0
	for {
		open := strings.Index(body[offset:], openDelim)
		if open < 0 {
			return found
		}
		open += offset

		inner := open + len(openDelim)
		closing := strings.Index(body[inner:], closeDelim)
		if closing < 0 {
			return found
		}
		closing += inner

		end := closing + len(closeDelim)
		found = append(found, placeholder{
			start: open,
			end:   end,
			raw:   body[open:end],
			path:  strings.TrimSpace(body[inner:closing]),
		})
		offset = end
	}
}

// checkSyntax validates placeholder syntax before any substitution.
func checkSyntax(body string) error {
	if strings.Contains(body, "{{{{") || strings.Contains(body, "}}}}") {
		return errors.New(errors.ErrTemplateSyntax, "nested placeholders are not supported")
	}

	opens := strings.Count(body, openDelim)
	closes := strings.Count(body, closeDelim)
	if opens != closes {
		return errors.Newf(errors.ErrTemplateSyntax,
			"unbalanced placeholder braces: %d opening, %d closing", opens, closes)
	}

	placeholders := scan(body)
	if len(placeholders) != opens {
		return errors.New(errors.ErrTemplateSyntax, "placeholder opened without a matching close")
	}

	for _, p := range placeholders {
		if p.path == "" {
			return errors.Newf(errors.ErrTemplateSyntax, "empty placeholder %q", p.raw)
		}
		if strings.ContainsAny(p.path, "{}") {
			return errors.Newf(errors.ErrTemplateSyntax, "malformed placeholder %q", p.raw).
				WithDetail(errors.DetailVariable, p.path)
		}
	}
	return nil
}

// VariableInfo documents a placeholder found in a template body.
type VariableInfo struct {
	// Description is a stub meant to be replaced by the template author
	Description string `json:"description" yaml:"description"`
	// Occurrences counts how often the path appears in the body
	Occurrences int `json:"occurrences" yaml:"occurrences"`
}

// ExtractVariables returns every distinct placeholder path in body with a
// description stub. Malformed placeholders are ignored.
func ExtractVariables(body string) map[string]VariableInfo {
	vars := make(map[string]VariableInfo)
	for _, p := range scan(body) {
		if p.path == "" || strings.ContainsAny(p.path, "{}") {
			continue
		}
		info, ok := vars[p.path]
		if !ok {
			info.Description = "Value for " + p.path
		}
		info.Occurrences++
		vars[p.path] = info
	}
	return vars
}

// VariableNames returns the distinct placeholder paths in body, sorted.
func VariableNames(body string) []string {
	vars := ExtractVariables(body)
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
