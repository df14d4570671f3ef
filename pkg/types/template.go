package types

import "strings"

// Format is the markup dialect of a template body.
type Format string

const (
	// FormatMarkdown renders plain Markdown text
	FormatMarkdown Format = "markdown"

	// FormatStorage renders a markup dialect that must be well-formed XML
	FormatStorage Format = "storage"
)

// Formats lists every recognized format.
var Formats = []Format{FormatMarkdown, FormatStorage}

// IsValid reports whether f is a recognized format.
func (f Format) IsValid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat converts user input into a Format. Unknown names are returned
// as-is so callers can surface an unsupported format error with the original
// value.
func ParseFormat(s string) Format {
	return Format(strings.ToLower(strings.TrimSpace(s)))
}

// Template is a stored documentation template.
type Template struct {
	ID     int64  `toml:"id" yaml:"id" json:"id"`
	Name   string `toml:"name" yaml:"name" json:"name"`
	Format Format `toml:"format" yaml:"format" json:"format"`
	Body   string `toml:"body" yaml:"body" json:"body"`

	// Variables documents the placeholders; it is not consulted when rendering
	Variables map[string]string `toml:"variables" yaml:"variables" json:"variables,omitempty"`
}
