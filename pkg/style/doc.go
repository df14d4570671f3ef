// Package style renders docmap command output: lipgloss styles, pterm tables,
// glamour Markdown previews and terminal detection.
package style
