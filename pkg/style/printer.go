package style

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/arthur-debert/docmap/pkg/errors"
	"github.com/arthur-debert/docmap/pkg/render"
	"github.com/arthur-debert/docmap/pkg/types"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Printer writes command results in either rich or plain form.
type Printer struct {
	w    io.Writer
	mode Mode
}

// NewPrinter creates a printer. ModeAuto is treated as plain; resolve it
// against the real output stream first. Printers never change pterm's global
// styling, see ConfigureOutput.
func NewPrinter(w io.Writer, mode Mode) *Printer {
	if mode == ModeAuto {
		mode = ModePlain
	}
	return &Printer{w: w, mode: mode}
}

// Rich reports whether styled output is enabled
func (p *Printer) Rich() bool {
	return p.mode == ModeRich
}

// Matches prints ranked matches as a table.
func (p *Printer) Matches(path string, matches []types.MatchResult) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(p.w, p.style(MutedStyle.Render, fmt.Sprintf("No rules match %s", path)))
		return err
	}

	data := pterm.TableData{{"#", "ID", "Name", "Selector", "Priority", "Target", "Template"}}
	for i, m := range matches {
		template := "-"
		if m.Rule.HasTemplate() {
			template = strconv.FormatInt(m.Rule.TemplateID, 10)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(m.Rule.ID, 10),
			m.Rule.Name,
			m.Rule.Selector,
			strconv.Itoa(m.Rule.Priority),
			target(m.Rule),
			template,
		})
	}

	return p.table(data)
}

// Target prints the resolved target of a rule.
func (p *Printer) Target(path string, rule types.Rule) error {
	_, err := fmt.Fprintf(p.w, "%s -> %s  %s\n",
		p.style(PathStyle.Render, path),
		p.style(SuccessStyle.Render, target(rule)),
		p.style(MutedStyle.Render, rule.String()))
	return err
}

// Variables prints the placeholders of a template body.
func (p *Printer) Variables(vars map[string]render.VariableInfo) error {
	if len(vars) == 0 {
		_, err := fmt.Fprintln(p.w, p.style(MutedStyle.Render, "No variables"))
		return err
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	data := pterm.TableData{{"Variable", "Uses", "Description"}}
	for _, name := range names {
		data = append(data, []string{name, strconv.Itoa(vars[name].Occurrences), vars[name].Description})
	}

	return p.table(data)
}

// Output prints rendered template output. Markdown is previewed through
// glamour when pretty is set and output is styled.
func (p *Printer) Output(out string, format types.Format, pretty bool) error {
	if pretty && p.Rich() && format == types.FormatMarkdown {
		out = RenderMarkdown(out, 0)
	}
	_, err := io.WriteString(p.w, out)
	if err == nil && (len(out) == 0 || out[len(out)-1] != '\n') {
		_, err = io.WriteString(p.w, "\n")
	}
	return err
}

// Title prints a section heading.
func (p *Printer) Title(text string) error {
	_, err := fmt.Fprintln(p.w, p.style(TitleStyle.Render, text))
	return err
}

// Error formats err for the terminal, showing the error code when present.
func (p *Printer) Error(err error) string {
	if err == nil {
		return ""
	}

	if docErr, ok := errors.As(err); ok {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			p.style(ErrorStyle.Render, string(docErr.Code)),
			err.Error())
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, p.style(ErrorStyle.Render, err.Error()))
}

// table writes data with a header row. Plain printers drop pterm's colors
// whatever the global styling is.
func (p *Printer) table(data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if !p.Rich() {
		table = pterm.RemoveColorFromString(table)
	}
	_, err = fmt.Fprintln(p.w, table)
	return err
}

func (p *Printer) style(fn func(...string) string, text string) string {
	if !p.Rich() {
		return text
	}
	return fn(text)
}

func target(rule types.Rule) string {
	return rule.SpaceKey + "/" + rule.PageID
}

// RenderMarkdown renders Markdown for the terminal. On failure the input is
// returned unchanged. A width of 0 keeps glamour's default wrapping.
func RenderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
