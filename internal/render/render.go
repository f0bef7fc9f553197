// ABOUTME: Terminal presentation for the interactive session using lipgloss
// ABOUTME: Centered question panels with progress in the top border, failures, clear

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gregvogt/scaffold/internal/template"
)

const fallbackWidth = 80

var (
	panelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// Renderer writes the interactive presentation. Width and TTY are detected
// from the output file when constructed with New; tests set the fields
// directly.
type Renderer struct {
	Out     io.Writer
	Width   int  // terminal columns
	NoColor bool // disables all lipgloss styling
	TTY     bool // enables screen clearing between questions
}

// New builds a renderer for out, detecting terminal width and TTY-ness.
func New(out *os.File) *Renderer {
	r := &Renderer{Out: out, Width: fallbackWidth}
	fd := int(out.Fd())
	if term.IsTerminal(fd) {
		r.TTY = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			r.Width = w
		}
	}
	return r
}

func (r *Renderer) styled(s lipgloss.Style, text string) string {
	if r.NoColor {
		return text
	}
	return s.Render(text)
}

// Question draws the centered panel for one variable: section heading above,
// question and info lines boxed, with a (current/total) progress indicator
// embedded in the top border.
func (r *Renderer) Question(e *template.Entry, current, total int) {
	question := e.Question
	if question == "" {
		question = "No question provided"
	}
	info := e.Info
	if len(info) == 0 {
		info = []string{"No additional info provided"}
	}

	content := append([]string{question, ""}, info...)
	maxLine := 0
	for _, line := range content {
		if w := VisibleWidth(line); w > maxLine {
			maxLine = w
		}
	}
	boxWidth := maxLine + 4
	if boxWidth > r.Width-2 {
		boxWidth = r.Width - 2
	}

	var indicator string
	if total > 0 {
		indicator = fmt.Sprintf(" (%d/%d)", current, total)
	}
	horizontal := max(1, boxWidth-2-VisibleWidth(indicator))
	top := "┌" + strings.Repeat("─", horizontal) + indicator + "┐"
	bottom := "└" + strings.Repeat("─", max(1, boxWidth-2)) + "┘"

	if e.Section != "" {
		fmt.Fprintln(r.Out, center(r.styled(sectionStyle, e.Section), r.Width))
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top)
	for _, line := range content {
		lines = append(lines, "│"+center(line, boxWidth-2)+"│")
	}
	lines = append(lines, bottom)

	for _, line := range lines {
		fmt.Fprintln(r.Out, center(r.styled(panelStyle, line), r.Width))
	}
}

// Prompt writes the input prompt for name, indented toward the center.
// No trailing newline: input is typed on the same line.
func (r *Renderer) Prompt(name, def string) {
	fmt.Fprint(r.Out, leftPad(fmt.Sprintf("%s (default: %s): ", name, def), r.Width))
}

// Failure reports a validation mismatch for the given pattern.
func (r *Renderer) Failure(pattern string) {
	fmt.Fprintln(r.Out, center(r.styled(failureStyle, "Input does not match regex: "+pattern), r.Width))
}

// Notice writes a plain centered line.
func (r *Renderer) Notice(format string, args ...any) {
	fmt.Fprintln(r.Out, center(fmt.Sprintf(format, args...), r.Width))
}

// Clear erases the screen between questions. No-op when the output is not
// a terminal, so piped output stays readable.
func (r *Renderer) Clear() {
	if !r.TTY {
		return
	}
	fmt.Fprint(r.Out, "\x1b[2J\x1b[H")
}

// Describe writes a debug dump of one parsed entry.
func (r *Renderer) Describe(e *template.Entry) {
	label := func(s string) string { return r.styled(labelStyle, s) }
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	fmt.Fprintf(r.Out, "%s %s\n", label("Variable:"), e.Name)
	fmt.Fprintf(r.Out, "  %s %s\n", label("Section:"), orNA(e.Section))
	fmt.Fprintf(r.Out, "  %s %s\n", label("Question:"), orNA(e.Question))
	fmt.Fprintf(r.Out, "  %s %s\n", label("Info:"), orNA(strings.Join(e.Info, ", ")))
	def := "N/A"
	if e.HasDefault {
		def = e.Default
	}
	fmt.Fprintf(r.Out, "  %s %s\n", label("Default:"), def)
	if e.HasRegex() {
		fmt.Fprintf(r.Out, "  %s %s\n", label("Regex:"), e.Regex)
		if e.RegexError != "" {
			fmt.Fprintf(r.Out, "  %s %s\n", label("Regex Error:"), e.RegexError)
		}
	}
	fmt.Fprintln(r.Out, strings.Repeat("-", 40))
}
