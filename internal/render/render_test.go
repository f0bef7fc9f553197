// ABOUTME: Tests for panel rendering: box layout, progress indicator, centering
// ABOUTME: Uses a fixed-width non-TTY renderer with styling disabled

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gregvogt/scaffold/internal/template"
)

func testRenderer(buf *bytes.Buffer) *Renderer {
	return &Renderer{Out: buf, Width: 60, NoColor: true}
}

func TestQuestion_BoxContents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	e := &template.Entry{
		Name:     "DB_HOST",
		Section:  "Database",
		Question: "Where does the database live?",
		Info:     []string{"Hostname or IP"},
	}
	r.Question(e, 2, 5)

	out := buf.String()
	for _, want := range []string{"Database", "Where does the database live?", "Hostname or IP", "(2/5)", "┌", "└", "│"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}
}

func TestQuestion_FallbacksWhenMetadataAbsent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	r.Question(&template.Entry{Name: "BARE"}, 1, 1)

	out := buf.String()
	if !strings.Contains(out, "No question provided") {
		t.Errorf("missing question fallback:\n%s", out)
	}
	if !strings.Contains(out, "No additional info provided") {
		t.Errorf("missing info fallback:\n%s", out)
	}
}

func TestQuestion_NoIndicatorWithoutTotal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	r.Question(&template.Entry{Name: "X", Question: "Q"}, 0, 0)

	if strings.Contains(buf.String(), "(0/0)") {
		t.Errorf("indicator rendered without a total:\n%s", buf.String())
	}
}

func TestQuestion_LinesCenteredWithinWidth(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	r.Question(&template.Entry{Name: "X", Question: "Q?"}, 1, 2)

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if w := VisibleWidth(line); w > r.Width {
			t.Errorf("line wider than terminal (%d > %d): %q", w, r.Width, line)
		}
	}
}

func TestPrompt_ShowsNameAndDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	r.Prompt("PORT", "8080")

	got := buf.String()
	if !strings.Contains(got, "PORT (default: 8080): ") {
		t.Errorf("prompt = %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("prompt must not end with a newline")
	}
}

func TestFailure_NamesThePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	r.Failure("^[0-9]+$")

	if !strings.Contains(buf.String(), "Input does not match regex: ^[0-9]+$") {
		t.Errorf("failure line = %q", buf.String())
	}
}

func TestClear_NoopWhenNotTTY(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	r.Clear()

	if buf.Len() != 0 {
		t.Errorf("clear wrote %q to a non-TTY", buf.String())
	}
}

func TestDescribe_DumpsAllFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := testRenderer(&buf)

	r.Describe(&template.Entry{
		Name:       "TOKEN",
		Section:    "Auth",
		Question:   "Which token?",
		Info:       []string{"a", "b"},
		Regex:      "^[0-9+($",
		RegexError: "invalid regex: missing closing ]",
	})

	out := buf.String()
	for _, want := range []string{"Variable: TOKEN", "Section: Auth", "Question: Which token?", "Info: a, b", "Default: N/A", "Regex: ^[0-9+($", "Regex Error:"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"\x1b[1mbold\x1b[0m", 4},
		{"héllo", 5},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := VisibleWidth(tt.in); got != tt.want {
			t.Errorf("VisibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	t.Parallel()

	got := center("ab", 6)
	if got != "  ab  " {
		t.Errorf("center = %q", got)
	}
	if center("toolong", 3) != "toolong" {
		t.Error("center must not truncate wide strings")
	}
}
