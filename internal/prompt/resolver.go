// ABOUTME: Prompt/validation engine: one resolved value per template variable
// ABOUTME: Default fallback, random(N) substitution, full-match regex retry loop

package prompt

import (
	"bufio"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/gregvogt/scaffold/internal/render"
	"github.com/gregvogt/scaffold/internal/secret"
	"github.com/gregvogt/scaffold/internal/template"
)

const defaultRandomLength = 32

var randomArgRe = regexp.MustCompile(`^random\((\d+)\)`)

// LineReader yields one line of raw user input per call. Implementations
// must honor ctx as a cooperative cancellation token: it is checked at
// every suspension point, never delivered asynchronously mid-resolve.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// stdinReader reads whitespace-trimmed lines from a buffered stream.
type stdinReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r in a LineReader. A final unterminated line is
// still returned; io.EOF surfaces only once input is exhausted.
func NewLineReader(r io.Reader) LineReader {
	return &stdinReader{r: bufio.NewReader(r)}
}

func (s *stdinReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Resolver solicits and validates values for template entries.
type Resolver struct {
	reader   LineReader
	renderer *render.Renderer

	// Random produces the secure random substitution value. Overridable
	// in tests; defaults to secret.String.
	Random func(length int) (string, error)
}

// NewResolver builds a resolver reading raw input from reader and
// presenting through renderer.
func NewResolver(reader LineReader, renderer *render.Renderer) *Resolver {
	return &Resolver{
		reader:   reader,
		renderer: renderer,
		Random:   secret.String,
	}
}

// Resolve prompts for one variable and returns its validated value.
//
// Empty input falls back to the entry default. A value beginning with the
// literal "random" is replaced by a secure random string; "random(N)" sets
// the length, anything else starting with "random" uses 32. When the entry
// declares a regex, the value must full-match it; mismatches re-prompt
// without bound, and both the default fallback and the random substitution
// are re-applied on every retry, so entering random(8) against a pattern
// keeps generating fresh candidates until one matches.
//
// The only errors are read failures and ctx cancellation; invalid input is
// never an error.
func (r *Resolver) Resolve(ctx context.Context, e *template.Entry, current, total int) (string, error) {
	r.renderer.Question(e, current, total)

	value, err := r.readValue(ctx, e)
	if err != nil {
		return "", err
	}

	if e.HasRegex() {
		pattern := e.Pattern()
		// A nil pattern means the template's regex never compiled; no
		// input can satisfy it, so this loops until cancellation. That
		// matches the advisory-only contract of RegexError.
		for pattern == nil || !pattern.MatchString(value) {
			r.renderer.Failure(e.Regex)
			value, err = r.readValue(ctx, e)
			if err != nil {
				return "", err
			}
		}
	}

	r.renderer.Clear()
	return value, nil
}

// readValue performs one prompt round: read, default fallback, random
// substitution.
func (r *Resolver) readValue(ctx context.Context, e *template.Entry) (string, error) {
	r.renderer.Prompt(e.Name, e.Default)

	line, err := r.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		line = e.Default
	}
	return r.substitute(line)
}

// substitute replaces a "random"-prefixed value with a secure random
// string. The parenthesized length is advisory: absent or malformed digits
// fall back to 32.
func (r *Resolver) substitute(value string) (string, error) {
	if !strings.HasPrefix(value, "random") {
		return value, nil
	}
	length := defaultRandomLength
	if m := randomArgRe.FindStringSubmatch(value); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			length = n
		}
	}
	return r.Random(length)
}
