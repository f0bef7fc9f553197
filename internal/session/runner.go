// ABOUTME: Session driver: resolves every variable in order, assembles output
// ABOUTME: Env-size ceiling check, output filename prompt, overwrite confirmation

package session

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gregvogt/scaffold/internal/log"
	"github.com/gregvogt/scaffold/internal/prompt"
	"github.com/gregvogt/scaffold/internal/render"
	"github.com/gregvogt/scaffold/internal/template"
)

// Runner drives one interactive session over a parsed template document.
type Runner struct {
	Resolver *prompt.Resolver
	Renderer *render.Renderer
	Reader   prompt.LineReader // confirmations and output filename

	// Output preselects the destination file and skips the filename
	// prompt when non-empty.
	Output string
	// DefaultOutput is offered at the filename prompt. Defaults to .env.
	DefaultOutput string
	// MaxSize overrides the platform env-size ceiling; 0 means the
	// platform default.
	MaxSize int
	// Now supplies the header timestamp; defaults to time.Now.
	Now func() time.Time
}

// Run resolves all entries and writes the destination file. A declined
// size warning or overwrite confirmation returns nil: aborting is a
// normal, successful exit. Only read failures, cancellation, and write
// errors are returned.
func (r *Runner) Run(ctx context.Context, doc *template.Document) error {
	total := doc.Len()
	lines := make([]string, 0, total)
	for i, e := range doc.Entries() {
		value, err := r.Resolver.Resolve(ctx, e, i+1, total)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", e.Name, err)
		}
		lines = append(lines, e.Name+"="+value)
	}

	content := strings.Join(lines, lineSeparator)

	ok, err := r.checkSize(ctx, content)
	if err != nil {
		return err
	}
	if !ok {
		r.Renderer.Notice("Aborted. Please reduce the number or size of environment variables.")
		return nil
	}

	path, err := r.outputPath(ctx)
	if err != nil {
		return err
	}

	ok, err = r.confirmOverwrite(ctx, path)
	if err != nil {
		return err
	}
	if !ok {
		r.Renderer.Notice("Aborted. File not overwritten.")
		return nil
	}

	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	if err := writeEnvFile(path, content, now); err != nil {
		log.Error("writing %s: %v", path, err)
		return err
	}
	r.Renderer.Notice("Environment file written to '%s'.", path)
	return nil
}

// checkSize warns when the assembled content exceeds the platform env
// ceiling and asks whether to continue. Returns false on a declined
// warning.
func (r *Runner) checkSize(ctx context.Context, content string) (bool, error) {
	size := len([]byte(content))
	limit := r.MaxSize
	if limit <= 0 {
		limit = maxEnvSize
	}
	r.Renderer.Notice("Total environment file size: %d bytes (system max: %d bytes)", size, limit)
	if size <= limit {
		return true, nil
	}

	r.Renderer.Notice("Warning: The environment file size (%d bytes) exceeds the system's max allocatable size (%d bytes).", size, limit)
	r.Renderer.Notice("Continuing may result in undefined behavior in some shells or applications.")
	return r.confirm(ctx, "Would you like to continue anyway? (y/N): ")
}

// outputPath asks for the destination filename unless one was preset.
func (r *Runner) outputPath(ctx context.Context) (string, error) {
	if r.Output != "" {
		return r.Output, nil
	}
	def := r.DefaultOutput
	if def == "" {
		def = ".env"
	}
	fmt.Fprintf(r.Renderer.Out, "Enter output filename (default: %s): ", def)
	line, err := r.Reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// confirmOverwrite asks before clobbering an existing destination file.
func (r *Runner) confirmOverwrite(ctx context.Context, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return true, nil
	}
	return r.confirm(ctx, fmt.Sprintf("File '%s' exists. Overwrite? (y/N): ", path))
}

// confirm reads a y/N answer; anything but y (case-insensitive) is no.
func (r *Runner) confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprint(r.Renderer.Out, question)
	line, err := r.Reader.ReadLine(ctx)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "y"), nil
}
