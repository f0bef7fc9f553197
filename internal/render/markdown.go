// ABOUTME: Markdown rendering wrapper around glamour for template previews
// ABOUTME: Caches rendered output keyed by content hash + width

package render

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour to render Markdown with caching.
type MarkdownRenderer struct {
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a MarkdownRenderer with an empty cache.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{cache: make(map[string]string)}
}

// Render returns the terminal-styled rendering of the given Markdown.
// On any renderer failure the raw text is returned instead.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := markdownCacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[key] = rendered
	return rendered
}

func markdownCacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
