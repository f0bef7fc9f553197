// ABOUTME: Template file discovery and near-miss suggestions
// ABOUTME: Fuzzy-ranks candidate template names when the requested file is absent

package fsx

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Suggest returns up to three template-like filenames from the requested
// path's directory, fuzzy-ranked against the requested name. Used to hint
// the user after a failed open; an unreadable directory yields nil.
func Suggest(requested string) []string {
	dir := filepath.Dir(requested)
	name := filepath.Base(requested)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isTemplateLike(entry.Name()) {
			candidates = append(candidates, entry.Name())
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		// Nothing resembles the requested name; offer the candidates
		// that exist anyway.
		if len(candidates) > maxSuggestions {
			candidates = candidates[:maxSuggestions]
		}
		return candidates
	}

	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// isTemplateLike reports whether a filename looks like an env template.
func isTemplateLike(name string) bool {
	return strings.HasSuffix(name, ".template") || strings.HasPrefix(name, ".env")
}
