// ABOUTME: Line-oriented parser for Markdown-annotated .env templates
// ABOUTME: Threads an explicit pending-metadata value; never fails on bad input

package template

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gregvogt/scaffold/internal/log"
)

var assignmentRe = regexp.MustCompile(`^([A-Z0-9_]+)=`)

// pending accumulates heading metadata until the next variable declaration
// consumes it. It is passed by value through the scan loop so a snapshot at
// declaration time cannot alias later mutations.
type pending struct {
	section    string
	question   string
	info       []string
	regex      string
	regexError string
}

// snapshot copies the accumulated metadata into an entry for name. The info
// slice is cloned so the reset accumulator cannot reach back into it.
func (p pending) snapshot(name string) *Entry {
	e := &Entry{
		Name:       name,
		Section:    p.section,
		Question:   p.question,
		Regex:      p.regex,
		RegexError: p.regexError,
	}
	if len(p.info) > 0 {
		e.Info = append([]string(nil), p.info...)
	}
	if p.regex != "" && p.regexError == "" {
		// Full-string match semantics: the pattern must consume the whole
		// candidate, not merely find a substring.
		if re, err := regexp.Compile(`\A(?:` + p.regex + `)\z`); err == nil {
			e.re = re
		}
	}
	return e
}

// Parse scans template lines and returns the declared variables in order.
// Lines matching none of the heading or assignment forms are ignored. The
// only error returned is a read failure from the underlying source.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()
	var p pending

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		p = scanLine(doc, p, line)
	}
	if err := scanner.Err(); err != nil {
		return doc, fmt.Errorf("reading template: %w", err)
	}
	return doc, nil
}

// scanLine classifies one trimmed line and returns the updated accumulator.
// Classification precedence: regex heading, section, question, info,
// assignment, ignored.
func scanLine(doc *Document, p pending, line string) pending {
	switch {
	case strings.HasPrefix(line, "# `"):
		p.regex = strings.Trim(line[2:], "`")
		p.regexError = ""
		if _, err := regexp.Compile(p.regex); err != nil {
			// Advisory only: a broken pattern never aborts parsing.
			p.regexError = fmt.Sprintf("invalid regex: %v", err)
		}

	case strings.HasPrefix(line, "# ") && len(line) > 2:
		p.section = line[2:]

	case strings.HasPrefix(line, "## "):
		p.question = line[3:]

	case strings.HasPrefix(line, "### "):
		p.info = append(p.info, line[4:])

	default:
		m := assignmentRe.FindStringSubmatch(line)
		if m == nil {
			return p
		}
		e := p.snapshot(m[1])
		if rest, ok := strings.CutPrefix(line, m[1]+"="); ok && rest != "" {
			e.Default = rest
			e.HasDefault = true
		}
		doc.put(e)
		return pending{}
	}
	return p
}

// ParseFile parses the template at path. Any failure at the filesystem
// boundary — missing file, permission denied, unusable path — is reported
// through the diagnostic log and yields an empty document, never an error.
func ParseFile(path string) *Document {
	f, err := os.Open(path)
	if err != nil {
		log.Error("opening template %s: %v", path, err)
		return NewDocument()
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		log.Error("parsing template %s: %v", path, err)
		return NewDocument()
	}
	return doc
}
