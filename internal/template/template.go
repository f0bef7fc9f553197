// ABOUTME: Data model for parsed environment templates
// ABOUTME: Entry holds per-variable metadata; Document keeps declaration order

package template

import "regexp"

// Entry holds the Markdown metadata attached to one template variable.
type Entry struct {
	Name       string   // variable identifier, [A-Z0-9_]+
	Section    string   // most recent "# " heading, empty if none
	Question   string   // most recent "## " heading, empty if none
	Info       []string // accumulated "### " lines in source order
	Regex      string   // raw validation pattern from a "# `...`" heading
	RegexError string   // advisory message when Regex does not compile
	Default    string   // text after "=" on the declaration line
	HasDefault bool     // false when the line was exactly "NAME="

	re *regexp.Regexp // compiled full-match pattern, nil if absent or invalid
}

// HasRegex reports whether a validation pattern was declared, even an
// invalid one.
func (e *Entry) HasRegex() bool {
	return e.Regex != ""
}

// Pattern returns the compiled validation regex anchored for full-string
// matching, or nil when no pattern was declared or it failed to compile.
// A nil return with HasRegex() true means validation can never succeed,
// which is accepted behavior: the caller keeps re-prompting.
func (e *Entry) Pattern() *regexp.Regexp {
	return e.re
}

// Document is an ordered collection of template entries. Re-declaring a
// name overwrites its metadata but keeps the first-seen position.
type Document struct {
	entries []*Entry
	index   map[string]int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{index: make(map[string]int)}
}

// Len returns the number of distinct variables.
func (d *Document) Len() int {
	return len(d.entries)
}

// Get returns the entry for name, or nil if it was never declared.
func (d *Document) Get(name string) *Entry {
	i, ok := d.index[name]
	if !ok {
		return nil
	}
	return d.entries[i]
}

// Entries returns the entries in declaration order. The returned slice is
// shared; callers must not modify it.
func (d *Document) Entries() []*Entry {
	return d.entries
}

// put inserts or overwrites an entry, preserving first-insertion order.
func (d *Document) put(e *Entry) {
	if i, ok := d.index[e.Name]; ok {
		d.entries[i] = e
		return
	}
	d.index[e.Name] = len(d.entries)
	d.entries = append(d.entries, e)
}
