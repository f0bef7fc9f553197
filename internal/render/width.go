// ABOUTME: Display width measurement for panel layout and centering
// ABOUTME: ANSI-aware, grapheme-aware via uniseg; fast path for plain ASCII

package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the display width of s. ANSI escape sequences
// contribute zero width; grapheme clusters may span more than one cell
// (East Asian characters, emoji).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := stripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
		stripped = rest
		state = newState
	}
	return w
}

// isPlainASCII reports whether s is printable ASCII with no escapes.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// stripANSI removes CSI and OSC escape sequences from s.
func stripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			b.WriteByte(s[i])
			i++
			continue
		}
		i = skipEscape(s, i)
	}
	return b.String()
}

// skipEscape advances past the escape sequence starting at s[i].
func skipEscape(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[': // CSI: parameters then a final byte in 0x40-0x7E
		i++
		for i < len(s) && (s[i] < 0x40 || s[i] > 0x7E) {
			i++
		}
		if i < len(s) {
			i++
		}
	case ']': // OSC: terminated by BEL or ESC \
		i++
		for i < len(s) {
			if s[i] == '\a' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
	default:
		i++
	}
	return i
}

// center pads s with spaces so its visible width is centered within width.
// Strings wider than width are returned unchanged.
func center(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// leftPad indents s so it starts near the horizontal center of width.
func leftPad(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
