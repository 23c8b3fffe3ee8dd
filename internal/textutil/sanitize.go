// Package textutil provides terminal-safe text helpers shared by the
// document decoder and the viewer.
package textutil

import "strings"

// Sanitize replaces control characters so document text cannot inject
// terminal escape sequences when rendered. Tabs survive; every other C0 or
// C1 control becomes a single space so each rune keeps its ordinal position
// within the fragment.
func Sanitize(text string) string {
	for _, r := range text {
		if isControlRune(r) {
			return sanitize(text)
		}
	}
	return text
}

func sanitize(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if isControlRune(r) {
			builder.WriteByte(' ')
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

func isControlRune(r rune) bool {
	if r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	// C1 block, reachable through decoded UTF-16 content.
	return r >= 0x80 && r <= 0x9F
}
