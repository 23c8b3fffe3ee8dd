// Package pagetext assembles decoded text fragments into per-page
// searchable strings and tracks where each fragment landed.
package pagetext

import "strings"

// Span is a half-open [Start, End) byte range into a page's joined text.
// Fragments and matches both start and end on rune boundaries, so a Span
// never splits a code point.
type Span struct {
	Start int
	End   int
}

// Join concatenates fragments with exactly one space between consecutive
// fragments and reports each fragment's own range in the result, separator
// excluded. Empty fragments occupy a zero-length span and still advance the
// position past their separators.
func Join(fragments []string) (string, []Span) {
	if len(fragments) == 0 {
		return "", nil
	}

	var builder strings.Builder
	spans := make([]Span, 0, len(fragments))
	pos := 0
	for i, frag := range fragments {
		if i > 0 {
			builder.WriteByte(' ')
			pos++
		}
		spans = append(spans, Span{Start: pos, End: pos + len(frag)})
		builder.WriteString(frag)
		pos += len(frag)
	}
	return builder.String(), spans
}
