package textutil

import "github.com/mattn/go-runewidth"

const DefaultTabWidth = 4

// DisplayWidth reports the printable width of text accounting for wide
// runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeColumns(ru)
	}
	return width
}

func runeColumns(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w < 1 {
		w = 1
	}
	return w
}
