package viewer

import "github.com/kk-code-lab/docfind/internal/match"

// styledRun is a stretch of fragment text drawn with one style.
type styledRun struct {
	text      string
	highlight bool
	current   bool
}

// splitRuns slices fragment text into plain and highlighted runs from the
// overlap list (ascending byte offsets into text). Non-matched characters
// pass through untouched. current marks the run belonging to the selected
// match when hasCurrent is set.
func splitRuns(text string, overlaps []match.Overlap, current int, hasCurrent bool) []styledRun {
	if len(overlaps) == 0 {
		if text == "" {
			return nil
		}
		return []styledRun{{text: text}}
	}

	var runs []styledRun
	pos := 0
	for _, ov := range overlaps {
		start := ov.LocalStart
		end := ov.LocalEnd
		if start < pos {
			start = pos
		}
		if end > len(text) {
			end = len(text)
		}
		if start >= end {
			continue
		}
		if start > pos {
			runs = append(runs, styledRun{text: text[pos:start]})
		}
		runs = append(runs, styledRun{
			text:      text[start:end],
			highlight: true,
			current:   hasCurrent && ov.GlobalIndex == current,
		})
		pos = end
	}
	if pos < len(text) {
		runs = append(runs, styledRun{text: text[pos:]})
	}
	return runs
}
