// Package match finds literal phrase occurrences in joined page text and
// resolves which parts of a fragment they cover.
package match

import (
	"regexp"
	"strings"
)

// CompilePhrase turns a literal search phrase into a case-insensitive
// pattern. The phrase is trimmed and split on whitespace runs; each term is
// escaped individually and the terms are rejoined with a one-or-more
// whitespace pattern, so a multi-word phrase matches across the joiner's
// inserted separators and across original whitespace alike. Terms
// themselves stay literal: a separator falling inside a term breaks the
// match. A blank phrase compiles to nil.
func CompilePhrase(phrase string) *regexp.Regexp {
	terms := strings.Fields(phrase)
	if len(terms) == 0 {
		return nil
	}

	escaped := make([]string, len(terms))
	for i, term := range terms {
		escaped[i] = regexp.QuoteMeta(term)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(escaped, `\s+`))
}
