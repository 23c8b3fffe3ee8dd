package decode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kk-code-lab/docfind/internal/textutil"
)

// DefaultLinesPerPage is the page height used when the document carries no
// form-feed page breaks.
const DefaultLinesPerPage = 40

var errNotText = errors.New("not a text file")

// TextDocument is a paginated view over a plain-text file. Form-feed
// characters mark page breaks when present; otherwise the document is cut
// into fixed-size pages of lines. Each line becomes one fragment,
// sanitized and NFC-normalized so matching is stable across byte-level
// variants of the same text.
type TextDocument struct {
	pages [][]string
}

// Open reads and paginates the file at path.
func Open(path string, linesPerPage int) (*TextDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !IsText(content) {
		return nil, fmt.Errorf("%s: %w", path, errNotText)
	}
	return New(content, linesPerPage), nil
}

// New paginates raw document content.
func New(content []byte, linesPerPage int) *TextDocument {
	if linesPerPage <= 0 {
		linesPerPage = DefaultLinesPerPage
	}

	text := normalizeContent(content)
	doc := &TextDocument{}

	if strings.ContainsRune(text, '\f') {
		for _, chunk := range strings.Split(text, "\f") {
			doc.pages = append(doc.pages, fragmentLines(chunk))
		}
		return doc
	}

	lines := fragmentLines(text)
	if len(lines) == 0 {
		doc.pages = append(doc.pages, nil)
		return doc
	}
	for start := 0; start < len(lines); start += linesPerPage {
		end := start + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		doc.pages = append(doc.pages, lines[start:end])
	}
	return doc
}

func (d *TextDocument) PageCount() int {
	return len(d.pages)
}

// DecodePage returns the fragments of a 1-based page.
func (d *TextDocument) DecodePage(ctx context.Context, page int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page < 1 || page > len(d.pages) {
		return nil, fmt.Errorf("page %d out of range 1..%d", page, len(d.pages))
	}
	return append([]string(nil), d.pages[page-1]...), nil
}

func fragmentLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	fragments := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		fragments[i] = norm.NFC.String(textutil.Sanitize(line))
	}
	return fragments
}
