// Package find owns the search state for one open document: which pages
// have text, where the committed phrase matches, which match is selected,
// and the background scan that indexes the rest of the document.
package find

import (
	"context"
	"regexp"
	"sync"

	"github.com/kk-code-lab/docfind/internal/match"
	"github.com/kk-code-lab/docfind/internal/pagetext"
)

// Decoder supplies page text for an attached document. Pages are numbered
// 1..PageCount. DecodePage may be called concurrently for different pages.
type Decoder interface {
	PageCount() int
	DecodePage(ctx context.Context, page int) ([]string, error)
}

// noMatch marks the absence of a selected match.
const noMatch = -1

// Controller is the single mutable surface of the library. Every mutator
// applies its update and then explicitly recomputes whatever derives from
// it; reads taken after a mutator returns observe a committed state, never
// a partial one.
type Controller struct {
	mu sync.Mutex

	dec   Decoder
	gen   int // bumped per attached document, fences stale scans
	store *pagetext.Store
	reg   *registry

	draft     string
	committed string
	pattern   *regexp.Regexp

	current   int // global match index, noMatch when none
	focusPage int

	scanning      bool // at most one full scan at a time
	scanCompleted bool // a full scan finished since the document was attached
	rescan        *debounce

	onUpdate func()
}

func NewController() *Controller {
	c := &Controller{
		store:     pagetext.NewStore(),
		reg:       newRegistry(),
		current:   noMatch,
		focusPage: 1,
	}
	c.rescan = newDebounce(editDebounceDelay, c.debouncedScan)
	return c
}

// SetUpdateFunc registers a hook invoked after a recompute commits, from
// whichever goroutine committed it. The hook must not assume it runs on
// any particular goroutine; it may call back into the Controller.
func (c *Controller) SetUpdateFunc(fn func()) {
	c.mu.Lock()
	c.onUpdate = fn
	c.mu.Unlock()
}

// AttachDocument loads a document, discarding all page text and search
// results from any previous one. The typed phrase survives; submitting it
// again searches the new document.
func (c *Controller) AttachDocument(dec Decoder) {
	c.rescan.cancel()
	c.mu.Lock()
	c.dec = dec
	c.gen++
	c.store = pagetext.NewStore()
	c.reg = newRegistry()
	c.current = noMatch
	c.focusPage = 1
	c.scanCompleted = false
	c.mu.Unlock()
}

// SetPageText stores decoded fragments for a page (the foreground path:
// the page the viewer happens to have decoded). If a phrase is committed
// and no background scan is running the page's matches are folded into the
// registry immediately; during a scan the recompute is deferred to the
// scan's single final pass.
func (c *Controller) SetPageText(page int, fragments []string) {
	c.mu.Lock()
	c.store.SetPageText(page, fragments)
	recompute := c.pattern != nil && !c.scanning
	if recompute {
		c.recomputeLocked()
	}
	notify := c.onUpdate
	c.mu.Unlock()

	if recompute && notify != nil {
		notify()
	}
}

// EditPhraseDraft commits a phrase typed live. Pages already indexed are
// rematched synchronously; the full-document scan is started immediately
// the first time, and debounced once a scan has already completed, so
// rapid typing cannot queue redundant scans.
func (c *Controller) EditPhraseDraft(phrase string) {
	c.commitPhrase(phrase)
	c.requestScan(false)
}

// SubmitPhrase commits a phrase explicitly (the user pressed enter). The
// debounce wait is bypassed: a scan starts now unless one is already
// running, in which case the request parks until the running scan ends.
func (c *Controller) SubmitPhrase(phrase string) {
	c.commitPhrase(phrase)
	c.requestScan(true)
}

// ClearPhrase drops the phrase and all matches. Indexed page text is kept;
// a future phrase reuses it.
func (c *Controller) ClearPhrase() {
	c.rescan.cancel()
	c.commitPhrase("")
}

func (c *Controller) commitPhrase(phrase string) {
	c.mu.Lock()
	c.draft = phrase
	c.committed = phrase
	c.pattern = match.CompilePhrase(phrase)
	c.recomputeLocked()
	notify := c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// recomputeLocked rebuilds the registry from the current phrase and page
// text, then re-clamps the selected match. Total, never incremental.
func (c *Controller) recomputeLocked() {
	c.reg.replace(match.Compute(c.pattern, c.store))
	c.clampLocked()
}

// clampLocked applies the selection rule after any recompute: no phrase or
// no matches clears the selection; an out-of-range selection resets to the
// first match; anything else is preserved so navigation survives
// incremental updates.
func (c *Controller) clampLocked() {
	total := c.reg.totalMatches()
	switch {
	case c.committed == "" || total == 0:
		c.current = noMatch
	case c.current < 0 || c.current >= total:
		c.current = 0
	}
}

// NextMatch advances the selection, wrapping past the last match, and
// moves focus to the owning page when it differs.
func (c *Controller) NextMatch() {
	c.step(1)
}

// PrevMatch steps backward with wraparound; with no selection it jumps to
// the last match rather than the first.
func (c *Controller) PrevMatch() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	c.mu.Lock()
	total := c.reg.totalMatches()
	if total == 0 {
		c.mu.Unlock()
		return
	}
	switch {
	case c.current == noMatch && delta > 0:
		c.current = 0
	case c.current == noMatch:
		c.current = total - 1
	default:
		c.current = (c.current + delta + total) % total
	}
	if page, ok := c.reg.pageFor(c.current); ok && page != c.focusPage {
		c.focusPage = page
	}
	notify := c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Highlights resolves which parts of one fragment fall inside matches, for
// the rendering surface. Results are ascending by LocalStart; GlobalIndex
// compares against CurrentGlobalMatch for the selected-occurrence style.
func (c *Controller) Highlights(page, fragIdx int) []match.Overlap {
	c.mu.Lock()
	defer c.mu.Unlock()

	pt, ok := c.store.Page(page)
	if !ok || fragIdx < 0 || fragIdx >= len(pt.Spans) {
		return nil
	}
	spans := c.reg.spans(page)
	if len(spans) == 0 {
		return nil
	}
	before := c.reg.countBefore(page)
	return match.Overlaps(spans, pt.Spans[fragIdx], len(pt.Fragments[fragIdx]), before)
}

func (c *Controller) TotalMatches() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.totalMatches()
}

// CurrentGlobalMatch reports the selected match's global index, if any.
func (c *Controller) CurrentGlobalMatch() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == noMatch {
		return 0, false
	}
	return c.current, true
}

// MatchCountBeforePage sums matches on pages numbered strictly less than
// page.
func (c *Controller) MatchCountBeforePage(page int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.countBefore(page)
}

// PageForGlobalIndex maps a global match index to its owning page.
func (c *Controller) PageForGlobalIndex(idx int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.pageFor(idx)
}

func (c *Controller) IsScanning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scanning
}

func (c *Controller) FocusedPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focusPage
}

// SetFocusedPage records the page the viewer is showing. Navigation keeps
// it in sync when jumping between matches.
func (c *Controller) SetFocusedPage(page int) {
	c.mu.Lock()
	c.focusPage = page
	c.mu.Unlock()
}

func (c *Controller) DraftPhrase() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Controller) CommittedPhrase() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}

func (c *Controller) HasPageText(page int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Has(page)
}

// PageText returns the stored record for a page, for rendering.
func (c *Controller) PageText(page int) (pagetext.PageText, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Page(page)
}

// PageCount reports the attached document's page count, zero when no
// document is attached.
func (c *Controller) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dec == nil {
		return 0
	}
	return c.dec.PageCount()
}
