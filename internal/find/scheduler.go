package find

import (
	"context"
	"sync"
)

// scanBatchSize bounds how many pages decode concurrently during a full
// scan. Batches run strictly in ascending page order and each batch is
// fully awaited before the next starts.
const scanBatchSize = 5

// requestScan asks for a full-document scan on behalf of a phrase change.
// Entry into the scanning state requires a committed phrase, an attached
// document, and no scan already running; requests that cannot enter now
// park in the single debounce slot. Live edits after a completed scan also
// take the debounce path so typing bursts coalesce into one scan.
func (c *Controller) requestScan(immediate bool) {
	c.mu.Lock()
	wanted := c.pattern != nil && c.dec != nil
	scanning := c.scanning
	completed := c.scanCompleted
	c.mu.Unlock()

	if !wanted {
		c.rescan.cancel()
		return
	}
	if scanning {
		c.rescan.schedule()
		return
	}
	if !immediate && completed {
		c.rescan.schedule()
		return
	}
	c.rescan.cancel()
	c.startScan()
}

// debouncedScan fires when the debounce deadline passes. A scan still
// running at that point re-arms the slot; the request is only considered
// again after the running scan's exit.
func (c *Controller) debouncedScan() {
	if c.startScan() {
		return
	}
	c.mu.Lock()
	scanning := c.scanning
	c.mu.Unlock()
	if scanning {
		c.rescan.schedule()
	}
}

// startScan attempts the Idle -> Scanning transition. It reports false
// when the guard fails (already scanning, no phrase, or no document).
func (c *Controller) startScan() bool {
	c.mu.Lock()
	if c.scanning || c.pattern == nil || c.dec == nil {
		c.mu.Unlock()
		return false
	}
	c.scanning = true
	dec := c.dec
	gen := c.gen
	c.mu.Unlock()

	go c.runScan(context.Background(), dec, gen)
	return true
}

// runScan decodes every page missing from the index, in ascending batches
// of scanBatchSize, then recomputes matches once over the whole document.
// A page that fails to decode is traced and skipped; it contributes zero
// matches. The scan itself is not cancelable; a newer request waits for
// the Scanning -> Idle transition. Attaching a new document bumps the
// generation, and a scan that outlived its document stops storing pages
// and exits without marking the new document scanned.
func (c *Controller) runScan(ctx context.Context, dec Decoder, gen int) {
	pageCount := dec.PageCount()

	c.mu.Lock()
	var missing []int
	for page := 1; page <= pageCount; page++ {
		if !c.store.Has(page) {
			missing = append(missing, page)
		}
	}
	c.mu.Unlock()

	debugf("scan start: %d pages total, %d to decode", pageCount, len(missing))

	type pageResult struct {
		page      int
		fragments []string
		err       error
	}

	for start := 0; start < len(missing); start += scanBatchSize {
		end := start + scanBatchSize
		if end > len(missing) {
			end = len(missing)
		}
		batch := missing[start:end]
		results := make([]pageResult, len(batch))

		var wg sync.WaitGroup
		for i, page := range batch {
			wg.Add(1)
			go func(i, page int) {
				defer wg.Done()
				fragments, err := dec.DecodePage(ctx, page)
				results[i] = pageResult{page: page, fragments: fragments, err: err}
			}(i, page)
		}
		wg.Wait()

		// Whole pages are applied atomically; nothing observes a batch
		// mid-flight because the recompute below runs under the same lock.
		c.mu.Lock()
		if c.gen != gen {
			c.scanning = false
			c.mu.Unlock()
			debugf("scan abandoned: document replaced")
			return
		}
		for _, res := range results {
			if res.err != nil {
				debugf("scan: decode page %d failed: %v", res.page, res.err)
				continue
			}
			c.store.SetPageText(res.page, res.fragments)
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	c.scanning = false
	if c.gen != gen {
		c.mu.Unlock()
		debugf("scan abandoned: document replaced")
		return
	}
	c.scanCompleted = true
	c.recomputeLocked()
	total := c.reg.totalMatches()
	notify := c.onUpdate
	c.mu.Unlock()

	debugf("scan done: %d matches across %d pages", total, pageCount)
	if notify != nil {
		notify()
	}
}
