package find

import (
	"sync"
	"time"
)

// editDebounceDelay is how long an already-scanned phrase must sit
// unedited before another full scan starts. Tests shorten it.
var editDebounceDelay = 300 * time.Millisecond

// debounce is a single-slot deferred task: scheduling supersedes any
// pending run, so only the latest request ever fires.
type debounce struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fire  func()
}

func newDebounce(delay time.Duration, fire func()) *debounce {
	return &debounce{delay: delay, fire: fire}
}

// schedule arms the slot, cancelling any earlier deadline.
func (d *debounce) schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debounce) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
