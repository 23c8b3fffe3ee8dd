package find

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	debugEnabled = os.Getenv("DOCFIND_DEBUG") == "1"
	debugMu      sync.Mutex
)

// debugf appends a timestamped trace line when DOCFIND_DEBUG=1. The viewer
// owns the terminal, so traces go to a file instead of stderr.
func debugf(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()

	f, err := os.OpenFile("docfind-debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}
