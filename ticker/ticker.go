package ticker

import (
	"sync"
	"time"
)

var (
	mu    sync.RWMutex
	start = time.Now()
)

// Initialize resets the epoch returned timestamps are relative to.
func Initialize() {
	mu.Lock()
	start = time.Now()
	mu.Unlock()
}

func Start() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return start
}

func Get() time.Duration {
	return time.Since(Start())
}

// GetAsNS returns the time since Initialize in nanoseconds, never 0.
func GetAsNS() uint64 {
	ns := uint64(Get())
	if ns == 0 {
		ns = 1
	}
	return ns
}
