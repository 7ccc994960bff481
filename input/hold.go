package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/space-shooter/engine"
)

// HoldTracker derives held-key state from press events alone.
// A key counts as held until timeout passes without another press or auto-repeat.
// Press is called from the event goroutine, Pressed from the game loop.
type HoldTracker struct {
	mu        sync.Mutex
	clock     engine.Clock
	timeout   time.Duration
	lastPress [keyCount]time.Time
}

// NewHoldTracker creates a tracker reading time from clock
func NewHoldTracker(clock engine.Clock, timeout time.Duration) *HoldTracker {
	return &HoldTracker{clock: clock, timeout: timeout}
}

// Press records a press or auto-repeat of k
func (h *HoldTracker) Press(k Key) {
	if k >= keyCount {
		return
	}
	h.mu.Lock()
	h.lastPress[k] = h.clock.Now()
	h.mu.Unlock()
}

// Release forgets k immediately, for platforms that do report releases
func (h *HoldTracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	h.mu.Lock()
	h.lastPress[k] = time.Time{}
	h.mu.Unlock()
}

// Pressed implements KeyState
func (h *HoldTracker) Pressed(k Key) bool {
	if k >= keyCount {
		return false
	}
	h.mu.Lock()
	last := h.lastPress[k]
	h.mu.Unlock()
	if last.IsZero() {
		return false
	}
	return h.clock.Now().Sub(last) < h.timeout
}
