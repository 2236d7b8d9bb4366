package timeline

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// debouncer owns a single pending timer: each Schedule cancels whatever
// was pending and re-arms, so only the trailing edge of a burst fires.
type debouncer struct {
	clock clockwork.Clock
	delay time.Duration

	mu      sync.Mutex
	pending clockwork.Timer
}

func newDebouncer(clock clockwork.Clock, delay time.Duration) *debouncer {
	return &debouncer{clock: clock, delay: delay}
}

func (d *debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = d.clock.AfterFunc(d.delay, fn)
}

func (d *debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
