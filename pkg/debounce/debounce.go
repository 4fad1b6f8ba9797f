// Package debounce provides a single-slot cancelable delayed callback.
// Each Schedule call replaces the previous pending one, so only the
// most recent call within the delay window fires. A zero delay runs
// the callback synchronously, which keeps test paths deterministic.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of Schedule calls into one callback
// invocation after a quiet period.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	fn     func()
	timer  *time.Timer
	closed bool
}

// New creates a debouncer that runs fn delay after the most recent
// Schedule call.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Schedule arms the callback, replacing any pending invocation. With a
// zero delay the callback runs before Schedule returns.
func (d *Debouncer) Schedule() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.delay <= 0 {
		d.mu.Unlock()
		d.fn()
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.closed {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn()
	})
	d.mu.Unlock()
}

// Cancel drops any pending invocation without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush runs a pending invocation immediately. A debouncer with
// nothing pending is a no-op.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil || d.closed {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}

// Pending reports whether an invocation is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Close cancels any pending invocation and rejects future Schedule
// calls. Safe to call more than once.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
