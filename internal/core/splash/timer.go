// Package splash schedules the one-shot welcome delay of a session.
package splash

import (
	"sync"
	"time"
)

// Timer fires its callback once after the delay unless stopped first.
type Timer struct {
	mu       sync.Mutex
	t        *time.Timer
	finished bool
	stopped  bool
}

// Start schedules fn after delay. A zero delay finishes immediately and
// calls fn synchronously.
func Start(delay time.Duration, fn func()) *Timer {
	tm := &Timer{}
	if delay <= 0 {
		tm.finished = true
		fn()
		return tm
	}

	tm.t = time.AfterFunc(delay, func() {
		tm.mu.Lock()
		if tm.stopped {
			tm.mu.Unlock()
			return
		}
		tm.finished = true
		tm.mu.Unlock()
		fn()
	})
	return tm
}

// Stop cancels the callback. It reports whether the callback was still
// pending; after Stop returns the callback will not start.
func (tm *Timer) Stop() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.finished || tm.stopped {
		return false
	}
	tm.stopped = true
	if tm.t != nil {
		tm.t.Stop()
	}
	return true
}

// Finished reports whether the callback has run or is running.
func (tm *Timer) Finished() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.finished
}
