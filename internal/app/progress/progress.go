// Package progress tracks completion of a fixed number of tasks that finish
// concurrently and reports the running percentage to a callback.
package progress

import "sync"

// Func receives the completed percentage in [0, 100].
type Func func(percent float64)

// Tracker counts completed tasks. Done may be called from many goroutines;
// the callback is invoked under the tracker's lock, so calls never overlap
// and each one sees a strictly larger percentage than the last.
type Tracker struct {
	mu     sync.Mutex
	total  int
	done   int
	report Func
}

// New returns a Tracker for total tasks. report may be nil. With no tasks
// the tracker is complete from the start and reports 100 once, here.
func New(total int, report Func) *Tracker {
	t := &Tracker{total: total, report: report}
	if total <= 0 && report != nil {
		report(100)
	}
	return t
}

// Done marks one task complete and returns the new percentage. Calls past
// the total are ignored and do not invoke the callback.
func (t *Tracker) Done() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done >= t.total {
		return t.percent()
	}
	t.done++
	pct := t.percent()
	if t.report != nil {
		t.report(pct)
	}
	return pct
}

// Percent returns the current percentage. A tracker with no tasks is
// complete.
func (t *Tracker) Percent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.percent()
}

// Completed returns the number of finished tasks.
func (t *Tracker) Completed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

func (t *Tracker) percent() float64 {
	if t.total <= 0 {
		return 100
	}
	return float64(t.done) / float64(t.total) * 100
}
