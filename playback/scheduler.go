package playback

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending auto-advance task.
type Timer interface {
	// Stop cancels the task. It reports false when the task already fired
	// or was stopped before.
	Stop() bool
}

// Scheduler runs f once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules with time.AfterFunc.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock is a Scheduler driven by Advance instead of wall time.
// Callbacks run synchronously on the goroutine that calls Advance.
type ManualClock struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true

	return true
}

// NewManualClock returns a clock at time zero with nothing scheduled.
func NewManualClock() *ManualClock { return &ManualClock{} }

// AfterFunc implements Scheduler.
func (m *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{clock: m, at: m.now + d, seq: m.seq, f: f}
	m.tasks = append(m.tasks, t)

	return t
}

// Advance moves the clock forward by d, firing every task that comes due
// in time order. Tasks scheduled by a firing callback fire too when they
// fall inside the window.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.now = t.at
		t.fired = true
		m.mu.Unlock()
		t.f()
		m.mu.Lock()
	}
	m.now = target
	m.prune()
	m.mu.Unlock()
}

// Pending reports how many tasks are scheduled and not yet fired or stopped.
func (m *ManualClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}

	return n
}

// Now reports the elapsed manual time.
func (m *ManualClock) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

func (m *ManualClock) nextDue(target time.Duration) *manualTimer {
	var live []*manualTimer
	for _, t := range m.tasks {
		if !t.stopped && !t.fired && t.at <= target {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})

	return live[0]
}

func (m *ManualClock) prune() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
}
